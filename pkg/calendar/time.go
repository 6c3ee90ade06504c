package calendar

import (
	"time"
)

var (
	// MinDate and MaxDate are the default bounds: the whole representable range.
	MinDate = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	MaxDate = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// DateOf drops the clock and the zone of ts, keeping its calendar date.
func DateOf(ts time.Time) time.Time {
	y, m, d := ts.Date()
	return Date(y, m, d)
}

// Date builds a calendar date at UTC midnight.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func beginningOfMonth(ts time.Time) time.Time {
	y, m, _ := ts.Date()
	return Date(y, m, 1)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func representable(year int) bool {
	return year >= MinDate.Year() && year <= MaxDate.Year()
}

package calendar

import (
	"time"
)

// Padding is the number of placeholder cells on each side of a month.
// It does not depend on the weekday the month starts with.
const Padding = 3

// DayCell is a view-model of one cell of the strip. Day is zero for padding.
type DayCell struct {
	Day       int        `json:"day,omitempty"`
	ShortName string     `json:"shortName"`
	FullName  string     `json:"fullName"`
	Month     time.Month `json:"month"`
	Year      int        `json:"year"`
	Active    bool       `json:"active"`
	Selected  bool       `json:"selected"`
	Today     bool       `json:"today"`
}

func (c DayCell) IsPadding() bool {
	return c.Day == 0
}

// Date returns the calendar date of the cell, false for padding.
func (c DayCell) Date() (time.Time, bool) {
	if c.IsPadding() {
		return time.Time{}, false
	}
	return Date(c.Year, c.Month, c.Day), true
}

// Selectable reports whether a tap on the cell may change the selection.
func (c DayCell) Selectable() bool {
	return !c.IsPadding() && c.Active
}

// MonthView is an ordered list of cells: padding, every day of the month, padding.
type MonthView []DayCell

// Days is the number of real days in the view.
func (v MonthView) Days() int {
	if len(v) < 2*Padding {
		return 0
	}
	return len(v) - 2*Padding
}

// Index returns the position of the cell for day, -1 if the view has no such day.
func (v MonthView) Index(day int) int {
	if day < 1 || day > v.Days() {
		return -1
	}
	return Padding + day - 1
}

// Selected returns the position of the selected cell or -1.
func (v MonthView) Selected() int {
	for i := range v {
		if v[i].Selected {
			return i
		}
	}
	return -1
}

// TodayIndex returns the position of today's cell or -1.
func (v MonthView) TodayIndex() int {
	for i := range v {
		if v[i].Today {
			return i
		}
	}
	return -1
}

func (v MonthView) clone() MonthView {
	if v == nil {
		return nil
	}
	return append(MonthView(nil), v...)
}

// mark recomputes Selected and Today from scratch.
func (v MonthView) mark(selected, today time.Time) {
	for i := range v {
		date, ok := v[i].Date()
		v[i].Selected = ok && sameDay(date, selected)
		v[i].Today = ok && sameDay(date, today)
	}
}

package calendar

import (
	"time"

	"cloudeng.io/datetime"

	"github.com/nikmy/hcalendar/pkg/errors"
)

// ErrInvalidArgument is returned for a month outside 1..12, a year that can't
// be parsed or represented, or a picker index out of range.
var ErrInvalidArgument = errors.New("invalid argument")

func NewGenerator(l Locale) Generator {
	if l == nil {
		l = English
	}
	return Generator{locale: l}
}

// Generator turns (year, month, bounds) into a MonthView. It holds no state
// besides the locale, so equal inputs always give equal views.
type Generator struct {
	locale Locale
}

func (g Generator) Generate(year int, month time.Month, minimumDate, maximumDate time.Time) (MonthView, error) {
	if month < time.January || month > time.December {
		return nil, errors.Wrapf(ErrInvalidArgument, "month %d", month)
	}
	if !representable(year) {
		return nil, errors.Wrapf(ErrInvalidArgument, "year %d", year)
	}

	minimumDate, maximumDate = DateOf(minimumDate), DateOf(maximumDate)
	minMonthStart := beginningOfMonth(minimumDate)

	days := datetime.DaysInMonth(year, datetime.Month(month))
	view := make(MonthView, 0, days+2*Padding)

	view = appendPadding(view, year, month)
	for day := 1; day <= days; day++ {
		date := Date(year, month, day)
		wd := date.Weekday()

		view = append(view, DayCell{
			Day:       day,
			ShortName: g.locale.WeekdayShort(wd),
			FullName:  g.locale.WeekdayFull(wd),
			Month:     month,
			Year:      year,
			Active:    isActive(date, minMonthStart, minimumDate, maximumDate),
		})
	}
	view = appendPadding(view, year, month)

	return view, nil
}

// isActive keeps the month-start special case of the minimum bound: a cell
// before the minimum is rejected only when the minimum is not the first day
// of its month, otherwise the cell must lie in [minMonthStart, maximumDate].
// There is no matching special case for the maximum bound.
func isActive(date, minMonthStart, minimumDate, maximumDate time.Time) bool {
	if minMonthStart.Before(minimumDate) && date.Before(minimumDate) {
		return false
	}
	return !date.Before(minMonthStart) && !date.After(maximumDate)
}

func appendPadding(view MonthView, year int, month time.Month) MonthView {
	for i := 0; i < Padding; i++ {
		view = append(view, DayCell{
			Month:  month,
			Year:   year,
			Active: true,
		})
	}
	return view
}

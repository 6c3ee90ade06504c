package calendar

import (
	"time"

	"github.com/nikmy/hcalendar/pkg/logger"
)

type Option func(m *Model)

func WithLocale(l Locale) Option {
	return func(m *Model) {
		if l != nil {
			m.locale = l
		}
	}
}

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

func WithLogger(l logger.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l.With("calendar")
		}
	}
}

func WithScroller(s Scroller) Option {
	return func(m *Model) {
		if s != nil {
			m.scroller = s
		}
	}
}

// WithBounds sets the initial minimum and maximum dates.
// A zero time keeps the corresponding default.
func WithBounds(minimumDate, maximumDate time.Time) Option {
	return func(m *Model) {
		if !minimumDate.IsZero() {
			m.state.MinimumDate = DateOf(minimumDate)
		}
		if !maximumDate.IsZero() {
			m.state.MaximumDate = DateOf(maximumDate)
		}
	}
}

func defaults(m *Model) {
	m.locale = English
	m.now = time.Now
	m.log = logger.NewStub()
	m.scroller = ScrollFunc(func(ScrollHint) {})
	m.state.MinimumDate = MinDate
	m.state.MaximumDate = MaxDate
}

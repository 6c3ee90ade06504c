package calendar

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/nikmy/hcalendar/pkg/builder"
	"github.com/nikmy/hcalendar/pkg/errors"
	"github.com/nikmy/hcalendar/pkg/logger"
)

type Outcome int

const (
	Applied Outcome = iota
	Ignored
)

func (o Outcome) String() string {
	if o == Ignored {
		return "ignored"
	}
	return "applied"
}

type ScrollTarget int

const (
	ScrollStart ScrollTarget = iota
	ScrollToday
	ScrollSelection
)

func (t ScrollTarget) String() string {
	switch t {
	case ScrollToday:
		return "today"
	case ScrollSelection:
		return "selection"
	default:
		return "start"
	}
}

// ScrollHint tells the renderer which cell to center after a change.
type ScrollHint struct {
	Index  int
	Target ScrollTarget
}

// Scroller receives scroll hints once a change is committed. The model does
// not wait for it and does not look at what it did.
type Scroller interface {
	ScrollTo(hint ScrollHint)
}

type ScrollFunc func(hint ScrollHint)

func (f ScrollFunc) ScrollTo(hint ScrollHint) {
	f(hint)
}

// State is the selection state owned by a Model.
type State struct {
	SelectedDate time.Time
	Year         int
	Month        time.Month
	MinimumDate  time.Time
	MaximumDate  time.Time
}

type MonthResult struct {
	View         MonthView
	TodayVisible bool
	Scroll       ScrollHint
}

// SelectResult.Index is the position of the selected cell, -1 when the
// selection is not in the view or the tap was ignored.
type SelectResult struct {
	View    MonthView
	Index   int
	Outcome Outcome
	Scroll  ScrollHint
}

// Model is the selection model of one picker. It is not safe for concurrent
// use: all calls must come from the goroutine that renders it.
type Model struct {
	locale   Locale
	gen      Generator
	now      func() time.Time
	log      logger.Logger
	scroller Scroller

	state State
	view  MonthView

	months    []MonthLabel
	years     []string
	monthName string
	yearName  string
}

// New builds a model showing the current month with today selected.
func New(opts ...Option) (*Model, error) {
	m, err := builder.New[Model]().
		Use(defaults).
		UseAll(toSetters(opts)...).
		MaybeUse((*Model).initialize).
		Get()
	if err != nil {
		return nil, errors.WrapFail(err, "init calendar model")
	}
	return m, nil
}

func toSetters(opts []Option) []func(*Model) {
	setters := make([]func(*Model), 0, len(opts))
	for _, o := range opts {
		setters = append(setters, o)
	}
	return setters
}

func (m *Model) initialize() error {
	m.gen = NewGenerator(m.locale)
	m.months = monthLabels(m.locale)
	m.years = yearLabels()

	today := m.today()
	m.state.SelectedDate = today
	m.state.Year = today.Year()
	m.state.Month = today.Month()

	_, err := m.SetMonth(today.Month())
	return err
}

func (m *Model) SetMonth(month time.Month) (MonthResult, error) {
	res, err := m.regenerate(m.state.Year, month)
	if err != nil {
		return MonthResult{}, errors.WrapFailf(err, "set month %d", month)
	}
	return res, nil
}

func (m *Model) SetYear(year string) (MonthResult, error) {
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		err = errors.Wrapf(ErrInvalidArgument, "year %q", year)
		m.log.Debug(err)
		return MonthResult{}, errors.WrapFail(err, "set year")
	}

	res, err := m.regenerate(y, m.state.Month)
	if err != nil {
		return MonthResult{}, errors.WrapFailf(err, "set year %d", y)
	}
	return res, nil
}

// SelectMonthLabel switches to the month at position i of MonthLabels.
func (m *Model) SelectMonthLabel(i int) (MonthResult, error) {
	if i < 0 || i >= len(m.months) {
		return MonthResult{}, errors.Wrapf(ErrInvalidArgument, "month label %d", i)
	}
	return m.SetMonth(time.Month(m.months[i].Index + 1))
}

// SelectYearLabel switches to the year at position i of YearLabels.
func (m *Model) SelectYearLabel(i int) (MonthResult, error) {
	if i < 0 || i >= len(m.years) {
		return MonthResult{}, errors.Wrapf(ErrInvalidArgument, "year label %d", i)
	}
	return m.SetYear(m.years[i])
}

// SetMinimumDate changes the lower bound. The selected date is kept even if
// it is not active anymore.
func (m *Model) SetMinimumDate(d time.Time) MonthResult {
	m.state.MinimumDate = DateOf(d)
	return m.refresh()
}

// SetMaximumDate changes the upper bound. The selected date is kept even if
// it is not active anymore.
func (m *Model) SetMaximumDate(d time.Time) MonthResult {
	m.state.MaximumDate = DateOf(d)
	return m.refresh()
}

// SelectDay selects a day of the displayed month. Taps on padding, inactive
// or unknown days are Ignored and change nothing.
func (m *Model) SelectDay(day int) SelectResult {
	idx := m.view.Index(day)
	if idx < 0 || !m.view[idx].Selectable() {
		m.log.Debugf("ignore selection of day %d in %d-%02d", day, m.state.Year, m.state.Month)
		return SelectResult{View: m.view.clone(), Index: -1, Outcome: Ignored}
	}

	m.state.SelectedDate = Date(m.state.Year, m.state.Month, day)
	m.view.mark(m.state.SelectedDate, m.today())

	hint := ScrollHint{Index: idx, Target: ScrollSelection}
	m.scroller.ScrollTo(hint)

	return SelectResult{View: m.view.clone(), Index: idx, Outcome: Applied, Scroll: hint}
}

// SetSelectedDate is the host side of the selected date binding. The view
// stays on the displayed month.
func (m *Model) SetSelectedDate(d time.Time) SelectResult {
	m.state.SelectedDate = DateOf(d)
	m.view.mark(m.state.SelectedDate, m.today())

	res := SelectResult{View: m.view.clone(), Index: m.view.Selected(), Outcome: Applied}
	if res.Index >= 0 {
		res.Scroll = ScrollHint{Index: res.Index, Target: ScrollSelection}
		m.scroller.ScrollTo(res.Scroll)
	}
	return res
}

func (m *Model) State() State {
	return m.state
}

func (m *Model) View() MonthView {
	return m.view.clone()
}

func (m *Model) MonthLabels() []MonthLabel {
	return slices.Clone(m.months)
}

func (m *Model) YearLabels() []string {
	return slices.Clone(m.years)
}

// MonthName is the upper-cased locale name of the displayed month.
func (m *Model) MonthName() string {
	return m.monthName
}

func (m *Model) YearName() string {
	return m.yearName
}

// MonthLabelIndex returns the position of the displayed month in MonthLabels or -1.
func (m *Model) MonthLabelIndex() int {
	idx := int(m.state.Month) - 1
	if idx < 0 || idx >= len(m.months) {
		return -1
	}
	return idx
}

// YearLabelIndex returns the position of the displayed year in YearLabels or -1.
func (m *Model) YearLabelIndex() int {
	return slices.Index(m.years, strconv.Itoa(m.state.Year))
}

// Locale returns the name source the model was built with.
func (m *Model) Locale() Locale {
	return m.locale
}

// Today is the current calendar date by the model's clock.
func (m *Model) Today() time.Time {
	return m.today()
}

func (m *Model) today() time.Time {
	return DateOf(m.now())
}

// regenerate commits (year, month) only if the view for them can be built.
func (m *Model) regenerate(year int, month time.Month) (MonthResult, error) {
	view, err := m.gen.Generate(year, month, m.state.MinimumDate, m.state.MaximumDate)
	if err != nil {
		m.log.Debug(err)
		return MonthResult{}, err
	}

	m.state.Year, m.state.Month = year, month
	m.monthName = strings.ToUpper(m.monthDisplayName(month))
	m.yearName = strconv.Itoa(year)

	view.mark(m.state.SelectedDate, m.today())
	m.view = view

	m.log.Debugf("generated %s %s: %d cells", m.monthName, m.yearName, len(view))

	res := MonthResult{View: view.clone(), Scroll: ScrollHint{Target: ScrollStart}}
	if idx := view.TodayIndex(); idx >= 0 {
		res.TodayVisible = true
		res.Scroll = ScrollHint{Index: idx, Target: ScrollToday}
	}

	m.scroller.ScrollTo(res.Scroll)
	return res, nil
}

func (m *Model) refresh() MonthResult {
	res, err := m.regenerate(m.state.Year, m.state.Month)
	if err != nil {
		// year and month were validated when they were committed
		m.log.Error(errors.WrapFail(err, "refresh month view"))
		return MonthResult{View: m.view.clone()}
	}
	return res
}

func (m *Model) monthDisplayName(month time.Month) string {
	idx := int(month) - 1
	if idx >= 0 && idx < len(m.months) {
		return m.months[idx].Name
	}
	return month.String()
}

package api

import (
	"time"

	"github.com/nikmy/hcalendar/pkg/calendar"
)

const dateLayout = time.DateOnly

type labelsResponse struct {
	Months []calendar.MonthLabel `json:"months"`
	Years  []string              `json:"years"`
}

type scrollResponse struct {
	Index  int    `json:"index"`
	Target string `json:"target"`
}

type calendarResponse struct {
	SelectedDate string     `json:"selectedDate"`
	Year         int        `json:"year"`
	Month        time.Month `json:"month"`
	MinimumDate  string     `json:"minimumDate"`
	MaximumDate  string     `json:"maximumDate"`

	MonthName       string `json:"monthName"`
	YearName        string `json:"yearName"`
	MonthLabelIndex int    `json:"monthLabelIndex"`
	YearLabelIndex  int    `json:"yearLabelIndex"`

	Cells calendar.MonthView `json:"cells"`

	Scroll  *scrollResponse `json:"scroll,omitempty"`
	Outcome string          `json:"outcome,omitempty"`
	Index   *int            `json:"index,omitempty"`
}

func newCalendarResponse(m *calendar.Model) calendarResponse {
	st := m.State()
	return calendarResponse{
		SelectedDate:    st.SelectedDate.Format(dateLayout),
		Year:            st.Year,
		Month:           st.Month,
		MinimumDate:     st.MinimumDate.Format(dateLayout),
		MaximumDate:     st.MaximumDate.Format(dateLayout),
		MonthName:       m.MonthName(),
		YearName:        m.YearName(),
		MonthLabelIndex: m.MonthLabelIndex(),
		YearLabelIndex:  m.YearLabelIndex(),
		Cells:           m.View(),
	}
}

func (r calendarResponse) withScroll(hint calendar.ScrollHint) calendarResponse {
	r.Scroll = &scrollResponse{Index: hint.Index, Target: hint.Target.String()}
	return r
}

func (r calendarResponse) withSelection(res calendar.SelectResult) calendarResponse {
	r.Outcome = res.Outcome.String()
	r.Index = &res.Index
	if res.Outcome == calendar.Applied && res.Index >= 0 {
		r = r.withScroll(res.Scroll)
	}
	return r
}

// monthRequest sets either the month number or the month picker position.
type monthRequest struct {
	Month *int `json:"month"`
	Label *int `json:"label"`
}

// yearRequest sets either the year text or the year picker position.
type yearRequest struct {
	Year  *string `json:"year"`
	Label *int    `json:"label"`
}

type boundsRequest struct {
	MinimumDate string `json:"minimumDate"`
	MaximumDate string `json:"maximumDate"`
}

type selectRequest struct {
	Day int `json:"day"`
}

type selectedRequest struct {
	Date string `json:"date"`
}

package telegram

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/telebot.v3"

	"github.com/nikmy/hcalendar/pkg/calendar"
)

const (
	yearsPerPage = 12
	buttonsInRow = 3

	payloadMonth = "m"
	payloadYear  = "y"
)

var (
	btnDay       = telebot.Btn{Unique: "cal_day"}
	btnNav       = telebot.Btn{Unique: "cal_nav"}
	btnMonths    = telebot.Btn{Unique: "cal_mon"}
	btnYears     = telebot.Btn{Unique: "cal_yr"}
	btnYearsPage = telebot.Btn{Unique: "cal_ypg"}
	btnPick      = telebot.Btn{Unique: "cal_pick"}
	btnNop       = telebot.Btn{Unique: "cal_nop"}
)

// screen is everything needed to draw one message, taken from the model while
// the session is locked.
type screen struct {
	text   string
	markup *telebot.ReplyMarkup
}

func caption(st calendar.State, monthName, yearName string) string {
	return fmt.Sprintf(
		"%s %s\nSelected: %s",
		monthName, yearName,
		st.SelectedDate.Format("Mon, 02 Jan 2006"),
	)
}

// stripScreen draws the header, the weekday row and the day row of the
// cells in [from, to).
func stripScreen(p *picker) screen {
	view := p.model.View()
	from, to := p.strip.window(len(view))
	locale := p.model.Locale()

	m := &telebot.ReplyMarkup{}

	header := m.Row(
		m.Data("◀", btnNav.Unique, "-1"),
		m.Data(p.model.MonthName(), btnMonths.Unique),
		m.Data(p.model.YearName(), btnYears.Unique),
		m.Data("▶", btnNav.Unique, "+1"),
	)

	names := make(telebot.Row, 0, to-from)
	days := make(telebot.Row, 0, to-from)
	for _, cell := range view[from:to] {
		names = append(names, m.Data(weekdayText(cell, locale), btnNop.Unique))
		days = append(days, m.Data(dayText(cell), btnDay.Unique, strconv.Itoa(cell.Day)))
	}

	m.Inline(header, names, days)

	return screen{
		text:   caption(p.model.State(), p.model.MonthName(), p.model.YearName()),
		markup: m,
	}
}

func weekdayText(cell calendar.DayCell, locale calendar.Locale) string {
	switch {
	case cell.IsPadding():
		return " "
	case cell.Today:
		return locale.TodayLabel()
	default:
		return cell.ShortName
	}
}

func dayText(cell calendar.DayCell) string {
	if cell.IsPadding() {
		return " "
	}

	day := strconv.Itoa(cell.Day)
	switch {
	case cell.Selected:
		return "•" + day + "•"
	case !cell.Active:
		return "·" + day
	default:
		return day
	}
}

func monthsScreen(p *picker) screen {
	current := p.model.MonthLabelIndex()

	m := &telebot.ReplyMarkup{}
	btns := make([]telebot.Btn, 0, len(p.model.MonthLabels()))
	for i, label := range p.model.MonthLabels() {
		btns = append(btns, m.Data(marked(label.Name, i == current), btnPick.Unique, payloadMonth, strconv.Itoa(i)))
	}
	m.Inline(m.Split(buttonsInRow, btns)...)

	return screen{text: "Choose a month:", markup: m}
}

// yearsScreen shows one page of the year picker, page < 0 means the page of
// the displayed year.
func yearsScreen(p *picker, page int) screen {
	labels := p.model.YearLabels()
	current := p.model.YearLabelIndex()

	pages := (len(labels) + yearsPerPage - 1) / yearsPerPage
	if page < 0 {
		page = max(current, 0) / yearsPerPage
	}
	page = clamp(page, 0, pages-1)

	m := &telebot.ReplyMarkup{}

	from, to := page*yearsPerPage, min((page+1)*yearsPerPage, len(labels))
	btns := make([]telebot.Btn, 0, to-from)
	for i := from; i < to; i++ {
		btns = append(btns, m.Data(marked(labels[i], i == current), btnPick.Unique, payloadYear, strconv.Itoa(i)))
	}

	rows := m.Split(buttonsInRow, btns)
	rows = append(rows, m.Row(
		m.Data("◀", btnYearsPage.Unique, strconv.Itoa(max(page-1, 0))),
		m.Data(fmt.Sprintf("%d/%d", page+1, pages), btnNop.Unique),
		m.Data("▶", btnYearsPage.Unique, strconv.Itoa(min(page+1, pages-1))),
	))
	m.Inline(rows...)

	return screen{text: "Choose a year:", markup: m}
}

func marked(text string, current bool) string {
	if current {
		return "• " + text
	}
	return text
}

// parsePick reads the "kind|index" payload of a picker button.
func parsePick(data string) (kind string, index int, ok bool) {
	kind, idx, found := strings.Cut(data, "|")
	if !found {
		return "", 0, false
	}
	index, err := strconv.Atoi(idx)
	if err != nil {
		return "", 0, false
	}
	return kind, index, true
}

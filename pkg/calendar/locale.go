package calendar

import (
	"strconv"
	"strings"
	"time"
)

// Locale is the source of month and weekday names. MonthNames may contain
// blank entries (some platforms pad the list to 13 months), they are skipped.
type Locale interface {
	MonthNames() []string
	WeekdayShort(wd time.Weekday) string
	WeekdayFull(wd time.Weekday) string
	TodayLabel() string
}

func LocaleFor(lang string) Locale {
	if lang == "ru" {
		return Russian
	}
	return English
}

var (
	English Locale = tableLocale{
		months: []string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		short: [7]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"},
		full:  [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		today: "TODAY",
	}

	Russian Locale = tableLocale{
		months: []string{
			"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
			"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
		},
		short: [7]string{"ВС", "ПН", "ВТ", "СР", "ЧТ", "ПТ", "СБ"},
		full:  [7]string{"Воскресенье", "Понедельник", "Вторник", "Среда", "Четверг", "Пятница", "Суббота"},
		today: "СЕГОДНЯ",
	}
)

// tableLocale indexes weekday tables by time.Weekday, so Sunday comes first.
type tableLocale struct {
	months []string
	short  [7]string
	full   [7]string
	today  string
}

func (l tableLocale) MonthNames() []string {
	return l.months
}

func (l tableLocale) WeekdayShort(wd time.Weekday) string {
	return l.short[wd]
}

func (l tableLocale) WeekdayFull(wd time.Weekday) string {
	return l.full[wd]
}

func (l tableLocale) TodayLabel() string {
	return l.today
}

// MonthLabel is an entry of the month picker.
type MonthLabel struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

const (
	FirstYear = 2017
	LastYear  = 2100 // exclusive
)

func monthLabels(l Locale) []MonthLabel {
	names := l.MonthNames()
	labels := make([]MonthLabel, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		labels = append(labels, MonthLabel{Index: len(labels), Name: name})
	}
	return labels
}

func yearLabels() []string {
	years := make([]string, 0, LastYear-FirstYear)
	for y := FirstYear; y < LastYear; y++ {
		years = append(years, strconv.Itoa(y))
	}
	return years
}

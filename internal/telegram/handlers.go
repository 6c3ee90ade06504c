package telegram

import (
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datetime"
	"github.com/vitaliy-ukiru/fsm-telebot"
	"github.com/vitaliy-ukiru/fsm-telebot/storages/memory"
	"gopkg.in/telebot.v3"

	"github.com/nikmy/hcalendar/pkg/calendar"
	"github.com/nikmy/hcalendar/pkg/errors"
)

const (
	initialState = fsm.DefaultState

	readMonthState fsm.State = "readMonth"
	readYearState  fsm.State = "readYear"
)

const usage = "" +
	"Available commands:\n" +
	"/calendar — show the calendar\n" +
	"/month — type a month (number or name)\n" +
	"/year — type a year\n" +
	"/today — select today"

type handler func(c calendarContext, s stateSetter) error

func (h handler) bind() func(telebot.Context, fsm.Context) error {
	return func(c telebot.Context, s fsm.Context) error {
		return h(c, s)
	}
}

func (b *Bot) setupHandlers() {
	manager := fsm.NewManager(
		b.bot,
		nil,
		memory.NewStorage(),
		nil,
	)

	manager.Bind("/start", fsm.AnyState, handler(b.start).bind())
	manager.Bind("/calendar", fsm.AnyState, handler(b.showCalendar).bind())
	manager.Bind("/today", fsm.AnyState, handler(b.selectToday).bind())

	manager.Bind("/month", fsm.AnyState, handler(b.startMonth).bind())
	manager.Bind(telebot.OnText, readMonthState, handler(b.readMonth).bind())

	manager.Bind("/year", fsm.AnyState, handler(b.startYear).bind())
	manager.Bind(telebot.OnText, readYearState, handler(b.readYear).bind())

	manager.Bind(&btnDay, fsm.AnyState, handler(b.onDay).bind())
	manager.Bind(&btnNav, fsm.AnyState, handler(b.onNav).bind())
	manager.Bind(&btnMonths, fsm.AnyState, handler(b.onMonths).bind())
	manager.Bind(&btnYears, fsm.AnyState, handler(b.onYears).bind())
	manager.Bind(&btnYearsPage, fsm.AnyState, handler(b.onYearsPage).bind())
	manager.Bind(&btnPick, fsm.AnyState, handler(b.onPick).bind())
	manager.Bind(&btnNop, fsm.AnyState, handler(b.onNop).bind())
}

func (b *Bot) setState(s stateSetter, target fsm.State) {
	err := s.Set(target)
	if err != nil {
		b.log.Warn(errors.WrapFailf(err, "set state to %q", target))
	}
}

func (b *Bot) final(c calendarContext, s stateSetter, msg string, opts ...any) error {
	b.setState(s, initialState)
	return c.Send(msg, opts...)
}

func (b *Bot) fail(c calendarContext, s stateSetter, err error) error {
	b.log.Error(err)
	return b.final(c, s, "Something went wrong")
}

func (b *Bot) start(c calendarContext, s stateSetter) error {
	return b.final(c, s, usage)
}

func (b *Bot) showCalendar(c calendarContext, s stateSetter) error {
	var scr screen
	err := b.withPicker(c, func(p *picker) error {
		scr = stripScreen(p)
		return nil
	})
	if err != nil {
		return b.fail(c, s, errors.WrapFail(err, "show calendar"))
	}
	return b.final(c, s, scr.text, scr.markup)
}

func (b *Bot) selectToday(c calendarContext, s stateSetter) error {
	var scr screen
	err := b.withPicker(c, func(p *picker) error {
		today := p.model.Today()
		if _, err := p.model.SetYear(strconv.Itoa(today.Year())); err != nil {
			return err
		}
		if _, err := p.model.SetMonth(today.Month()); err != nil {
			return err
		}
		p.model.SetSelectedDate(today)
		scr = stripScreen(p)
		return nil
	})
	if err != nil {
		return b.fail(c, s, errors.WrapFail(err, "select today"))
	}
	return b.final(c, s, scr.text, scr.markup)
}

func (b *Bot) startMonth(c calendarContext, s stateSetter) error {
	b.setState(s, readMonthState)
	return c.Send("Enter a month, e.g. 3, mar or March")
}

func (b *Bot) readMonth(c calendarContext, s stateSetter) error {
	text := strings.TrimSpace(c.Text())
	if text == "" {
		return c.Send("Unknown month, try again")
	}

	var month datetime.Month
	if err := month.Parse(text); err != nil {
		b.log.Debug(err)
		return c.Send("Unknown month, try again")
	}

	var scr screen
	err := b.withPicker(c, func(p *picker) error {
		if _, err := p.model.SetMonth(time.Month(month)); err != nil {
			return err
		}
		scr = stripScreen(p)
		return nil
	})
	if errors.Is(err, calendar.ErrInvalidArgument) {
		b.log.Debug(err)
		return c.Send("Unknown month, try again")
	}
	if err != nil {
		return b.fail(c, s, errors.WrapFail(err, "set month"))
	}
	return b.final(c, s, scr.text, scr.markup)
}

func (b *Bot) startYear(c calendarContext, s stateSetter) error {
	b.setState(s, readYearState)
	return c.Send("Enter a year")
}

func (b *Bot) readYear(c calendarContext, s stateSetter) error {
	var scr screen
	err := b.withPicker(c, func(p *picker) error {
		if _, err := p.model.SetYear(c.Text()); err != nil {
			return err
		}
		scr = stripScreen(p)
		return nil
	})
	if errors.Is(err, calendar.ErrInvalidArgument) {
		b.log.Debug(err)
		return c.Send("Not a valid year, try again")
	}
	if err != nil {
		return b.fail(c, s, errors.WrapFail(err, "set year"))
	}
	return b.final(c, s, scr.text, scr.markup)
}

func (b *Bot) onDay(c calendarContext, _ stateSetter) error {
	day, err := strconv.Atoi(c.Data())
	if err != nil {
		b.log.Debug(errors.WrapFailf(err, "parse day %q", c.Data()))
		return c.Respond()
	}

	var (
		scr     screen
		outcome calendar.Outcome
	)
	err = b.withPicker(c, func(p *picker) error {
		outcome = p.model.SelectDay(day).Outcome
		scr = stripScreen(p)
		return nil
	})
	if err != nil {
		b.log.Error(errors.WrapFail(err, "select day"))
		return c.Respond()
	}

	if outcome == calendar.Ignored {
		return c.Respond()
	}

	b.edit(c, scr)
	return c.Respond()
}

func (b *Bot) onNav(c calendarContext, _ stateSetter) error {
	pages, err := strconv.Atoi(c.Data())
	if err != nil {
		b.log.Debug(errors.WrapFailf(err, "parse scroll %q", c.Data()))
		return c.Respond()
	}

	b.redraw(c, func(p *picker) (screen, error) {
		p.strip.shift(pages, len(p.model.View()))
		return stripScreen(p), nil
	})
	return c.Respond()
}

func (b *Bot) onMonths(c calendarContext, _ stateSetter) error {
	b.redraw(c, func(p *picker) (screen, error) {
		return monthsScreen(p), nil
	})
	return c.Respond()
}

func (b *Bot) onYears(c calendarContext, _ stateSetter) error {
	b.redraw(c, func(p *picker) (screen, error) {
		return yearsScreen(p, -1), nil
	})
	return c.Respond()
}

func (b *Bot) onYearsPage(c calendarContext, _ stateSetter) error {
	page, err := strconv.Atoi(c.Data())
	if err != nil {
		b.log.Debug(errors.WrapFailf(err, "parse page %q", c.Data()))
		return c.Respond()
	}

	b.redraw(c, func(p *picker) (screen, error) {
		return yearsScreen(p, page), nil
	})
	return c.Respond()
}

func (b *Bot) onPick(c calendarContext, _ stateSetter) error {
	kind, idx, ok := parsePick(c.Data())
	if !ok {
		b.log.Debugf("bad picker payload %q", c.Data())
		return c.Respond()
	}

	b.redraw(c, func(p *picker) (screen, error) {
		var err error
		switch kind {
		case payloadMonth:
			_, err = p.model.SelectMonthLabel(idx)
		case payloadYear:
			_, err = p.model.SelectYearLabel(idx)
		default:
			err = errors.Wrapf(calendar.ErrInvalidArgument, "picker %q", kind)
		}
		if err != nil {
			return screen{}, err
		}
		return stripScreen(p), nil
	})
	return c.Respond()
}

func (b *Bot) onNop(c calendarContext, _ stateSetter) error {
	return c.Respond()
}

// redraw replaces the message of the callback with what draw returns.
func (b *Bot) redraw(c calendarContext, draw func(p *picker) (screen, error)) {
	var scr screen
	err := b.withPicker(c, func(p *picker) (err error) {
		scr, err = draw(p)
		return err
	})
	if err != nil {
		b.log.Warn(errors.WrapFail(err, "redraw calendar"))
		return
	}
	b.edit(c, scr)
}

// edit queues the message edit, it does not wait for Telegram.
func (b *Bot) edit(c calendarContext, scr screen) {
	queued := b.editor.Do(b.ctx, func() {
		if err := c.Edit(scr.text, scr.markup); err != nil {
			b.log.Warn(errors.WrapFail(err, "edit calendar message"))
		}
	})
	if !queued {
		b.log.Warnf("calendar edit dropped")
	}
}

package telegram

import (
	"context"
	"strconv"
	"time"

	"gopkg.in/telebot.v3"

	"github.com/nikmy/hcalendar/internal/session"
	"github.com/nikmy/hcalendar/pkg/calendar"
	"github.com/nikmy/hcalendar/pkg/errors"
	"github.com/nikmy/hcalendar/pkg/logger"
	"github.com/nikmy/hcalendar/pkg/tools/throttle"
)

// Telegram allows about 30 messages per second for a bot.
const defaultEditInterval = time.Second / 30

// ModelFactory creates the picker model of a new chat. The bot adds its own
// scroller to opts.
type ModelFactory func(opts ...calendar.Option) (*calendar.Model, error)

func New(log logger.Logger, conf Config, newModel ModelFactory) (*Bot, error) {
	b, err := telebot.NewBot(telebot.Settings{
		Token:   conf.Token,
		Updates: 256,
		Poller: &telebot.LongPoller{
			Timeout: conf.PollInterval,
		},
	})
	if err != nil {
		return nil, errors.WrapFail(err, "init telebot")
	}

	if conf.EditInterval <= 0 {
		conf.EditInterval = defaultEditInterval
	}

	log = log.With("telegram")
	edits := throttle.New(conf.EditInterval, conf.EditQueue)

	return &Bot{
		bot:      b,
		log:      log,
		edits:    edits,
		editor:   edits,
		sessions: session.NewStore(conf.Sessions, pickerFactory(newModel, conf.StripWidth), log),
	}, nil
}

type Bot struct {
	bot *telebot.Bot
	ctx context.Context

	sessions *session.Store[*picker]
	edits    *throttle.Throttler
	editor   editor

	log logger.Logger
}

func (b *Bot) Run(ctx context.Context) error {
	b.ctx = ctx

	err := b.edits.Run(ctx)
	if err != nil {
		return errors.WrapFail(err, "run edits throttler")
	}

	go func() {
		if err := b.sessions.Run(ctx); err != nil {
			b.log.Error(errors.WrapFail(err, "run sessions sweeper"))
		}
	}()

	b.setupHandlers()
	go b.bot.Start()
	return nil
}

func (b *Bot) Stop() {
	b.bot.Stop()
	b.edits.Stop()
}

// picker is the calendar of one chat.
type picker struct {
	model *calendar.Model
	strip *strip
}

func pickerFactory(newModel ModelFactory, stripWidth int) session.Factory[*picker] {
	return func(string) (*picker, error) {
		s := newStrip(stripWidth)
		m, err := newModel(calendar.WithScroller(s))
		if err != nil {
			return nil, err
		}
		return &picker{model: m, strip: s}, nil
	}
}

func chatKey(c calendarContext) (string, error) {
	chat := c.Chat()
	if chat == nil {
		return "", errors.Fail("get chat")
	}
	return strconv.FormatInt(chat.ID, 10), nil
}

// withPicker runs fn with exclusive access to the picker of the chat.
func (b *Bot) withPicker(c calendarContext, fn func(p *picker) error) error {
	key, err := chatKey(c)
	if err != nil {
		return err
	}
	return b.sessions.Do(key, fn)
}

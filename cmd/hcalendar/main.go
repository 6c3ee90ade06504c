package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nikmy/hcalendar/internal/api"
	"github.com/nikmy/hcalendar/internal/telegram"
	"github.com/nikmy/hcalendar/pkg/calendar"
	"github.com/nikmy/hcalendar/pkg/errors"
	"github.com/nikmy/hcalendar/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := loadConfig()
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}

	if _, err := cfg.Calendar.options(time.Now()); err != nil {
		log.Panic(errors.WrapFail(err, "check calendar config"))
	}
	newModel := modelFactory(cfg.Calendar, log)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGABRT)
	defer cancel()

	server := api.NewServer(cfg.HTTP, log, api.ModelFactory(newModel))

	var bot *telegram.Bot
	if cfg.Telegram.Token != "" {
		bot, err = telegram.New(log, cfg.Telegram, telegram.ModelFactory(newModel))
		if err != nil {
			log.Panic(errors.WrapFail(err, "initialize bot service"))
		}
	}

	stopped := make(chan struct{})
	context.AfterFunc(ctx, func() {
		stdlog.Println("Graceful shutdown...")

		var errs []error
		if bot != nil {
			bot.Stop()
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, err)
		}

		if err := errors.Collapse(errs); err != nil {
			log.Error(err)
		}
		stopped <- struct{}{}
	})

	if bot != nil {
		err = bot.Run(ctx)
		if err != nil {
			log.Panic(err)
		}
		stdlog.Println("Bot has been started")
	}

	go func() {
		if err := server.Serve(ctx); err != nil && ctx.Err() == nil {
			log.Error(errors.WrapFail(err, "serve http"))
			cancel()
		}
	}()
	stdlog.Println("HTTP server has been started")

	<-stopped
	stdlog.Println("Shutdown complete")
}

// modelFactory reads the bounds for every new picker, so "today" follows
// the clock of a long running process.
func modelFactory(cfg CalendarConfig, log logger.Logger) func(opts ...calendar.Option) (*calendar.Model, error) {
	return func(opts ...calendar.Option) (*calendar.Model, error) {
		base, err := cfg.options(time.Now())
		if err != nil {
			return nil, err
		}
		base = append(base, calendar.WithLogger(log))
		return calendar.New(append(base, opts...)...)
	}
}

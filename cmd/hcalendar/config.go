package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nikmy/hcalendar/internal/api"
	"github.com/nikmy/hcalendar/internal/telegram"
	"github.com/nikmy/hcalendar/pkg/calendar"
	"github.com/nikmy/hcalendar/pkg/environment"
	"github.com/nikmy/hcalendar/pkg/errors"
)

type Config struct {
	Environment environment.Env `yaml:"Environment"`
	Telegram    telegram.Config `yaml:"Telegram"`
	HTTP        api.Config      `yaml:"HTTP"`
	Calendar    CalendarConfig  `yaml:"Calendar"`
}

// CalendarConfig holds the defaults of every new picker.
type CalendarConfig struct {
	Language string `yaml:"language"`

	// MinDate and MaxDate are YYYY-MM-DD, "today" or empty for no bound.
	MinDate string `yaml:"minDate"`
	MaxDate string `yaml:"maxDate"`

	// AheadDays bounds the picker to today + AheadDays when MaxDate is empty.
	AheadDays int `yaml:"aheadDays"`
}

func (c CalendarConfig) options(now time.Time) ([]calendar.Option, error) {
	minimum, err := parseBound(c.MinDate, now)
	if err != nil {
		return nil, errors.WrapFail(err, "parse minDate")
	}

	maximum, err := parseBound(c.MaxDate, now)
	if err != nil {
		return nil, errors.WrapFail(err, "parse maxDate")
	}
	if maximum.IsZero() && c.AheadDays > 0 {
		maximum = calendar.DateOf(now).AddDate(0, 0, c.AheadDays)
	}

	return []calendar.Option{
		calendar.WithLocale(calendar.LocaleFor(c.Language)),
		calendar.WithBounds(minimum, maximum),
	}, nil
}

func parseBound(value string, now time.Time) (time.Time, error) {
	switch value {
	case "":
		return time.Time{}, nil
	case "today":
		return calendar.DateOf(now), nil
	}
	return time.Parse(time.DateOnly, value)
}

func loadConfig() (*Config, error) {
	path, err := filepath.Abs("config.yaml")
	if err != nil {
		return nil, errors.WrapFail(err, "build path to config")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFail(err, "read \"config.yaml\"")
	}

	cfg, err := parseConfig(data)
	if err != nil {
		return nil, err
	}

	if envFromFlags := getEnvFromFlags(); envFromFlags != nil {
		cfg.Environment = *envFromFlags
	}

	return cfg, nil
}

func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, errors.WrapFail(err, "parse yaml")
	}
	return &cfg, nil
}

func getEnvFromFlags() *environment.Env {
	raw := flag.String("env", "", "environment (dev, prod)")
	flag.Parse()
	if *raw == "" {
		return nil
	}

	env := environment.FromString(*raw)
	return &env
}

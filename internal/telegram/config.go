package telegram

import (
	"time"

	"github.com/nikmy/hcalendar/internal/session"
)

type Config struct {
	Token        string        `yaml:"token"`
	PollInterval time.Duration `yaml:"pollInterval"`

	// EditInterval limits how often the bot edits messages, Telegram
	// rejects bursts of edits in one chat.
	EditInterval time.Duration `yaml:"editInterval"`
	EditQueue    int           `yaml:"editQueue"`

	StripWidth int            `yaml:"stripWidth"`
	Sessions   session.Config `yaml:"sessions"`
}

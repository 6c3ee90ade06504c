package telegram

import (
	"context"

	"github.com/vitaliy-ukiru/fsm-telebot"
	"gopkg.in/telebot.v3"
)

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=telegram

// calendarContext is the part of telebot.Context the handlers use.
type calendarContext interface {
	Chat() *telebot.Chat
	Text() string
	Data() string
	Send(what interface{}, opts ...interface{}) error
	Edit(what interface{}, opts ...interface{}) error
	Respond(resp ...*telebot.CallbackResponse) error
}

type stateSetter interface {
	Set(state fsm.State) error
}

type editor interface {
	Do(ctx context.Context, action func()) bool
}

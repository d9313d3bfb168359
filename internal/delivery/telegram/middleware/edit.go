package middleware

import (
	"gopkg.in/telebot.v3"
)

// EditOrSend edits the message behind a callback, falling back to a new
// message when there is nothing to edit or the edit is rejected.
func EditOrSend(c telebot.Context, text string, markup *telebot.ReplyMarkup) error {
	opts := []interface{}{}
	if markup != nil {
		opts = append(opts, markup)
	}
	if c.Callback() == nil {
		return c.Send(text, opts...)
	}
	if err := c.Edit(text, opts...); err != nil {
		return c.Send(text, opts...)
	}
	return nil
}

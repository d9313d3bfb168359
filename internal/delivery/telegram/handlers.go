package telegram

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/telebot.v3"

	"staff-directory/internal/app/service"
	"staff-directory/internal/delivery/flows"
	"staff-directory/internal/delivery/router"
	"staff-directory/internal/delivery/telegram/keyboards"
	"staff-directory/internal/delivery/telegram/middleware"
)

const commandTimeout = 10 * time.Second

// Handler serves the directory commands over Telegram. Every directory
// access goes through Async, which must wrap a single-worker pool.
type Handler struct {
	Bot       *telebot.Bot
	Router    router.Dispatcher
	Async     *service.AsyncService
	Employees *service.EmployeeService
	Logger    *zap.Logger
	// Timeout bounds each command, queue wait included. Zero means commandTimeout.
	Timeout time.Duration
}

func (h *Handler) Register() {
	if h.Logger == nil {
		h.Logger = zap.NewNop()
	}
	h.Bot.Handle("/start", h.handleStart)
	h.Bot.Handle("/departments", h.handleDepartments)
	h.Bot.Handle(telebot.OnCallback, h.handleCallback)
	h.Bot.Handle(telebot.OnText, h.handleText)
}

func (h *Handler) handleStart(c telebot.Context) error {
	return c.Send("Welcome to the staff directory!\n\n" + flows.Help + "\n\n/departments - pick a department")
}

func (h *Handler) handleText(c telebot.Context) error {
	ctx, cancel := h.commandContext()
	defer cancel()

	text := c.Text()
	v, err := h.Async.SubmitAsync(ctx, func() (any, error) {
		return h.Router.Dispatch(ctx, text)
	})
	res, _ := v.(router.Result)
	if err != nil && !isUsage(err) {
		h.Logger.Error("command failed", zap.Int64("chat", c.Chat().ID), zap.String("text", text), zap.Error(err))
	}
	return c.Send(renderReply(res, err))
}

func (h *Handler) handleDepartments(c telebot.Context) error {
	ctx, cancel := h.commandContext()
	defer cancel()

	v, err := h.Async.SubmitAsync(ctx, func() (any, error) {
		return h.Employees.Departments(ctx)
	})
	if err != nil {
		h.Logger.Error("list departments", zap.Error(err))
		return c.Send("error: " + err.Error())
	}
	departments, _ := v.([]string)
	title, markup := keyboards.BuildDepartmentKeyboard(departments)
	return c.Send(title, markup)
}

func (h *Handler) handleCallback(c telebot.Context) error {
	key, payload := splitCallback(c.Data())
	h.Logger.Debug("callback", zap.String("key", key), zap.String("payload", payload))
	_ = c.Respond()

	switch key {
	case keyboards.PickDepartment:
		ctx, cancel := h.commandContext()
		defer cancel()

		v, err := h.Async.SubmitAsync(ctx, func() (any, error) {
			return h.Employees.ListDepartment(ctx, payload)
		})
		if err != nil {
			h.Logger.Error("list department", zap.String("department", payload), zap.Error(err))
			return middleware.EditOrSend(c, "error: "+err.Error(), nil)
		}
		names, _ := v.([]string)
		return middleware.EditOrSend(c, payload+": "+flows.FormatNames(names), nil)
	}
	return nil
}

func (h *Handler) commandContext() (context.Context, context.CancelFunc) {
	timeout := h.Timeout
	if timeout <= 0 {
		timeout = commandTimeout
	}
	return context.WithTimeout(context.Background(), timeout)
}

// splitCallback strips telebot's "\f" marker and separates "key|payload".
func splitCallback(data string) (key, payload string) {
	raw := strings.TrimPrefix(data, "\f")
	key, payload, _ = strings.Cut(raw, "|")
	return key, payload
}

func renderReply(res router.Result, err error) string {
	var usage *router.UsageError
	switch {
	case errors.As(err, &usage):
		return usage.Error() + "\n" + flows.Help
	case err != nil:
		return "error: " + err.Error()
	case res.Status == router.Exit:
		return "Bye! The directory keeps running; send /start to come back."
	case res.Output == "":
		return "ok"
	}
	return res.Output
}

func isUsage(err error) bool {
	var usage *router.UsageError
	return errors.As(err, &usage)
}

package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/telebot.v3"

	"staff-directory/internal/app/service"
	"staff-directory/internal/delivery/telegram"
	"staff-directory/pkg/workerpool"
)

func newTelegramCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "telegram",
		Short: "Serve the directory commands over a Telegram bot",
		Long: `Starts a long-polling Telegram bot that accepts the same commands as the
interactive mode. /departments shows a department picker. Requires
TELEGRAM_TOKEN (environment, .env, or telegram.token in the config file).`,
		Args: cobra.NoArgs,
		RunE: a.runTelegram,
	}
}

func (a *app) runTelegram(cmd *cobra.Command, args []string) error {
	if err := a.cfg.RequireTelegramToken(); err != nil {
		return err
	}
	employees, r, closeRepo, err := a.newDirectory()
	if err != nil {
		return err
	}
	defer closeRepo()

	// One worker: directory commands must not run concurrently.
	pool := workerpool.NewWorkerPool(1, a.cfg.Telegram.Queue)
	defer pool.Close()

	bot, err := telebot.NewBot(telebot.Settings{
		Token:  a.cfg.Telegram.Token,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) {
			a.logger.Error("telegram handler", zap.Error(err))
		},
	})
	if err != nil {
		return err
	}

	handler := &telegram.Handler{
		Bot:       bot,
		Router:    r,
		Async:     service.NewAsyncService(pool),
		Employees: employees,
		Logger:    a.logger,
	}
	handler.Register()

	go func() {
		<-cmd.Context().Done()
		bot.Stop()
	}()
	a.logger.Info("bot started", zap.String("username", bot.Me.Username))
	bot.Start()
	return nil
}

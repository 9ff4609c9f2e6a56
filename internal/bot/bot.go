// Package bot wires the Telegram transport to the price-entry wizard.
package bot

import (
	"context"
	"fmt"
	"log/slog"

	telebot "gopkg.in/telebot.v3"

	"github.com/zargram/pricebot/internal/announce"
	"github.com/zargram/pricebot/internal/auth"
	"github.com/zargram/pricebot/internal/bot/handlers"
	"github.com/zargram/pricebot/internal/bot/keyboard"
	"github.com/zargram/pricebot/internal/conversation"
	apperrors "github.com/zargram/pricebot/internal/errors"
	"github.com/zargram/pricebot/internal/i18n"
	"github.com/zargram/pricebot/internal/journal"
	"github.com/zargram/pricebot/internal/publisher"
	"github.com/zargram/pricebot/pkg/config"
)

// Bot wraps telebot.Bot with the application dependencies required for
// handling updates.
type Bot struct {
	telebot    *telebot.Bot
	log        *slog.Logger
	cfg        config.Config
	machine    *conversation.Machine
	router     *Router
	dispatcher *Dispatcher
	keyboard   *keyboard.Builder
	errHandler *apperrors.Handler
}

// New builds a telegram bot instance configured according to the application
// settings.
func New(
	cfg config.Config,
	log *slog.Logger,
	machine *conversation.Machine,
	jr journal.Journal,
	composer *announce.Composer,
	allow *auth.Allowlist,
	msgs *i18n.Catalog,
) (*Bot, error) {
	settings := telebot.Settings{
		Token: cfg.Bot.Token,
	}

	if cfg.Bot.Mode == "webhook" {
		settings.Poller = &telebot.Webhook{
			Listen: cfg.Bot.WebhookListen,
			Endpoint: &telebot.WebhookEndpoint{
				PublicURL: cfg.Bot.WebhookURL,
			},
		}
	} else {
		settings.Poller = &telebot.LongPoller{
			Timeout: cfg.Bot.Timeout,
		}
	}

	tb, err := telebot.NewBot(settings)
	if err != nil {
		return nil, fmt.Errorf("initialize telebot: %w", err)
	}

	kb := keyboard.NewBuilder(msgs, log)
	pub := publisher.NewChannelPublisher(tb, cfg.Channel.ChatID, log)
	errHandler := apperrors.NewHandler(log, cfg.Sentry.Enabled)

	dispatcher := NewDispatcher(machine, log)
	dispatcher.RegisterStepHandler(conversation.StepBuyPrice, handlers.NewBuyPriceHandler(machine, msgs, log))
	dispatcher.RegisterStepHandler(conversation.StepSellPrice, handlers.NewSellPriceHandler(machine, composer, kb, msgs, log))

	callbacks := CallbackHandlers{
		BeginEntry:   handlers.NewBeginEntryHandler(machine, allow, msgs, log),
		SendConfirm:  handlers.NewSendConfirmHandler(machine, pub, jr, composer, msgs, log),
		Cancel:       handlers.NewCancelHandler(machine, msgs, log),
		ReturnToMenu: handlers.NewReturnToMenuHandler(machine, kb, msgs, log),
		DailyReport:  handlers.NewDailyReportHandler(msgs, log),
	}

	router := NewRouter(dispatcher, callbacks, log)
	router.Use(RecoveryMiddleware(log, errHandler))
	router.Use(ErrorHandlingMiddleware(errHandler))
	router.Use(LoggingMiddleware(log))
	router.Use(MetricsMiddleware)

	router.RegisterCommand(CommandStart, handlers.NewStartHandler(allow, kb, msgs, log))

	b := &Bot{
		telebot:    tb,
		log:        log,
		cfg:        cfg,
		machine:    machine,
		router:     router,
		dispatcher: dispatcher,
		keyboard:   kb,
		errHandler: errHandler,
	}

	b.telebot.Handle(telebot.OnText, b.router.Route)
	b.telebot.Handle(telebot.OnCallback, b.router.Route)

	return b, nil
}

// Start runs the telegram bot event loop.
func (b *Bot) Start() {
	if b.telebot != nil {
		b.telebot.Start()
	}
}

// Stop gracefully stops the telegram bot.
func (b *Bot) Stop() {
	if b.telebot == nil {
		return
	}

	b.log.Info("stopping telegram bot...")
	b.telebot.Stop()
}

// Telebot exposes the underlying telebot.Bot instance for integrations such
// as health checks.
func (b *Bot) Telebot() *telebot.Bot {
	return b.telebot
}

// HealthCheck reports whether the bot identity was resolved at startup.
func (b *Bot) HealthCheck(ctx context.Context) error {
	if b.telebot == nil || b.telebot.Me == nil {
		return fmt.Errorf("telegram bot not initialized")
	}
	return nil
}

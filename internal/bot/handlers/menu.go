package handlers

import (
	"context"
	"log/slog"

	telebot "gopkg.in/telebot.v3"

	"github.com/zargram/pricebot/internal/auth"
	"github.com/zargram/pricebot/internal/bot/keyboard"
	"github.com/zargram/pricebot/internal/conversation"
	"github.com/zargram/pricebot/internal/i18n"
)

// NewBeginEntryHandler starts a fresh price entry and prompts for the buy
// price. The menu button is only offered to admins, so a forged callback
// from anyone else is dropped silently.
func NewBeginEntryHandler(machine *conversation.Machine, allow *auth.Allowlist, msgs *i18n.Catalog, log *slog.Logger) Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(c telebot.Context) error {
		sender := c.Sender()
		if sender == nil {
			return nil
		}

		_ = c.Respond()

		if !allow.Allowed(sender.ID) {
			log.Warn("begin-entry callback from non-admin", slog.Int64("user_id", sender.ID))
			return nil
		}

		if _, err := machine.Begin(context.Background(), sender.ID); err != nil {
			log.Error("failed to begin price entry", slog.Int64("user_id", sender.ID), slog.Any("error", err))
			return err
		}

		return NewScreen(c).EditInPlace(msgs.T("prompt.buy"), nil)
	}
}

// NewReturnToMenuHandler clears any in-flight entry and rewrites the current
// message back into the main menu. Pressing it while idle is harmless.
func NewReturnToMenuHandler(machine *conversation.Machine, kb *keyboard.Builder, msgs *i18n.Catalog, log *slog.Logger) Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(c telebot.Context) error {
		sender := c.Sender()
		if sender == nil {
			return nil
		}

		_ = c.Respond()

		if err := machine.Clear(context.Background(), sender.ID); err != nil {
			log.Error("failed to clear entry", slog.Int64("user_id", sender.ID), slog.Any("error", err))
			return err
		}

		return NewScreen(c).EditInPlace(msgs.T("menu.title"), kb.MainMenu())
	}
}

// NewDailyReportHandler answers the daily-report button. The report itself
// has no behavior yet; the button stays reachable so the menu layout is
// final.
func NewDailyReportHandler(msgs *i18n.Catalog, log *slog.Logger) Handler {
	return func(c telebot.Context) error {
		return c.Respond(&telebot.CallbackResponse{
			Text: msgs.T("report.unavailable"),
		})
	}
}

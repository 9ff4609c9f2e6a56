// Package handlers contains the update handlers for the price-entry wizard
// and the main menu.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	telebot "gopkg.in/telebot.v3"

	"github.com/zargram/pricebot/internal/announce"
	"github.com/zargram/pricebot/internal/bot/keyboard"
	"github.com/zargram/pricebot/internal/conversation"
	apperrors "github.com/zargram/pricebot/internal/errors"
	"github.com/zargram/pricebot/internal/i18n"
	"github.com/zargram/pricebot/internal/journal"
	"github.com/zargram/pricebot/internal/pricing"
	"github.com/zargram/pricebot/internal/publisher"
	"github.com/zargram/pricebot/pkg/metrics"
)

// NewBuyPriceHandler consumes the buy price. Invalid input re-prompts in
// place without touching the entry; there is no retry limit.
func NewBuyPriceHandler(machine *conversation.Machine, msgs *i18n.Catalog, log *slog.Logger) Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(c telebot.Context) error {
		sender := c.Sender()
		if sender == nil {
			return nil
		}

		ctx := context.Background()
		entry, err := machine.Get(ctx, sender.ID)
		if err != nil {
			if errors.Is(err, conversation.ErrEntryNotFound) {
				return nil
			}
			return err
		}
		if entry.Step != conversation.StepBuyPrice {
			return nil
		}

		value, err := pricing.ParseAmount(c.Text())
		if err != nil {
			metrics.RecordInputRejection()
			appErr := apperrors.NewValidationError(fmt.Sprintf("invalid buy price input: %v", err))
			appErr.UserMessage = msgs.T("input.invalid")
			return appErr
		}

		entry.BuyPrice = value
		if err := machine.Advance(ctx, entry, conversation.StepSellPrice); err != nil {
			log.Error("failed to advance to sell step", slog.Int64("user_id", sender.ID), slog.Any("error", err))
			return err
		}

		return c.Send(msgs.T("prompt.sell"))
	}
}

// NewSellPriceHandler consumes the sell price, renders the announcement
// preview, and offers send/cancel/return.
func NewSellPriceHandler(
	machine *conversation.Machine,
	composer *announce.Composer,
	kb *keyboard.Builder,
	msgs *i18n.Catalog,
	log *slog.Logger,
) Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(c telebot.Context) error {
		sender := c.Sender()
		if sender == nil {
			return nil
		}

		ctx := context.Background()
		entry, err := machine.Get(ctx, sender.ID)
		if err != nil {
			if errors.Is(err, conversation.ErrEntryNotFound) {
				return nil
			}
			return err
		}
		if entry.Step != conversation.StepSellPrice {
			return nil
		}

		value, err := pricing.ParseAmount(c.Text())
		if err != nil {
			metrics.RecordInputRejection()
			appErr := apperrors.NewValidationError(fmt.Sprintf("invalid sell price input: %v", err))
			appErr.UserMessage = msgs.T("input.invalid")
			return appErr
		}

		entry.SellPrice = value
		entry.Preview = composer.Compose(entry.BuyPrice, entry.SellPrice)
		if err := machine.Advance(ctx, entry, conversation.StepConfirm); err != nil {
			log.Error("failed to advance to confirm step", slog.Int64("user_id", sender.ID), slog.Any("error", err))
			return err
		}

		text := entry.Preview + "\n" + msgs.T("preview.ready")
		return NewScreen(c).Respond(text, kb.ConfirmMenu())
	}
}

// NewSendConfirmHandler publishes the previewed announcement, appends one
// journal record, and clears the entry. A confirm press with no rendered
// preview is skipped silently, but the entry is still cleared.
func NewSendConfirmHandler(
	machine *conversation.Machine,
	pub publisher.Publisher,
	jr journal.Journal,
	composer *announce.Composer,
	msgs *i18n.Catalog,
	log *slog.Logger,
) Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(c telebot.Context) error {
		sender := c.Sender()
		if sender == nil {
			return nil
		}

		_ = c.Respond()

		ctx := context.Background()
		entry, err := machine.Get(ctx, sender.ID)
		if err != nil {
			if errors.Is(err, conversation.ErrEntryNotFound) {
				return nil
			}
			return err
		}

		if entry.Step != conversation.StepConfirm || entry.Preview == "" {
			log.Warn("confirm pressed without a rendered preview",
				slog.Int64("user_id", sender.ID), slog.String("step", string(entry.Step)))
			return machine.Clear(ctx, sender.ID)
		}

		if err := pub.Publish(ctx, entry.Preview); err != nil {
			return err
		}

		record := journal.Record{
			Timestamp: composer.Now(),
			BuyPrice:  entry.BuyPrice,
			SellPrice: entry.SellPrice,
			UserID:    sender.ID,
		}
		if err := jr.Append(ctx, record); err != nil {
			metrics.RecordJournalAppendFailure()
			return apperrors.NewJournalError(err)
		}

		metrics.RecordAnnouncementPublished()

		if err := machine.Clear(ctx, sender.ID); err != nil {
			log.Error("failed to clear entry after send", slog.Int64("user_id", sender.ID), slog.Any("error", err))
			return err
		}

		return NewScreen(c).EditInPlace(msgs.T("result.sent"), nil)
	}
}

// NewCancelHandler drops the in-flight entry. Cancelling while idle is a
// silent no-op apart from the confirmation text.
func NewCancelHandler(machine *conversation.Machine, msgs *i18n.Catalog, log *slog.Logger) Handler {
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
			log.Error("failed to clear entry on cancel", slog.Int64("user_id", sender.ID), slog.Any("error", err))
			return err
		}

		return NewScreen(c).EditInPlace(msgs.T("result.cancelled"), nil)
	}
}

// Package publisher delivers finalized announcements to the broadcast
// channel.
package publisher

import (
	"context"
	"log/slog"

	telebot "gopkg.in/telebot.v3"

	apperrors "github.com/zargram/pricebot/internal/errors"
)

// Publisher sends an announcement to the configured broadcast destination.
type Publisher interface {
	Publish(ctx context.Context, text string) error
}

// channel adapts a chat identifier string (numeric ID or @username) to a
// telebot recipient.
type channel string

func (c channel) Recipient() string { return string(c) }

// ChannelPublisher publishes announcements through the Telegram bot API.
type ChannelPublisher struct {
	bot  *telebot.Bot
	chat telebot.Recipient
	log  *slog.Logger
}

// NewChannelPublisher creates a publisher targeting the given chat
// identifier.
func NewChannelPublisher(bot *telebot.Bot, chatID string, log *slog.Logger) *ChannelPublisher {
	if log == nil {
		log = slog.Default()
	}

	return &ChannelPublisher{
		bot:  bot,
		chat: channel(chatID),
		log:  log,
	}
}

// Publish sends the text to the broadcast channel.
func (p *ChannelPublisher) Publish(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := p.bot.Send(p.chat, text); err != nil {
		p.log.Error("failed to publish announcement", slog.String("chat", p.chat.Recipient()), slog.Any("error", err))
		return apperrors.NewPublishError(err)
	}

	return nil
}

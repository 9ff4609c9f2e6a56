// Package keyboard builds the inline keyboards offered to admins.
package keyboard

import (
	"log/slog"

	telebot "gopkg.in/telebot.v3"

	"github.com/zargram/pricebot/internal/i18n"
)

// Callback payload values carried by inline buttons.
const (
	DataBeginEntry   = "start_price"
	DataSendConfirm  = "send_confirm"
	DataCancel       = "cancel"
	DataReturnToMenu = "back_to_menu"
	DataDailyReport  = "daily_report"
)

// Builder creates inline keyboards with localized labels.
type Builder struct {
	msgs *i18n.Catalog
	log  *slog.Logger
}

// NewBuilder returns a new Builder instance.
func NewBuilder(msgs *i18n.Catalog, log *slog.Logger) *Builder {
	return &Builder{msgs: msgs, log: log}
}

// MainMenu builds the top-level menu: begin a price entry or request the
// daily report.
func (b *Builder) MainMenu() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	markup.InlineKeyboard = [][]telebot.InlineButton{
		{
			{
				Text: b.msgs.T("menu.new_price"),
				Data: DataBeginEntry,
			},
		},
		{
			{
				Text: b.msgs.T("menu.daily_report"),
				Data: DataDailyReport,
			},
		},
	}
	return markup
}

// ConfirmMenu builds the preview confirmation keyboard: send, cancel, or
// return to the main menu.
func (b *Builder) ConfirmMenu() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	markup.InlineKeyboard = [][]telebot.InlineButton{
		{
			{
				Text: b.msgs.T("confirm.send"),
				Data: DataSendConfirm,
			},
		},
		{
			{
				Text: b.msgs.T("confirm.cancel"),
				Data: DataCancel,
			},
		},
		{
			{
				Text: b.msgs.T("confirm.back"),
				Data: DataReturnToMenu,
			},
		},
	}
	return markup
}

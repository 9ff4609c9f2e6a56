package handlers

import (
	"log/slog"

	telebot "gopkg.in/telebot.v3"

	"github.com/zargram/pricebot/internal/auth"
	"github.com/zargram/pricebot/internal/bot/keyboard"
	apperrors "github.com/zargram/pricebot/internal/errors"
	"github.com/zargram/pricebot/internal/i18n"
)

// NewStartHandler gates /start behind the admin allow-list and presents the
// main menu. Unauthorized users produce an access-denied error whose notice
// the error-handling middleware delivers; no entry is created and no state
// is touched.
func NewStartHandler(allow *auth.Allowlist, kb *keyboard.Builder, msgs *i18n.Catalog, log *slog.Logger) Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(c telebot.Context) error {
		sender := c.Sender()
		if sender == nil {
			log.Warn("start handler invoked without sender")
			return nil
		}

		if !allow.Allowed(sender.ID) {
			log.Info("start rejected for non-admin", slog.Int64("user_id", sender.ID))
			appErr := apperrors.NewAccessDeniedError(sender.ID)
			appErr.UserMessage = msgs.T("access.denied")
			return appErr
		}

		return NewScreen(c).Respond(msgs.T("menu.title"), kb.MainMenu())
	}
}

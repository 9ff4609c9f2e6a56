package bot

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	telebot "gopkg.in/telebot.v3"

	"github.com/zargram/pricebot/internal/bot/handlers"
	apperrors "github.com/zargram/pricebot/internal/errors"
)

type recordingContext struct {
	routeContext
	sent []string
}

func (r *recordingContext) Send(what interface{}, opts ...interface{}) error {
	r.sent = append(r.sent, what.(string))
	return nil
}

func failingHandler(err error) handlers.Handler {
	return func(c telebot.Context) error { return err }
}

func TestErrorHandlingMiddleware(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	errHandler := apperrors.NewHandler(log, false)
	mw := ErrorHandlingMiddleware(errHandler)

	t.Run("app error reaches the admin with its own message", func(t *testing.T) {
		journalErr := apperrors.NewJournalError(assert.AnError)

		c := &recordingContext{}
		require.NoError(t, mw(failingHandler(journalErr))(c))

		require.Len(t, c.sent, 1)
		assert.Equal(t, journalErr.UserMessage, c.sent[0])
	})

	t.Run("unknown error falls back to the generic message", func(t *testing.T) {
		c := &recordingContext{}
		require.NoError(t, mw(failingHandler(assert.AnError))(c))

		require.Len(t, c.sent, 1)
		assert.Equal(t, "⚠️ خطایی رخ داد. دوباره تلاش کنید.", c.sent[0])
	})

	t.Run("success passes through untouched", func(t *testing.T) {
		c := &recordingContext{}
		require.NoError(t, mw(func(tc telebot.Context) error { return nil })(c))
		assert.Empty(t, c.sent)
	})
}

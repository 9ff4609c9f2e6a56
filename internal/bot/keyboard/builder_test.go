package keyboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zargram/pricebot/internal/bot/keyboard"
	"github.com/zargram/pricebot/internal/i18n"
)

func TestBuilder_MainMenu(t *testing.T) {
	b := keyboard.NewBuilder(i18n.NewCatalog(), nil)

	markup := b.MainMenu()
	require.NotNil(t, markup)
	require.Len(t, markup.InlineKeyboard, 2)

	assert.Equal(t, keyboard.DataBeginEntry, markup.InlineKeyboard[0][0].Data)
	assert.Equal(t, keyboard.DataDailyReport, markup.InlineKeyboard[1][0].Data)
	assert.NotEmpty(t, markup.InlineKeyboard[0][0].Text)
}

func TestBuilder_ConfirmMenu(t *testing.T) {
	b := keyboard.NewBuilder(i18n.NewCatalog(), nil)

	markup := b.ConfirmMenu()
	require.NotNil(t, markup)
	require.Len(t, markup.InlineKeyboard, 3)

	assert.Equal(t, keyboard.DataSendConfirm, markup.InlineKeyboard[0][0].Data)
	assert.Equal(t, keyboard.DataCancel, markup.InlineKeyboard[1][0].Data)
	assert.Equal(t, keyboard.DataReturnToMenu, markup.InlineKeyboard[2][0].Data)
}

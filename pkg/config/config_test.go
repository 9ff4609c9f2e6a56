package config

import (
	"testing"

	validator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAdminList(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected []int64
		wantErr  bool
	}{
		{name: "single id", raw: "12345", expected: []int64{12345}},
		{name: "multiple ids", raw: "1,2,3", expected: []int64{1, 2, 3}},
		{name: "spaces and trailing comma", raw: " 10 , 20 ,", expected: []int64{10, 20}},
		{name: "empty string", raw: "", expected: []int64{}},
		{name: "malformed item", raw: "1,abc", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ids, err := ParseAdminList(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ids)
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "polling", cfg.Bot.Mode)
	assert.Equal(t, ":8443", cfg.Bot.WebhookListen)
	assert.Equal(t, "Asia/Tehran", cfg.Timezone)
	assert.Equal(t, "prices.csv", cfg.Journal.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, ":8080", cfg.Server.Port)
}

func TestWebhookModeRequiresURL(t *testing.T) {
	base := func() Config {
		cfg := Config{}
		cfg.Bot.Token = "token"
		cfg.Channel.ChatID = "@channel"
		cfg.Admins = []int64{1}
		applyDefaults(&cfg)
		return cfg
	}
	validate := validator.New(validator.WithRequiredStructEnabled())

	cfg := base()
	require.NoError(t, validate.Struct(cfg))

	cfg = base()
	cfg.Bot.Mode = "webhook"
	require.Error(t, validate.Struct(cfg))

	cfg = base()
	cfg.Bot.Mode = "webhook"
	cfg.Bot.WebhookURL = "https://bot.example.com/updates"
	require.NoError(t, validate.Struct(cfg))

	cfg = base()
	cfg.Bot.WebhookURL = "not a url"
	require.Error(t, validate.Struct(cfg))
}

package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zargram/pricebot/pkg/config"
)

func TestNew(t *testing.T) {
	t.Run("stdout text logger", func(t *testing.T) {
		log := New(config.LogConfig{Level: "debug", Format: "text"}, false)
		require.NotNil(t, log)
		log.Info("boot")
	})

	t.Run("json logger with file sink", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "bot.log")
		log := New(config.LogConfig{Level: "info", Format: "json", File: file}, false)
		require.NotNil(t, log)

		log.Info("boot")
		assert.FileExists(t, file)
	})

	t.Run("sentry fan-out enabled", func(t *testing.T) {
		// No sentry.Init has run, so captures are dropped at the hub;
		// the handler chain itself must still build and accept records.
		log := New(config.LogConfig{Level: "error", Format: "text"}, true)
		require.NotNil(t, log)

		log.Error("boot failure")
		log.With("component", "test").Error("boot failure with attrs")
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected string
	}{
		{"debug", "DEBUG"},
		{"", "INFO"},
		{"warn", "WARN"},
		{"error", "ERROR"},
		{"bogus", "INFO"},
	}

	for _, tc := range tests {
		if got := parseLevel(tc.level).String(); got != tc.expected {
			t.Errorf("parseLevel(%q) = %s, want %s", tc.level, got, tc.expected)
		}
	}
}

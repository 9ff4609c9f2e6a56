package config

import (
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration for the price announcement bot.
type Config struct {
	AppEnv string

	Bot      BotConfig     `mapstructure:"bot" validate:"required"`
	Channel  ChannelConfig `mapstructure:"channel" validate:"required"`
	Admins   []int64       `mapstructure:"admins" validate:"required,min=1"`
	Timezone string        `mapstructure:"timezone"`
	Journal  JournalConfig `mapstructure:"journal"`
	Announce AnnounceConfig `mapstructure:"announce"`
	Redis    RedisConfig   `mapstructure:"redis"`
	Log      LogConfig     `mapstructure:"log"`
	Sentry   SentryConfig  `mapstructure:"sentry"`
	Server   ServerConfig  `mapstructure:"server"`
}

// BotConfig configures the Telegram transport. Webhook mode needs the
// public HTTPS URL Telegram will call and its own listen address, kept
// separate from the ops server port.
type BotConfig struct {
	Token         string        `mapstructure:"token" validate:"required"`
	Mode          string        `mapstructure:"mode" validate:"omitempty,oneof=polling webhook"`
	Timeout       time.Duration `mapstructure:"timeout"`
	WebhookURL    string        `mapstructure:"webhook_url" validate:"required_if=Mode webhook,omitempty,url"`
	WebhookListen string        `mapstructure:"webhook_listen"`
}

// ChannelConfig identifies the broadcast destination. ChatID accepts either a
// numeric chat identifier or an @username.
type ChannelConfig struct {
	ChatID string `mapstructure:"chat_id" validate:"required"`
}

// JournalConfig configures the append-only price log.
type JournalConfig struct {
	Path string `mapstructure:"path"`
}

// AnnounceConfig holds the static pieces of the announcement template.
type AnnounceConfig struct {
	Contact string `mapstructure:"contact"`
}

// RedisConfig configures the optional Redis-backed conversation store. An
// empty Addr keeps conversation state in process memory.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	EntryTTL time.Duration `mapstructure:"entry_ttl"`
}

// LogConfig configures the slog output.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=text json"`

	// File enables a rotating file sink next to stdout when non-empty.
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// SentryConfig configures error reporting.
type SentryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	DSN     string `mapstructure:"dsn" validate:"required_if=Enabled true"`
}

// ServerConfig configures the HTTP surface serving /metrics and /healthz.
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func applyDefaults(cfg *Config) {
	if cfg.Bot.Mode == "" {
		cfg.Bot.Mode = "polling"
	}
	if cfg.Bot.Timeout == 0 {
		cfg.Bot.Timeout = 10 * time.Second
	}
	if cfg.Bot.WebhookListen == "" {
		cfg.Bot.WebhookListen = ":8443"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Asia/Tehran"
	}
	if cfg.Journal.Path == "" {
		cfg.Journal.Path = "prices.csv"
	}
	if cfg.Redis.EntryTTL == 0 {
		cfg.Redis.EntryTTL = time.Hour
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = ":8080"
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}
}

// ParseAdminList converts a comma-separated list of Telegram IDs into int64s.
// Blank items are skipped; a malformed item fails the whole list.
func ParseAdminList(raw string) ([]int64, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

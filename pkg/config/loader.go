// Package config provides configuration loading, validation, and hot reload
// of the admin allow-list.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configuration from YAML files and environment variables,
// validates it, and returns the resulting Config.
func Load() (*Config, *viper.Viper, error) {
	if err := godotenv.Load(".env.local", ".env"); err != nil {
		// missing env files are fine
		_ = err
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	v := viper.New()
	v.SetConfigFile(fmt.Sprintf("./configs/%s.yaml", env))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.AppEnv = env

	// The deployment convention predates the YAML layout: ADMINS may arrive
	// as a comma-separated env string and wins over the file value.
	if raw := os.Getenv("ADMINS"); raw != "" {
		ids, err := ParseAdminList(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("parse ADMINS: %w", err)
		}
		cfg.Admins = ids
	}

	applyDefaults(&cfg)

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return nil, nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, v, nil
}

// WatchAdmins re-parses the admin list whenever the config file changes and
// hands the new list to apply. Parse failures keep the previous list.
func WatchAdmins(v *viper.Viper, log *slog.Logger, apply func([]int64)) {
	if v == nil || apply == nil {
		return
	}
	if log == nil {
		log = slog.Default()
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		var next struct {
			Admins []int64 `mapstructure:"admins"`
		}
		if err := v.Unmarshal(&next); err != nil {
			log.Error("config reload: unmarshal failed", slog.String("file", e.Name), slog.Any("error", err))
			return
		}
		if len(next.Admins) == 0 {
			log.Warn("config reload: empty admin list ignored", slog.String("file", e.Name))
			return
		}

		apply(next.Admins)
		log.Info("config reload: admin list updated", slog.Int("admins", len(next.Admins)))
	})
	v.WatchConfig()
}

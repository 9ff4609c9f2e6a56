package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zargram/pricebot/internal/announce"
	"github.com/zargram/pricebot/internal/auth"
	"github.com/zargram/pricebot/internal/bot"
	"github.com/zargram/pricebot/internal/conversation"
	"github.com/zargram/pricebot/internal/health"
	"github.com/zargram/pricebot/internal/i18n"
	"github.com/zargram/pricebot/internal/journal"
	"github.com/zargram/pricebot/pkg/config"
	"github.com/zargram/pricebot/pkg/graceful"
	"github.com/zargram/pricebot/pkg/logger"
	redisclient "github.com/zargram/pricebot/pkg/redis"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, v, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.New(cfg.Log, cfg.Sentry.Enabled)
	log.Info("starting price announcement bot",
		slog.String("env", cfg.AppEnv),
		slog.String("channel", cfg.Channel.ChatID),
		slog.Int("admins", len(cfg.Admins)),
	)

	if cfg.Sentry.Enabled {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.AppEnv,
		}); err != nil {
			log.Error("failed to initialize sentry", slog.Any("error", err))
			os.Exit(1)
		}
		defer sentry.Flush(2 * time.Second)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Error("failed to load timezone", slog.String("timezone", cfg.Timezone), slog.Any("error", err))
		os.Exit(1)
	}

	var storage conversation.Storage
	if cfg.Redis.Addr != "" {
		client, err := redisclient.New(ctx, redisclient.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Error("failed to connect to redis", slog.Any("error", err))
			os.Exit(1)
		}
		defer func() {
			if cerr := client.Close(); cerr != nil {
				log.Error("error closing redis client", slog.Any("error", cerr))
			}
		}()

		storage = conversation.NewRedisStorage(client, cfg.Redis.EntryTTL, log)
		log.Info("conversation state stored in redis", slog.String("addr", cfg.Redis.Addr))
	} else {
		storage = conversation.NewMemoryStorage()
	}

	machine := conversation.NewMachine(storage, log)
	jr := journal.NewCSVJournal(cfg.Journal.Path, log)
	composer := announce.NewComposer(loc, cfg.Channel.ChatID, cfg.Announce.Contact)

	allow := auth.NewAllowlist(cfg.Admins)
	config.WatchAdmins(v, log, allow.Replace)

	msgs, err := i18n.Load(i18n.DefaultPath)
	if err != nil {
		log.Error("failed to load message catalog", slog.Any("error", err))
		os.Exit(1)
	}

	b, err := bot.New(*cfg, log, machine, jr, composer, allow, msgs)
	if err != nil {
		log.Error("failed to initialize bot", slog.Any("error", err))
		os.Exit(1)
	}

	checker := health.NewChecker(log)
	checker.AddCheck("telegram", b)
	checker.AddCheck("journal", jr)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", checker.Handler())

	srv := graceful.NewServer(log, cfg.Server.Port, logger.Middleware(mux), cfg.Server.ShutdownTimeout)

	go func() {
		if err := srv.ListenAndServe(ctx); err != nil {
			log.Error("http server stopped with error", slog.Any("error", err))
		}
	}()

	go b.Start()
	log.Info("bot started")

	<-ctx.Done()

	b.Stop()
	log.Info("price announcement bot shut down")
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/mmynk/budgetbot/internal/bot"
	"github.com/mmynk/budgetbot/internal/config"
	"github.com/mmynk/budgetbot/internal/conversation"
	"github.com/mmynk/budgetbot/internal/middleware"
	"github.com/mmynk/budgetbot/internal/router"
	"github.com/mmynk/budgetbot/internal/service"
	"github.com/mmynk/budgetbot/internal/storage/sqlite"
	"github.com/mmynk/budgetbot/pkg/logging"
)

const pollTimeout = 60

func main() {
	cfg := config.MustLoad()
	logging.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	sessions, closeSessions, err := openSessions(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize session store", "error", err)
		os.Exit(1)
	}
	defer closeSessions()

	ledger := service.NewLedgerService(store, cfg.Categories, cfg.Location)
	r := router.New(ledger, sessions)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(reg)

	handle := middleware.Chain(r.Handle,
		middleware.Recover(),
		middleware.Correlate(),
		middleware.Logging(),
		metrics.Instrument(),
	)

	if cfg.MetricsAddr != "" {
		srv := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           metricsMux(reg),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			slog.Info("Metrics server starting", "address", cfg.MetricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("Metrics server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()
	}

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		slog.Error("Failed to initialize bot", "error", err)
		os.Exit(1)
	}
	if _, err := api.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		slog.Warn("Failed to delete webhook", "error", err)
	}

	slog.Info("Bot started", "username", api.Self.UserName)
	bot.Run(ctx, api, bot.NewHandler(api, handle), pollTimeout)
	slog.Info("Shutdown complete")
}

// openSessions picks Redis when it is configured and the in-memory store
// otherwise. The returned func releases the backend.
func openSessions(ctx context.Context, cfg *config.Config) (conversation.Store, func(), error) {
	if cfg.RedisAddr == "" {
		mem := conversation.NewMemoryStore(cfg.StateTTL)
		if cfg.StateTTL > 0 {
			go mem.RunJanitor(ctx, cfg.StateTTL/2)
		}
		slog.Info("Session store initialized", "backend", "memory", "ttl", cfg.StateTTL)
		return mem, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, err
	}
	slog.Info("Session store initialized", "backend", "redis", "address", cfg.RedisAddr, "ttl", cfg.StateTTL)
	return conversation.NewRedisStore(client, cfg.StateTTL), func() { client.Close() }, nil
}

func metricsMux(reg *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	return loggingMiddleware(mux)
}

// loggingMiddleware logs all scrape requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

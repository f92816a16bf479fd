// Package config loads the bot configuration from the environment.
// A .env file in the working directory is read first when present.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/mmynk/budgetbot/internal/models"
)

// Defaults seeded for every new user.
var (
	DefaultExpenseCategories = []string{"Продукты", "Транспорт", "Развлечения", "Здоровье", "Одежда", "Связь", "Коммунальные услуги", "Другое"}
	DefaultIncomeCategories  = []string{"Зарплата", "Фриланс", "Инвестиции", "Подарки", "Другое"}
)

// Config holds the application configuration.
type Config struct {
	BotToken string
	DBPath   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	StateTTL    time.Duration
	MetricsAddr string
	LogLevel    string
	Location    *time.Location

	Categories models.DefaultCategories
}

// Load reads the configuration. It fails when BOT_TOKEN is missing or a
// value cannot be parsed.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:      os.Getenv("BOT_TOKEN"),
		DBPath:        getEnv("DB_PATH", "./data/budget_bot.db"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		MetricsAddr:   ":9090",
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Categories: models.DefaultCategories{
			Expense: getList("DEFAULT_EXPENSE_CATEGORIES", DefaultExpenseCategories),
			Income:  getList("DEFAULT_INCOME_CATEGORIES", DefaultIncomeCategories),
		},
	}
	// An explicitly empty METRICS_ADDR disables the listener.
	if _, ok := os.LookupEnv("METRICS_ADDR"); ok {
		cfg.MetricsAddr = os.Getenv("METRICS_ADDR")
	}

	if cfg.BotToken == "" {
		return nil, errors.New("BOT_TOKEN is required")
	}

	if raw := os.Getenv("REDIS_DB"); raw != "" {
		db, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q: %w", raw, err)
		}
		cfg.RedisDB = db
	}

	ttl, err := time.ParseDuration(getEnv("STATE_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid STATE_TTL: %w", err)
	}
	cfg.StateTTL = ttl

	loc, err := time.LoadLocation(getEnv("TZ_NAME", "Local"))
	if err != nil {
		return nil, fmt.Errorf("invalid TZ_NAME: %w", err)
	}
	cfg.Location = loc

	return cfg, nil
}

// MustLoad is Load that exits the process on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getList(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

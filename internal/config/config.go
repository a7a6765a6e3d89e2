// Package config holds the service constants and the environment-driven
// runtime configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Storage backends accepted in STORAGE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config is the runtime configuration read from the environment (and from a
// .env file, which cmd loads with godotenv before calling Load).
type Config struct {
	HTTPAddr string

	StorageBackend string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	PostgresDSN    string

	SessionSecret string

	GeminiAPIKey       string
	SuggestionDebounce time.Duration

	TelegramBotToken      string
	TelegramFacultyChatID int64

	Debug bool
}

// Load reads the configuration from the environment, applying defaults for
// anything unset.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:         getenv("HTTP_ADDR", ":8080"),
		StorageBackend:   getenv("STORAGE_BACKEND", BackendMemory),
		RedisAddr:        getenv("REDIS_ADDR", "localhost:6380"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		PostgresDSN:      os.Getenv("DATABASE_DSN"),
		SessionSecret:    os.Getenv("SESSION_SECRET"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	var err error
	if cfg.RedisDB, err = getenvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.SuggestionDebounce, err = getenvDuration("SUGGESTION_DEBOUNCE", SuggestionDebounce); err != nil {
		return nil, err
	}
	if raw := os.Getenv("TELEGRAM_FACULTY_CHAT_ID"); raw != "" {
		if cfg.TelegramFacultyChatID, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_FACULTY_CHAT_ID %q: %w", raw, err)
		}
	}
	cfg.Debug = os.Getenv("DEBUG") != ""

	switch cfg.StorageBackend {
	case BackendMemory, BackendRedis:
	case BackendPostgres:
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("DATABASE_DSN is required for the %s backend", BackendPostgres)
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}

	if cfg.SessionSecret == "" {
		// Sessions only carry the mocked login flags, so an ephemeral dev
		// secret is acceptable.
		cfg.SessionSecret = "complaintbox-dev-secret"
	}

	return cfg, nil
}

// SuggestionsEnabled reports whether a Gemini key was configured.
func (c *Config) SuggestionsEnabled() bool { return c.GeminiAPIKey != "" }

// NotificationsEnabled reports whether the Telegram notifier can run.
func (c *Config) NotificationsEnabled() bool {
	return c.TelegramBotToken != "" && c.TelegramFacultyChatID != 0
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func getenvDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

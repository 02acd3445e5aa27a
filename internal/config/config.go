package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port          string
	DatabaseURL   string
	SessionSecret string

	// VoteWindowDays is the trailing window used for the "requested" ranking
	// counter. ResyncInterval is how often the full counter resync pass runs;
	// individual questions are also resynced shortly after each vote.
	VoteWindowDays int
	ResyncInterval time.Duration
}

// Load returns configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		DatabaseURL:    getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=askhub port=5432 sslmode=disable"),
		SessionSecret:  getEnv("SESSION_SECRET", "secret_key_change_me"),
		VoteWindowDays: getEnvInt("VOTE_WINDOW_DAYS", 7),
		ResyncInterval: getEnvDuration("VOTE_RESYNC_INTERVAL", 10*time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

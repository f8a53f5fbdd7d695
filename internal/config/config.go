package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr                string
	DocPath             string
	DocURL              string
	LogLevel            string
	ListRefreshSeconds  int
	DetailRefreshMillis int
	SuggestedLimit      int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:                envOr("ADDR", ":8080"),
		DocPath:             envOr("DOC_PATH", "data/games.json"),
		DocURL:              envOr("DOC_URL", ""),
		LogLevel:            envOr("LOG_LEVEL", "INFO"),
		ListRefreshSeconds:  envIntOr("LIST_REFRESH_SECONDS", 30),
		DetailRefreshMillis: envIntOr("DETAIL_REFRESH_MILLIS", 250),
		SuggestedLimit:      envIntOr("SUGGESTED_LIMIT", 6),
	}
}

// Validate checks that the configuration is usable before the server starts.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if c.DocPath == "" && c.DocURL == "" {
		return fmt.Errorf("one of DOC_PATH or DOC_URL must be set")
	}
	if c.ListRefreshSeconds <= 0 {
		return fmt.Errorf("LIST_REFRESH_SECONDS must be positive, got %d", c.ListRefreshSeconds)
	}
	if c.DetailRefreshMillis <= 0 {
		return fmt.Errorf("DETAIL_REFRESH_MILLIS must be positive, got %d", c.DetailRefreshMillis)
	}
	if c.SuggestedLimit < 0 {
		return fmt.Errorf("SUGGESTED_LIMIT cannot be negative, got %d", c.SuggestedLimit)
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

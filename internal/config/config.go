package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config keeps runtime settings for the server.
type Config struct {
	DatabaseURL string
	HTTPAddr    string
	JWTSecret   string
	TokenTTL    time.Duration
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		HTTPAddr:    strings.TrimSpace(os.Getenv("HTTP_ADDR")),
		JWTSecret:   strings.TrimSpace(os.Getenv("JWT_SECRET")),
		TokenTTL:    parseTTL(strings.TrimSpace(os.Getenv("TOKEN_TTL_HOURS"))),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "todo.db"
	}

	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}

	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = 72 * time.Hour
	}

	if cfg.JWTSecret == "" {
		return cfg, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func parseTTL(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	hours, err := time.ParseDuration(raw + "h")
	if err != nil || hours <= 0 {
		return 0
	}
	return hours
}

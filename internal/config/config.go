// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv      string `env:"APP_ENV" default:"development"`
	Port        string `env:"PORT" default:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`
	RedisURL    string `env:"REDIS_URL"`

	SessionSecret string        `env:"SESSION_SECRET"`
	SessionMaxAge time.Duration `env:"SESSION_MAX_AGE" default:"168h"` // 7 days

	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	// ScoreCacheTTL bounds how stale the local score snapshot may get
	// between explicit refreshes.
	ScoreCacheTTL time.Duration `env:"SCORE_CACHE_TTL" default:"10s"`

	// ReactionRatePerMinute caps how many reactions a single author may
	// record per minute.
	ReactionRatePerMinute int `env:"REACTION_RATE_PER_MINUTE" default:"30"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	required := map[string]string{
		"DATABASE_URL":   cfg.DatabaseURL,
		"REDIS_URL":      cfg.RedisURL,
		"SESSION_SECRET": cfg.SessionSecret,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	if len(cfg.SessionSecret) < 32 {
		return fmt.Errorf("SESSION_SECRET must be at least 32 characters, got %d", len(cfg.SessionSecret))
	}

	if cfg.ReactionRatePerMinute <= 0 {
		return fmt.Errorf("REACTION_RATE_PER_MINUTE must be positive, got %d", cfg.ReactionRatePerMinute)
	}

	return nil
}

// Package config loads process configuration from the environment, with
// optional .env file support for local development.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv       string `env:"APP_ENV" default:"development"`
	Port         string `env:"PORT" default:"8080"`
	DatabasePath string `env:"DATABASE_PATH" default:"data/tweets.db"`

	// Collector settings
	SearchTerm    string        `env:"SEARCH_TERM" default:"Apple"`
	SourceBaseURL string        `env:"SOURCE_BASE_URL"`
	ReplayFile    string        `env:"REPLAY_FILE"`
	BatchSize     int           `env:"BATCH_SIZE" default:"20"`
	PollInterval  time.Duration `env:"POLL_INTERVAL" default:"30s"`
	FetchTimeout  time.Duration `env:"FETCH_TIMEOUT" default:"15s"`

	// Dashboard settings
	SnapshotMaxAge time.Duration `env:"SNAPSHOT_MAX_AGE" default:"10s"`

	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`
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
	if cfg.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	if cfg.SearchTerm == "" {
		return fmt.Errorf("SEARCH_TERM is required")
	}
	if cfg.BatchSize < 1 || cfg.BatchSize > 100 {
		return fmt.Errorf("BATCH_SIZE must be between 1 and 100, got %d", cfg.BatchSize)
	}
	if cfg.PollInterval < time.Second {
		return fmt.Errorf("POLL_INTERVAL must be at least 1s, got %s", cfg.PollInterval)
	}
	if cfg.SnapshotMaxAge < 0 {
		return fmt.Errorf("SNAPSHOT_MAX_AGE must not be negative, got %s", cfg.SnapshotMaxAge)
	}
	return nil
}

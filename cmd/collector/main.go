package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/collector"
	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/database"
	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/domain"
	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/logging"
	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/platform/config"
	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/sentiment"
	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/source"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupDB(ctx context.Context, cfg *config.Config) *database.DB {
	db, err := database.Connect(ctx, cfg.DatabasePath)
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	if err := db.RunMigrations(ctx); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	return db
}

func setupSource(cfg *config.Config, clock clockwork.Clock) domain.Source {
	if cfg.SourceBaseURL != "" {
		return source.NewSearchClient(cfg.SourceBaseURL, cfg.FetchTimeout)
	}
	if cfg.ReplayFile != "" {
		f, err := os.Open(cfg.ReplayFile)
		if err != nil {
			slog.Error("Failed to open replay file", "path", cfg.ReplayFile, "error", err)
			os.Exit(1)
		}
		defer f.Close()

		replay, err := source.NewReplaySource(f, clock)
		if err != nil {
			slog.Error("Failed to load replay pool", "path", cfg.ReplayFile, "error", err)
			os.Exit(1)
		}
		slog.Info("Using replay source", "path", cfg.ReplayFile)
		return replay
	}

	slog.Error("No source configured: set SOURCE_BASE_URL or REPLAY_FILE")
	os.Exit(1)
	return nil
}

func main() {
	clock := clockwork.NewRealClock()
	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Collector starting up", "env", cfg.AppEnv, "query", cfg.SearchTerm)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := setupDB(ctx, cfg)
	defer db.Close()

	repo := database.NewTweetRepo(db)
	scorer := sentiment.NewLexiconScorer()
	src := setupSource(cfg, clock)

	coll := collector.New(src, scorer, repo, clock, collector.Options{
		Query:        cfg.SearchTerm,
		BatchSize:    cfg.BatchSize,
		PollInterval: cfg.PollInterval,
	})

	coll.Run(ctx)
}

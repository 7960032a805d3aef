// Command import bulk-loads a CSV file of historical tweets into the
// record store. The file format must be named explicitly; a file with
// missing columns is rejected whole, listing exactly what is absent.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/database"
	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/ingest"
	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/logging"
	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/platform/config"
)

func main() {
	var (
		filePath = flag.String("file", "", "path to the CSV file to import")
		format   = flag.String("format", "collector", "file format: collector or export")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)

	if *filePath == "" {
		slog.Error("Missing required -file flag")
		os.Exit(2)
	}

	adapter, err := ingest.AdapterFor(*format)
	if err != nil {
		slog.Error("Invalid format", "error", err)
		os.Exit(2)
	}

	f, err := os.Open(*filePath)
	if err != nil {
		slog.Error("Failed to open file", "path", *filePath, "error", err)
		os.Exit(1)
	}
	defer f.Close()

	tweets, err := ingest.LoadCSV(f, adapter)
	if err != nil {
		var missingErr *ingest.MissingColumnsError
		if errors.As(err, &missingErr) {
			slog.Error("File rejected, required columns missing",
				"format", missingErr.Format,
				"missing", missingErr.Columns,
			)
			os.Exit(1)
		}
		slog.Error("Failed to load file", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	db, err := database.Connect(ctx, cfg.DatabasePath)
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(ctx); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	repo := database.NewTweetRepo(db)
	inserted, duplicates, failed := 0, 0, 0
	for _, t := range tweets {
		isNew, err := repo.InsertIfAbsent(ctx, t)
		switch {
		case err != nil:
			slog.Warn("Failed to store row, skipping", "tweet_id", t.ID, "error", err)
			failed++
		case isNew:
			inserted++
		default:
			duplicates++
		}
	}

	slog.Info("Import complete",
		"rows", len(tweets),
		"inserted", inserted,
		"duplicates", duplicates,
		"failed", failed,
	)
}

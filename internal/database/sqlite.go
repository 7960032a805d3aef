// Package database provides the durable tweet store on top of SQLite.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver
)

type DB struct {
	*sql.DB
	path string
}

// Connect opens (creating if needed) the SQLite database at path.
// WAL mode keeps the single-writer collector from blocking dashboard reads.
func Connect(ctx context.Context, path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db, path: path}, nil
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

func (db *DB) HealthCheck(ctx context.Context) error {
	return db.PingContext(ctx)
}

// RunMigrations creates the schema if absent. Idempotent, safe to call
// on every startup.
func (db *DB) RunMigrations(ctx context.Context) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS tweets (
			id TEXT PRIMARY KEY,
			text TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			location TEXT NOT NULL DEFAULT 'Unknown',
			polarity REAL NOT NULL,
			label TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tweets_created_at ON tweets(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_tweets_label ON tweets(label)`,
	}

	for _, migration := range migrations {
		if _, err := db.ExecContext(ctx, migration); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	slog.Info("Database migrations completed", "path", db.path)
	return nil
}

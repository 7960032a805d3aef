package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/domain"
	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/metrics"
)

// Timestamps are stored as RFC 3339 strings. Legacy rows imported from
// older databases may carry other layouts, so loads try those too.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

type TweetRepo struct {
	db *DB
}

func NewTweetRepo(db *DB) *TweetRepo {
	return &TweetRepo{db: db}
}

// InsertIfAbsent stores t unless its ID already exists. Returns true on
// insert, false when the row was already present. Duplicates are a
// no-op, which makes re-ingestion of overlapping source windows safe.
func (r *TweetRepo) InsertIfAbsent(ctx context.Context, t domain.Tweet) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO tweets (id, text, created_at, location, polarity, label)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, t.ID, t.Text, t.CreatedAt.UTC().Format(time.RFC3339), t.Location, t.Polarity, string(t.Label))
	if err != nil {
		metrics.StoreInsertsTotal.WithLabelValues("error").Inc()
		return false, fmt.Errorf("failed to insert tweet %s: %w", t.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		metrics.StoreInsertsTotal.WithLabelValues("error").Inc()
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	if affected == 0 {
		metrics.StoreInsertsTotal.WithLabelValues("duplicate").Inc()
		return false, nil
	}
	metrics.StoreInsertsTotal.WithLabelValues("inserted").Inc()
	return true, nil
}

// ListAll returns every stored tweet. Rows with unparseable timestamps
// are skipped so they never reach derived views.
func (r *TweetRepo) ListAll(ctx context.Context) ([]domain.Tweet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, text, created_at, location, polarity, label
		FROM tweets
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tweets: %w", err)
	}
	defer rows.Close()

	tweets := make([]domain.Tweet, 0, 256)
	skipped := 0
	for rows.Next() {
		var t domain.Tweet
		var createdAt, label string
		if err := rows.Scan(&t.ID, &t.Text, &createdAt, &t.Location, &t.Polarity, &label); err != nil {
			return nil, fmt.Errorf("failed to scan tweet row: %w", err)
		}

		ts, ok := parseTimestamp(createdAt)
		if !ok {
			skipped++
			metrics.StoreRowsSkippedTotal.Inc()
			continue
		}
		t.CreatedAt = ts
		t.Label = domain.Label(label)
		tweets = append(tweets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tweet rows: %w", err)
	}

	if skipped > 0 {
		slog.Warn("Skipped rows with unparseable timestamps", "skipped", skipped)
	}
	return tweets, nil
}

// Count returns the number of stored tweets.
func (r *TweetRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tweets`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count tweets: %w", err)
	}
	return n, nil
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC(), true
		}
	}
	return time.Time{}, false
}

// Package collector runs the ingestion loop: poll the raw source, score
// each item, and persist it through the record store.
package collector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sony/gobreaker"

	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/domain"
	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/metrics"
	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/platform/correlation"
	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/platform/retry"
)

// Options configure a Collector.
type Options struct {
	Query        string
	BatchSize    int
	PollInterval time.Duration

	// FetchRetry overrides the default fetch retry policy, mainly for
	// tests that cannot afford real backoff sleeps.
	FetchRetry *retry.Policy
}

type Collector struct {
	source domain.Source
	scorer domain.Scorer
	store  domain.RecordStore
	clock  clockwork.Clock
	opts   Options
	policy retry.Policy
}

func New(source domain.Source, scorer domain.Scorer, store domain.RecordStore, clock clockwork.Clock, opts Options) *Collector {
	policy := retry.Policy{
		MaxAttempts:      3,
		InitialBackoff:   2 * time.Second,
		RateLimitBackoff: 30 * time.Second,
		OnRetry: func(attempt int, err error, backoff time.Duration) {
			slog.Warn("Fetch failed, retrying", "attempt", attempt, "backoff", backoff, "error", err)
		},
	}
	if opts.FetchRetry != nil {
		policy = *opts.FetchRetry
	}

	return &Collector{
		source: source,
		scorer: scorer,
		store:  store,
		clock:  clock,
		opts:   opts,
		policy: policy,
	}
}

// Run polls batches until ctx is cancelled. A failed batch is logged and
// retried after the poll interval; the loop never terminates on a
// transient source error. Each insert is independently atomic, so a
// crash mid-batch loses at most the in-flight batch.
func (c *Collector) Run(ctx context.Context) {
	slog.Info("Collector starting",
		"query", c.opts.Query,
		"batch_size", c.opts.BatchSize,
		"poll_interval", c.opts.PollInterval,
	)

	for {
		batchCtx := correlation.WithID(ctx, correlation.NewID())
		if err := c.RunOnce(batchCtx); err != nil {
			slog.ErrorContext(batchCtx, "Batch failed", "error", err)
			metrics.IngestBatchesTotal.WithLabelValues("error").Inc()
		}

		select {
		case <-ctx.Done():
			slog.Info("Collector stopped")
			return
		case <-c.clock.After(c.opts.PollInterval):
		}
	}
}

// RunOnce processes a single batch: fetch, normalize, score, store.
func (c *Collector) RunOnce(ctx context.Context) error {
	start := c.clock.Now()

	raw, err := c.fetchWithRetry(ctx)
	if err != nil {
		return fmt.Errorf("fetching batch: %w", err)
	}

	inserted, duplicates := 0, 0
	for _, item := range raw {
		tweet, ok := c.normalize(item)
		if !ok {
			metrics.TweetsIngestedTotal.WithLabelValues("skipped").Inc()
			continue
		}

		// A single-record write failure must not abort the batch.
		isNew, err := c.store.InsertIfAbsent(ctx, tweet)
		if err != nil {
			slog.WarnContext(ctx, "Failed to store tweet, skipping", "tweet_id", tweet.ID, "error", err)
			metrics.TweetsIngestedTotal.WithLabelValues("error").Inc()
			continue
		}
		if isNew {
			inserted++
			metrics.TweetsIngestedTotal.WithLabelValues("inserted").Inc()
		} else {
			duplicates++
			metrics.TweetsIngestedTotal.WithLabelValues("duplicate").Inc()
		}
	}

	metrics.IngestBatchesTotal.WithLabelValues("ok").Inc()
	metrics.IngestBatchDuration.Observe(c.clock.Now().Sub(start).Seconds())
	slog.InfoContext(ctx, "Batch complete",
		"fetched", len(raw),
		"inserted", inserted,
		"duplicates", duplicates,
	)
	return nil
}

func (c *Collector) fetchWithRetry(ctx context.Context) ([]domain.RawTweet, error) {
	return retry.Do(ctx, c.policy, classifyFetchError, func() ([]domain.RawTweet, error) {
		return c.source.Fetch(ctx, c.opts.Query, c.opts.BatchSize)
	})
}

func classifyFetchError(err error) retry.Action {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return retry.Stop
	case errors.Is(err, domain.ErrRateLimited):
		return retry.After
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return retry.Retry
	default:
		return retry.Retry
	}
}

// normalize turns a raw item into a scored, storable tweet. Items
// without an ID or timestamp are dropped, never stored half-valid.
func (c *Collector) normalize(item domain.RawTweet) (domain.Tweet, bool) {
	if item.ID == "" || item.CreatedAt.IsZero() {
		return domain.Tweet{}, false
	}

	location := strings.TrimSpace(item.AuthorLocation)
	if location == "" {
		location = domain.UnknownLocation
	}

	polarity, label := c.scorer.Score(item.Text)
	return domain.Tweet{
		ID:        item.ID,
		Text:      item.Text,
		CreatedAt: item.CreatedAt.UTC(),
		Location:  location,
		Polarity:  polarity,
		Label:     label,
	}, true
}

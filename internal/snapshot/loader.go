// Package snapshot provides the dashboard's view of the record store: a
// full in-memory copy reloaded on demand when it grows older than a
// caller-supplied freshness threshold.
package snapshot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"

	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/domain"
	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/metrics"
)

type Loader struct {
	store domain.RecordStore
	clock clockwork.Clock
	group singleflight.Group

	mu       sync.RWMutex
	tweets   []domain.Tweet
	loadedAt time.Time
}

func NewLoader(store domain.RecordStore, clock clockwork.Clock) *Loader {
	return &Loader{store: store, clock: clock}
}

// Snapshot returns the cached tweet set if it is younger than maxAge,
// reloading the full store otherwise. Concurrent reload requests
// collapse into a single store read. On a load failure the caller gets
// an empty slice together with the error, so it can degrade to a "no
// data" view instead of crashing.
func (l *Loader) Snapshot(ctx context.Context, maxAge time.Duration) ([]domain.Tweet, error) {
	l.mu.RLock()
	if !l.loadedAt.IsZero() && l.clock.Now().Sub(l.loadedAt) <= maxAge {
		tweets := l.tweets
		l.mu.RUnlock()
		return tweets, nil
	}
	l.mu.RUnlock()

	result, err, _ := l.group.Do("snapshot", func() (any, error) {
		tweets, err := l.store.ListAll(ctx)
		if err != nil {
			metrics.SnapshotReloadsTotal.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
		}

		l.mu.Lock()
		l.tweets = tweets
		l.loadedAt = l.clock.Now()
		l.mu.Unlock()

		metrics.SnapshotReloadsTotal.WithLabelValues("ok").Inc()
		metrics.SnapshotSize.Set(float64(len(tweets)))
		return tweets, nil
	})
	if err != nil {
		return []domain.Tweet{}, err
	}
	return result.([]domain.Tweet), nil
}

package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/domain"
)

type countingStore struct {
	tweets []domain.Tweet
	err    error
	loads  int
}

func (s *countingStore) InsertIfAbsent(ctx context.Context, t domain.Tweet) (bool, error) {
	return false, errors.New("not implemented")
}

func (s *countingStore) ListAll(ctx context.Context) ([]domain.Tweet, error) {
	s.loads++
	if s.err != nil {
		return nil, s.err
	}
	return s.tweets, nil
}

func (s *countingStore) Count(ctx context.Context) (int64, error) {
	return int64(len(s.tweets)), nil
}

func TestSnapshot_LoadsOnFirstCall(t *testing.T) {
	store := &countingStore{tweets: []domain.Tweet{{ID: "1"}}}
	loader := NewLoader(store, clockwork.NewFakeClock())

	tweets, err := loader.Snapshot(context.Background(), 10*time.Second)
	require.NoError(t, err)
	assert.Len(t, tweets, 1)
	assert.Equal(t, 1, store.loads)
}

func TestSnapshot_ServesFreshCacheWithoutReload(t *testing.T) {
	store := &countingStore{tweets: []domain.Tweet{{ID: "1"}}}
	clock := clockwork.NewFakeClock()
	loader := NewLoader(store, clock)

	_, err := loader.Snapshot(context.Background(), 10*time.Second)
	require.NoError(t, err)

	clock.Advance(5 * time.Second)
	_, err = loader.Snapshot(context.Background(), 10*time.Second)
	require.NoError(t, err)

	assert.Equal(t, 1, store.loads)
}

func TestSnapshot_ReloadsWhenStale(t *testing.T) {
	store := &countingStore{tweets: []domain.Tweet{{ID: "1"}}}
	clock := clockwork.NewFakeClock()
	loader := NewLoader(store, clock)

	_, err := loader.Snapshot(context.Background(), 10*time.Second)
	require.NoError(t, err)

	clock.Advance(11 * time.Second)
	store.tweets = append(store.tweets, domain.Tweet{ID: "2"})

	tweets, err := loader.Snapshot(context.Background(), 10*time.Second)
	require.NoError(t, err)
	assert.Len(t, tweets, 2)
	assert.Equal(t, 2, store.loads)
}

func TestSnapshot_FreshnessThresholdIsPerCall(t *testing.T) {
	store := &countingStore{tweets: []domain.Tweet{{ID: "1"}}}
	clock := clockwork.NewFakeClock()
	loader := NewLoader(store, clock)

	_, err := loader.Snapshot(context.Background(), time.Minute)
	require.NoError(t, err)

	clock.Advance(30 * time.Second)

	// A stricter caller forces a reload even though a lax one would not.
	_, err = loader.Snapshot(context.Background(), time.Second)
	require.NoError(t, err)
	assert.Equal(t, 2, store.loads)
}

func TestSnapshot_DegradesToEmptyOnStoreFailure(t *testing.T) {
	store := &countingStore{err: errors.New("disk on fire")}
	loader := NewLoader(store, clockwork.NewFakeClock())

	tweets, err := loader.Snapshot(context.Background(), 10*time.Second)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.NotNil(t, tweets)
	assert.Empty(t, tweets)
}

func TestSnapshot_RecoversAfterStoreFailure(t *testing.T) {
	store := &countingStore{err: errors.New("transient")}
	loader := NewLoader(store, clockwork.NewFakeClock())

	_, err := loader.Snapshot(context.Background(), 10*time.Second)
	require.Error(t, err)

	store.err = nil
	store.tweets = []domain.Tweet{{ID: "1"}}

	tweets, err := loader.Snapshot(context.Background(), 10*time.Second)
	require.NoError(t, err)
	assert.Len(t, tweets, 1)
}

package collector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/domain"
	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/platform/retry"
	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/sentiment"
)

type fakeSource struct {
	batches [][]domain.RawTweet
	errs    []error
	calls   int
}

func (s *fakeSource) Fetch(ctx context.Context, query string, limit int) ([]domain.RawTweet, error) {
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	if i < len(s.batches) {
		return s.batches[i], nil
	}
	return nil, nil
}

type memStore struct {
	tweets  map[string]domain.Tweet
	failIDs map[string]bool
}

func newMemStore() *memStore {
	return &memStore{tweets: make(map[string]domain.Tweet), failIDs: make(map[string]bool)}
}

func (s *memStore) InsertIfAbsent(ctx context.Context, t domain.Tweet) (bool, error) {
	if s.failIDs[t.ID] {
		return false, errors.New("disk full")
	}
	if _, ok := s.tweets[t.ID]; ok {
		return false, nil
	}
	s.tweets[t.ID] = t
	return true, nil
}

func (s *memStore) ListAll(ctx context.Context) ([]domain.Tweet, error) {
	out := make([]domain.Tweet, 0, len(s.tweets))
	for _, t := range s.tweets {
		out = append(out, t)
	}
	return out, nil
}

func (s *memStore) Count(ctx context.Context) (int64, error) {
	return int64(len(s.tweets)), nil
}

func fastRetry() *retry.Policy {
	return &retry.Policy{
		MaxAttempts:      2,
		InitialBackoff:   time.Millisecond,
		RateLimitBackoff: time.Millisecond,
	}
}

func raw(id, text, location string) domain.RawTweet {
	return domain.RawTweet{
		ID:             id,
		Text:           text,
		CreatedAt:      time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		AuthorLocation: location,
	}
}

func newTestCollector(src domain.Source, store domain.RecordStore) *Collector {
	return New(src, sentiment.NewLexiconScorer(), store, clockwork.NewFakeClock(), Options{
		Query:        "apple",
		BatchSize:    20,
		PollInterval: 30 * time.Second,
		FetchRetry:   fastRetry(),
	})
}

func TestRunOnce_ScoresAndStoresBatch(t *testing.T) {
	src := &fakeSource{batches: [][]domain.RawTweet{{
		raw("1", "love this, great stuff", "Paris"),
		raw("2", "terrible awful experience", ""),
	}}}
	store := newMemStore()

	err := newTestCollector(src, store).RunOnce(context.Background())
	require.NoError(t, err)
	require.Len(t, store.tweets, 2)

	positive := store.tweets["1"]
	assert.Equal(t, domain.LabelPositive, positive.Label)
	assert.Greater(t, positive.Polarity, 0.05)
	assert.Equal(t, "Paris", positive.Location)

	negative := store.tweets["2"]
	assert.Equal(t, domain.LabelNegative, negative.Label)
	// Missing author location normalizes to the sentinel.
	assert.Equal(t, domain.UnknownLocation, negative.Location)
}

func TestRunOnce_DuplicatesAreNoOps(t *testing.T) {
	batch := []domain.RawTweet{raw("1", "hello", "Paris")}
	src := &fakeSource{batches: [][]domain.RawTweet{batch, batch}}
	store := newMemStore()
	coll := newTestCollector(src, store)

	require.NoError(t, coll.RunOnce(context.Background()))
	require.NoError(t, coll.RunOnce(context.Background()))

	assert.Len(t, store.tweets, 1)
}

func TestRunOnce_SingleRecordFailureDoesNotAbortBatch(t *testing.T) {
	src := &fakeSource{batches: [][]domain.RawTweet{{
		raw("ok-1", "a", ""),
		raw("broken", "b", ""),
		raw("ok-2", "c", ""),
	}}}
	store := newMemStore()
	store.failIDs["broken"] = true

	err := newTestCollector(src, store).RunOnce(context.Background())
	require.NoError(t, err)

	assert.Len(t, store.tweets, 2)
	assert.Contains(t, store.tweets, "ok-1")
	assert.Contains(t, store.tweets, "ok-2")
}

func TestRunOnce_DropsItemsWithoutIDOrTimestamp(t *testing.T) {
	noID := raw("", "missing id", "")
	noTime := raw("5", "missing time", "")
	noTime.CreatedAt = time.Time{}

	src := &fakeSource{batches: [][]domain.RawTweet{{noID, noTime, raw("6", "fine", "")}}}
	store := newMemStore()

	require.NoError(t, newTestCollector(src, store).RunOnce(context.Background()))
	assert.Len(t, store.tweets, 1)
	assert.Contains(t, store.tweets, "6")
}

func TestRunOnce_RetriesTransientFetchErrors(t *testing.T) {
	src := &fakeSource{
		errs:    []error{errors.New("connection reset")},
		batches: [][]domain.RawTweet{nil, {raw("1", "hello", "")}},
	}
	store := newMemStore()

	err := newTestCollector(src, store).RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
	assert.Len(t, store.tweets, 1)
}

func TestRunOnce_ReturnsErrorWhenFetchKeepsFailing(t *testing.T) {
	src := &fakeSource{errs: []error{errors.New("down"), errors.New("down")}}
	store := newMemStore()

	err := newTestCollector(src, store).RunOnce(context.Background())
	require.Error(t, err)
	assert.Empty(t, store.tweets)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	src := &fakeSource{}
	store := newMemStore()
	clock := clockwork.NewFakeClock()

	coll := New(src, sentiment.NewLexiconScorer(), store, clock, Options{
		Query:        "apple",
		BatchSize:    5,
		PollInterval: 30 * time.Second,
		FetchRetry:   fastRetry(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		coll.Run(ctx)
		close(done)
	}()

	// Let the first batch complete, then cancel during the sleep.
	clock.BlockUntil(1)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("collector did not stop after context cancellation")
	}
}

func TestClassifyFetchError(t *testing.T) {
	assert.Equal(t, retry.Stop, classifyFetchError(context.Canceled))
	assert.Equal(t, retry.After, classifyFetchError(domain.ErrRateLimited))
	assert.Equal(t, retry.Retry, classifyFetchError(errors.New("boom")))
}

package source

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/domain"
)

func TestTweetIDFromLink(t *testing.T) {
	tests := []struct {
		link string
		want string
	}{
		{"https://nitter.net/someone/status/1234567890#m", "1234567890"},
		{"https://nitter.net/someone/status/1234567890", "1234567890"},
		{"https://nitter.net/someone/status/1234567890/", "1234567890"},
		{"1234567890", "1234567890"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TweetIDFromLink(tt.link), "link: %s", tt.link)
	}
}

func TestSearchClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/search", r.URL.Path)
		assert.Equal(t, "apple", r.URL.Query().Get("q"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))

		fmt.Fprint(w, `{"tweets": [
			{"link": "https://nitter.net/a/status/111#m", "text": "first", "date": "Jan 2, 2024 · 3:04 PM UTC", "user": {"location": "Paris"}},
			{"link": "https://nitter.net/b/status/222#m", "text": "second", "date": "2024-01-02T16:00:00Z", "user": {"location": ""}}
		]}`)
	}))
	defer srv.Close()

	client := NewSearchClient(srv.URL, 5*time.Second)
	raw, err := client.Fetch(context.Background(), "apple", 2)
	require.NoError(t, err)
	require.Len(t, raw, 2)

	assert.Equal(t, "111", raw[0].ID)
	assert.Equal(t, "first", raw[0].Text)
	assert.Equal(t, time.Date(2024, 1, 2, 15, 4, 0, 0, time.UTC), raw[0].CreatedAt)
	assert.Equal(t, "Paris", raw[0].AuthorLocation)

	assert.Equal(t, "222", raw[1].ID)
	assert.Empty(t, raw[1].AuthorLocation)
}

func TestSearchClient_SkipsMalformedItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tweets": [
			{"link": "", "text": "no link", "date": "2024-01-02T16:00:00Z", "user": {"location": ""}},
			{"link": "https://nitter.net/a/status/333", "text": "bad date", "date": "who knows", "user": {"location": ""}},
			{"link": "https://nitter.net/a/status/444", "text": "fine", "date": "2024-01-02T16:00:00Z", "user": {"location": ""}}
		]}`)
	}))
	defer srv.Close()

	client := NewSearchClient(srv.URL, 5*time.Second)
	raw, err := client.Fetch(context.Background(), "apple", 3)
	require.NoError(t, err)
	require.Len(t, raw, 1)
	assert.Equal(t, "444", raw[0].ID)
}

func TestSearchClient_RateLimitedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewSearchClient(srv.URL, 5*time.Second)
	_, err := client.Fetch(context.Background(), "apple", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRateLimited)
}

func TestSearchClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewSearchClient(srv.URL, 5*time.Second)
	_, err := client.Fetch(context.Background(), "apple", 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrRateLimited)
}

func replayCSV() string {
	return strings.Join([]string{
		"text,user_location",
		"first tweet,Paris",
		"second tweet,Tokyo",
		"third tweet,",
	}, "\n")
}

func TestReplaySource_FetchesFromPool(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))
	replay, err := NewReplaySource(strings.NewReader(replayCSV()), clock)
	require.NoError(t, err)

	raw, err := replay.Fetch(context.Background(), "ignored", 3)
	require.NoError(t, err)
	require.Len(t, raw, 3)

	for _, item := range raw {
		assert.NotEmpty(t, item.ID)
		assert.Equal(t, clock.Now().UTC(), item.CreatedAt)
	}
	assert.Equal(t, "first tweet", raw[0].Text)
	assert.Equal(t, "second tweet", raw[1].Text)
}

func TestReplaySource_IDsAreUniqueWithinBatch(t *testing.T) {
	clock := clockwork.NewFakeClock()
	replay, err := NewReplaySource(strings.NewReader(replayCSV()), clock)
	require.NoError(t, err)

	// Pool of 3, batch of 6: texts repeat but IDs must not.
	raw, err := replay.Fetch(context.Background(), "ignored", 6)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, item := range raw {
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
	}
}

func TestReplaySource_RejectsPoolWithoutTextColumn(t *testing.T) {
	_, err := NewReplaySource(strings.NewReader("location\nParis\n"), clockwork.NewFakeClock())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text column")
}

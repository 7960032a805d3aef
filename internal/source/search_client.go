// Package source implements clients for the raw tweet feeds the
// collector polls: a Nitter-style HTTP search endpoint and a CSV-backed
// replay source for local development.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/domain"
	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/metrics"
)

// Date layouts seen in search responses. The Nitter-style feed renders
// human-readable dates; mirrors occasionally return RFC 3339.
var sourceDateLayouts = []string{
	"Jan 2, 2006 · 3:04 PM UTC",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// SearchClient fetches recent tweets matching a search term from an
// HTTP endpoint. Requests are rate limited (polite polling) and guarded
// by a circuit breaker so a dead mirror trips fast instead of timing
// out on every poll.
type SearchClient struct {
	baseURL string
	httpc   *http.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
}

func NewSearchClient(baseURL string, timeout time.Duration) *SearchClient {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "source",
		Timeout: 60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("Source circuit breaker state changed", "from", from.String(), "to", to.String())
			metrics.SourceBreakerState.Set(breakerStateValue(to))
		},
	})

	return &SearchClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
		breaker: breaker,
	}
}

// Fetch returns up to limit raw tweets for the query.
func (c *SearchClient) Fetch(ctx context.Context, query string, limit int) ([]domain.RawTweet, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	result, err := c.breaker.Execute(func() (any, error) {
		return c.search(ctx, query, limit)
	})
	if err != nil {
		status := "error"
		if strings.Contains(err.Error(), domain.ErrRateLimited.Error()) {
			status = "rate_limited"
		}
		metrics.SourceFetchesTotal.WithLabelValues(status).Inc()
		return nil, err
	}

	metrics.SourceFetchesTotal.WithLabelValues("ok").Inc()
	return result.([]domain.RawTweet), nil
}

type searchResponse struct {
	Tweets []searchItem `json:"tweets"`
}

type searchItem struct {
	Link string `json:"link"`
	Text string `json:"text"`
	Date string `json:"date"`
	User struct {
		Location string `json:"location"`
	} `json:"user"`
}

func (c *SearchClient) search(ctx context.Context, query string, limit int) ([]domain.RawTweet, error) {
	u := fmt.Sprintf("%s/api/search?q=%s&limit=%d", c.baseURL, url.QueryEscape(query), limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building search request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: status %d", domain.ErrRateLimited, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	raw := make([]domain.RawTweet, 0, len(body.Tweets))
	for _, item := range body.Tweets {
		id := TweetIDFromLink(item.Link)
		if id == "" {
			slog.Debug("Skipping item without a canonical link", "text_prefix", prefix(item.Text, 40))
			continue
		}
		createdAt, ok := parseSourceDate(item.Date)
		if !ok {
			slog.Debug("Skipping item with unparseable date", "tweet_id", id, "date", item.Date)
			continue
		}
		raw = append(raw, domain.RawTweet{
			ID:             id,
			Text:           item.Text,
			CreatedAt:      createdAt,
			AuthorLocation: item.User.Location,
		})
	}
	return raw, nil
}

// TweetIDFromLink derives the tweet ID from its canonical status link,
// e.g. "https://nitter.net/user/status/1234567890#m" -> "1234567890".
// IDs are never generated locally: the same tweet always maps to the
// same ID, which is what makes upserts deduplicate across polls.
func TweetIDFromLink(link string) string {
	link = strings.TrimSuffix(strings.TrimRight(link, "/"), "#m")
	i := strings.LastIndexByte(link, '/')
	if i < 0 {
		return link
	}
	return link[i+1:]
}

func parseSourceDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range sourceDateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC(), true
		}
	}
	return time.Time{}, false
}

func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func breakerStateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	default:
		return 2
	}
}

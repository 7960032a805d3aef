package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/domain"
)

// VolumePoint is one (hour, label) bucket of the time-series view.
type VolumePoint struct {
	Hour  time.Time    `json:"hour"`
	Label domain.Label `json:"label"`
	Count int          `json:"count"`
}

// VolumeOverTime buckets tweets by hour-truncated creation time and
// label. The result is sparse: empty buckets are omitted, so consumers
// must handle gaps. Points are ordered by hour, then label.
func VolumeOverTime(tweets []domain.Tweet) []VolumePoint {
	type bucket struct {
		hour  time.Time
		label domain.Label
	}

	counts := make(map[bucket]int)
	for _, t := range tweets {
		counts[bucket{t.CreatedAt.UTC().Truncate(time.Hour), t.Label}]++
	}

	points := make([]VolumePoint, 0, len(counts))
	for b, n := range counts {
		points = append(points, VolumePoint{Hour: b.hour, Label: b.label, Count: n})
	}
	sort.Slice(points, func(i, j int) bool {
		if !points[i].Hour.Equal(points[j].Hour) {
			return points[i].Hour.Before(points[j].Hour)
		}
		return points[i].Label < points[j].Label
	})
	return points
}

// Distribution counts tweets per label. All three labels are always
// present in the result, so the counts sum to len(tweets) and chart
// consumers see a stable key set.
func Distribution(tweets []domain.Tweet) map[domain.Label]int {
	dist := map[domain.Label]int{
		domain.LabelPositive: 0,
		domain.LabelNeutral:  0,
		domain.LabelNegative: 0,
	}
	for _, t := range tweets {
		dist[t.Label]++
	}
	return dist
}

// LocationCount is one row of the top-locations view.
type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// TopLocations counts tweets per distinct location, excluding the
// Unknown sentinel, and returns the top n by count descending. Ties
// break by first appearance in the input, which keeps the ordering
// stable across repeated calls with unchanged input.
func TopLocations(tweets []domain.Tweet, n int) []LocationCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for _, t := range tweets {
		if t.Location == domain.UnknownLocation {
			continue
		}
		if _, ok := counts[t.Location]; !ok {
			firstSeen[t.Location] = len(firstSeen)
		}
		counts[t.Location]++
	}

	out := make([]LocationCount, 0, len(counts))
	for location, count := range counts {
		out = append(out, LocationCount{Location: location, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return firstSeen[out[i].Location] < firstSeen[out[j].Location]
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}

// WordFrequencies tokenizes the text of every tweet carrying the given
// label on whitespace (case-folded) and returns token counts for the
// word-cloud view. The result is non-nil and empty when no tweet
// matches, so consumers render a "no data" state instead of failing.
func WordFrequencies(tweets []domain.Tweet, label domain.Label) map[string]int {
	freqs := make(map[string]int)
	for _, t := range tweets {
		if t.Label != label {
			continue
		}
		for _, token := range strings.Fields(strings.ToLower(t.Text)) {
			freqs[token]++
		}
	}
	return freqs
}

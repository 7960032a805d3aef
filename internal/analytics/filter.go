// Package analytics computes the dashboard's derived views from a tweet
// snapshot. Everything here is a pure function over an input slice:
// nothing mutates the snapshot, and repeated calls on the same input
// produce the same output.
package analytics

import (
	"time"

	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/domain"
)

// Filter returns the tweets whose creation date falls inside the
// inclusive [start, end] range and, when locations is non-empty, whose
// location is in the set. An empty location set means no location
// restriction. An inverted range (start after end) yields an empty
// slice, not an error.
func Filter(tweets []domain.Tweet, start, end time.Time, locations map[string]struct{}) []domain.Tweet {
	startDay, endDay := dateOf(start), dateOf(end)
	if startDay.After(endDay) {
		return []domain.Tweet{}
	}

	out := make([]domain.Tweet, 0, len(tweets))
	for _, t := range tweets {
		day := dateOf(t.CreatedAt)
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		if len(locations) > 0 {
			if _, ok := locations[t.Location]; !ok {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// DateBounds returns the earliest and latest creation dates observed.
// ok is false for an empty input.
func DateBounds(tweets []domain.Tweet) (min, max time.Time, ok bool) {
	if len(tweets) == 0 {
		return time.Time{}, time.Time{}, false
	}
	min, max = dateOf(tweets[0].CreatedAt), dateOf(tweets[0].CreatedAt)
	for _, t := range tweets[1:] {
		day := dateOf(t.CreatedAt)
		if day.Before(min) {
			min = day
		}
		if day.After(max) {
			max = day
		}
	}
	return min, max, true
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

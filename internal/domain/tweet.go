package domain

import "time"

// Label is the discretized sentiment category of a tweet, derived from
// its polarity score at ingestion time.
type Label string

const (
	LabelPositive Label = "Positive"
	LabelNeutral  Label = "Neutral"
	LabelNegative Label = "Negative"
)

// KnownLabel reports whether s names one of the three sentiment labels.
func KnownLabel(s string) bool {
	switch Label(s) {
	case LabelPositive, LabelNeutral, LabelNegative:
		return true
	}
	return false
}

// UnknownLocation is the sentinel stored for tweets whose author did not
// set a location. Aggregations over locations exclude it.
const UnknownLocation = "Unknown"

// Tweet is one scored text unit. Tweets are immutable after creation:
// the collector writes them once and readers only ever copy them.
type Tweet struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	Location  string    `json:"location"`
	Polarity  float64   `json:"polarity"`
	Label     Label     `json:"label"`
}

// RawTweet is an unscored item as returned by a Source, before
// normalization and sentiment scoring.
type RawTweet struct {
	ID             string
	Text           string
	CreatedAt      time.Time
	AuthorLocation string
}

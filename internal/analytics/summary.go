package analytics

import "github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/domain"

// Summary holds the scalar metrics shown at the top of the dashboard.
type Summary struct {
	Total       int     `json:"total"`
	AvgPolarity float64 `json:"avg_polarity"`
	PositivePct float64 `json:"positive_pct"`
	NegativePct float64 `json:"negative_pct"`
}

// Summarize computes the scalar metrics over the filtered set. All
// fields are zero for an empty input; there is no division by zero.
func Summarize(tweets []domain.Tweet) Summary {
	if len(tweets) == 0 {
		return Summary{}
	}

	var polaritySum float64
	positive, negative := 0, 0
	for _, t := range tweets {
		polaritySum += t.Polarity
		switch t.Label {
		case domain.LabelPositive:
			positive++
		case domain.LabelNegative:
			negative++
		}
	}

	total := float64(len(tweets))
	return Summary{
		Total:       len(tweets),
		AvgPolarity: polaritySum / total,
		PositivePct: float64(positive) / total * 100,
		NegativePct: float64(negative) / total * 100,
	}
}

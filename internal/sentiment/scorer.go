// Package sentiment scores tweet text with a deterministic weighted
// lexicon and maps polarity onto the three sentiment labels.
package sentiment

import (
	"math"
	"strings"

	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/domain"
)

// Labeling thresholds. These are fixed: labels are assigned once at
// ingestion time, so moving the thresholds never relabels stored rows.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// normalizationAlpha dampens the raw valence sum into [-1, 1].
const normalizationAlpha = 15.0

// negationDamp scales a valence flipped by a preceding negation.
const negationDamp = 0.74

// LabelFor maps a polarity score onto its sentiment label.
func LabelFor(polarity float64) domain.Label {
	switch {
	case polarity >= positiveThreshold:
		return domain.LabelPositive
	case polarity <= negativeThreshold:
		return domain.LabelNegative
	default:
		return domain.LabelNeutral
	}
}

// LexiconScorer is a pure, deterministic scorer backed by a fixed
// valence lexicon. It has no failure modes: unknown words contribute
// nothing and empty input scores neutral.
type LexiconScorer struct {
	weights map[string]float64
}

func NewLexiconScorer() *LexiconScorer {
	return &LexiconScorer{weights: defaultLexicon}
}

// Score returns the compound polarity in [-1, 1] and its label.
func (s *LexiconScorer) Score(text string) (float64, domain.Label) {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return 0, domain.LabelNeutral
	}

	var sum float64
	negated := false
	for _, field := range fields {
		token := strings.Trim(field, `.,!?;:"'()[]#@&*`)
		if token == "" {
			continue
		}
		if isNegation(token) {
			negated = true
			continue
		}
		weight, ok := s.weights[token]
		if !ok {
			negated = false
			continue
		}
		if negated {
			weight = -weight * negationDamp
			negated = false
		}
		sum += weight
	}

	if sum == 0 {
		return 0, domain.LabelNeutral
	}

	compound := sum / math.Sqrt(sum*sum+normalizationAlpha)
	return compound, LabelFor(compound)
}

func isNegation(token string) bool {
	switch token {
	case "not", "no", "never", "neither", "nor", "isnt", "isn't",
		"dont", "don't", "didnt", "didn't", "cant", "can't", "wont", "won't":
		return true
	}
	return false
}

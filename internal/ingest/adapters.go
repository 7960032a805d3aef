package ingest

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/domain"
	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/sentiment"
)

var bulkTimestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// AdapterFor returns the adapter for a configured format name.
func AdapterFor(format string) (Adapter, error) {
	switch format {
	case "collector":
		return CollectorFormat{}, nil
	case "export":
		return ExportFormat{}, nil
	default:
		return nil, fmt.Errorf("unknown bulk format %q (want collector or export)", format)
	}
}

// CollectorFormat reads files produced by the legacy live collector:
// text, created_at, user_location, polarity, sentiment_label.
type CollectorFormat struct{}

func (CollectorFormat) Name() string { return "collector" }

func (CollectorFormat) Missing(header map[string]int) []string {
	return missingColumns(header, "text", "created_at", "user_location", "polarity", "sentiment_label")
}

func (CollectorFormat) Row(header map[string]int, record []string) (domain.Tweet, error) {
	text := field(header, record, "text")
	createdAt, err := parseBulkTimestamp(field(header, record, "created_at"))
	if err != nil {
		return domain.Tweet{}, err
	}
	polarity, err := strconv.ParseFloat(field(header, record, "polarity"), 64)
	if err != nil {
		return domain.Tweet{}, fmt.Errorf("bad polarity: %w", err)
	}
	labelStr := field(header, record, "sentiment_label")
	if !domain.KnownLabel(labelStr) {
		return domain.Tweet{}, fmt.Errorf("unknown sentiment label %q", labelStr)
	}

	return domain.Tweet{
		ID:        bulkRowID(text, createdAt),
		Text:      text,
		CreatedAt: createdAt,
		Location:  normalizeLocation(field(header, record, "user_location")),
		Polarity:  polarity,
		Label:     domain.Label(labelStr),
	}, nil
}

// ExportFormat reads the alternate legacy export: text, created_at,
// location, polarity, plus an optional numeric sentiment code
// (0=Negative, 1=Neutral, 2=Positive). Rows without a usable code are
// relabeled from polarity with the standard thresholds.
type ExportFormat struct{}

func (ExportFormat) Name() string { return "export" }

func (ExportFormat) Missing(header map[string]int) []string {
	missing := missingColumns(header, "text", "created_at", "location")
	_, hasPolarity := header["polarity"]
	_, hasSentiment := header["sentiment"]
	if !hasPolarity && !hasSentiment {
		missing = append(missing, "polarity|sentiment")
	}
	return missing
}

func (ExportFormat) Row(header map[string]int, record []string) (domain.Tweet, error) {
	text := field(header, record, "text")
	createdAt, err := parseBulkTimestamp(field(header, record, "created_at"))
	if err != nil {
		return domain.Tweet{}, err
	}

	var polarity float64
	if raw := field(header, record, "polarity"); raw != "" {
		polarity, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.Tweet{}, fmt.Errorf("bad polarity: %w", err)
		}
	}

	label := sentiment.LabelFor(polarity)
	if raw := field(header, record, "sentiment"); raw != "" {
		code, err := strconv.Atoi(raw)
		if err != nil {
			return domain.Tweet{}, fmt.Errorf("bad sentiment code: %w", err)
		}
		switch code {
		case 0:
			label = domain.LabelNegative
		case 1:
			label = domain.LabelNeutral
		case 2:
			label = domain.LabelPositive
		default:
			return domain.Tweet{}, fmt.Errorf("unknown sentiment code %d", code)
		}
	}

	return domain.Tweet{
		ID:        bulkRowID(text, createdAt),
		Text:      text,
		CreatedAt: createdAt,
		Location:  normalizeLocation(field(header, record, "location")),
		Polarity:  polarity,
		Label:     label,
	}, nil
}

func missingColumns(header map[string]int, required ...string) []string {
	var missing []string
	for _, col := range required {
		if _, ok := header[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}

func field(header map[string]int, record []string, name string) string {
	i, ok := header[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func normalizeLocation(location string) string {
	if location == "" {
		return domain.UnknownLocation
	}
	return location
}

func parseBulkTimestamp(s string) (time.Time, error) {
	for _, layout := range bulkTimestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}

// bulkRowID derives a stable ID from row content, so re-importing the
// same file is a no-op at the store.
func bulkRowID(text string, createdAt time.Time) string {
	seed := text + "|" + createdAt.Format(time.RFC3339)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(seed)).String()
}

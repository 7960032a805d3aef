// Package ingest implements the bulk-load path: validated CSV files in
// one of the known legacy formats, normalized into canonical tweets.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/domain"
)

// Adapter normalizes one known source schema into canonical tweets.
// Formats are selected explicitly by configuration, never sniffed from
// row contents at runtime.
type Adapter interface {
	// Name identifies the format in logs and CLI flags.
	Name() string
	// Missing returns the required column names absent from the header.
	Missing(header map[string]int) []string
	// Row converts one record. An error drops the row from the load.
	Row(header map[string]int, record []string) (domain.Tweet, error)
}

// MissingColumnsError rejects a bulk file whose header lacks required
// columns. Nothing is partially loaded; Columns lists exactly what is
// absent.
type MissingColumnsError struct {
	Format  string
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s: missing required columns: %s", e.Format, strings.Join(e.Columns, ", "))
}

// LoadCSV validates and reads the whole file through the adapter.
// Rows the adapter rejects (unparseable timestamps, malformed fields)
// are dropped and counted, never stored half-valid.
func LoadCSV(r io.Reader, adapter Adapter) ([]domain.Tweet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headerRecord, err := reader.Read()
	if err == io.EOF {
		return nil, &MissingColumnsError{Format: adapter.Name(), Columns: adapter.Missing(map[string]int{})}
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	header := make(map[string]int, len(headerRecord))
	for i, name := range headerRecord {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}

	if missing := adapter.Missing(header); len(missing) > 0 {
		return nil, &MissingColumnsError{Format: adapter.Name(), Columns: missing}
	}

	var tweets []domain.Tweet
	dropped := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv row: %w", err)
		}

		tweet, err := adapter.Row(header, record)
		if err != nil {
			dropped++
			continue
		}
		tweets = append(tweets, tweet)
	}

	if dropped > 0 {
		slog.Warn("Dropped malformed rows during bulk load", "format", adapter.Name(), "dropped", dropped)
	}
	return tweets, nil
}

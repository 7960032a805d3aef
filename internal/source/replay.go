package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/yasirpfaisal/Twitter-Sentiment-Analysis/internal/domain"
)

// ReplaySource replays texts from a historical CSV pool as if they were
// just posted, for demos and local development. It is not a production
// source: real ingestion derives IDs from source metadata, so replayed
// IDs are instead derived deterministically from (cursor, text, now).
type ReplaySource struct {
	texts     []string
	locations []string
	clock     clockwork.Clock
	cursor    int
}

// NewReplaySource reads the text pool from a CSV with at least a "text"
// column; a "user_location" column is used when present.
func NewReplaySource(r io.Reader, clock clockwork.Clock) (*ReplaySource, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading replay pool header: %w", err)
	}

	textCol, locCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "text":
			textCol = i
		case "user_location", "location":
			locCol = i
		}
	}
	if textCol < 0 {
		return nil, fmt.Errorf("replay pool is missing a text column")
	}

	s := &ReplaySource{clock: clock}
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading replay pool: %w", err)
		}
		if textCol >= len(rec) || strings.TrimSpace(rec[textCol]) == "" {
			continue
		}
		s.texts = append(s.texts, rec[textCol])
		if locCol >= 0 && locCol < len(rec) {
			if loc := strings.TrimSpace(rec[locCol]); loc != "" {
				s.locations = append(s.locations, loc)
			}
		}
	}
	if len(s.texts) == 0 {
		return nil, fmt.Errorf("replay pool contains no usable rows")
	}
	return s, nil
}

// Fetch returns the next limit texts from the pool, timestamped now.
func (s *ReplaySource) Fetch(ctx context.Context, query string, limit int) ([]domain.RawTweet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	raw := make([]domain.RawTweet, 0, limit)
	for i := 0; i < limit; i++ {
		text := s.texts[s.cursor%len(s.texts)]
		location := ""
		if len(s.locations) > 0 && s.cursor%2 == 0 {
			location = s.locations[s.cursor%len(s.locations)]
		}

		seed := fmt.Sprintf("%d|%s|%s", s.cursor, now.Format(time.RFC3339Nano), text)
		raw = append(raw, domain.RawTweet{
			ID:             uuid.NewSHA1(uuid.NameSpaceURL, []byte(seed)).String(),
			Text:           text,
			CreatedAt:      now,
			AuthorLocation: location,
		})
		s.cursor++
	}
	return raw, nil
}

package domain

import "context"

// RecordStore is the durable, deduplicated tweet store. Writes are
// insert-if-absent only, so interleaved writers cannot race on existing
// rows.
type RecordStore interface {
	// InsertIfAbsent stores t if its ID is new. It returns true when a
	// row was inserted and false when the ID already existed.
	InsertIfAbsent(ctx context.Context, t Tweet) (bool, error)

	// ListAll returns every stored tweet. Rows whose timestamp cannot
	// be parsed are skipped, never returned half-valid.
	ListAll(ctx context.Context) ([]Tweet, error)

	// Count returns the number of stored tweets.
	Count(ctx context.Context) (int64, error)
}

// Source produces batches of raw tweets for a search query.
type Source interface {
	Fetch(ctx context.Context, query string, limit int) ([]RawTweet, error)
}

// Scorer turns text into a polarity score and its label. Implementations
// must be deterministic and side-effect free.
type Scorer interface {
	Score(text string) (float64, Label)
}

package domain

import "errors"

var (
	// ErrStoreUnavailable signals a full-store read failure. Callers
	// degrade to an empty data set instead of crashing.
	ErrStoreUnavailable = errors.New("record store unavailable")

	// ErrRateLimited signals that the raw source asked us to back off.
	ErrRateLimited = errors.New("source rate limited")
)

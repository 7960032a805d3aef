package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ingestion metrics
var (
	// TweetsIngestedTotal tracks per-tweet ingestion outcomes
	TweetsIngestedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tweets_ingested_total",
			Help: "Tweets processed by the collector by outcome (inserted/duplicate/skipped/error)",
		},
		[]string{"outcome"},
	)

	// IngestBatchesTotal tracks collector batch outcomes
	IngestBatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingest_batches_total",
			Help: "Collector batches by status",
		},
		[]string{"status"},
	)

	// IngestBatchDuration tracks end-to-end batch processing latency
	IngestBatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ingest_batch_duration_seconds",
			Help:    "Collector batch duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)
)

// Source metrics
var (
	// SourceFetchesTotal tracks raw source fetches by status
	SourceFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "source_fetches_total",
			Help: "Raw source fetch attempts by status (ok/error/rate_limited)",
		},
		[]string{"status"},
	)

	// SourceBreakerState tracks the source circuit breaker state (0=closed, 1=half-open, 2=open)
	SourceBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "source_circuit_breaker_state",
			Help: "Current source circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)
)

// Store metrics
var (
	// StoreInsertsTotal tracks insert-if-absent outcomes at the store layer
	StoreInsertsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_inserts_total",
			Help: "Store insert attempts by outcome (inserted/duplicate/error)",
		},
		[]string{"outcome"},
	)

	// StoreRowsSkippedTotal counts rows dropped during full loads because
	// their timestamps could not be parsed
	StoreRowsSkippedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "store_rows_skipped_total",
			Help: "Rows dropped during load because of unparseable timestamps",
		},
	)
)

// Snapshot metrics
var (
	// SnapshotReloadsTotal tracks full-store snapshot reloads by status
	SnapshotReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapshot_reloads_total",
			Help: "Full-store snapshot reloads by status",
		},
		[]string{"status"},
	)

	// SnapshotSize tracks the number of tweets in the last loaded snapshot
	SnapshotSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "snapshot_size_tweets",
			Help: "Number of tweets in the most recent snapshot",
		},
	)
)

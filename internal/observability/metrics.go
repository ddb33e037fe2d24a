package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "peakdash_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "peakdash_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	DocumentFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "peakdash_document_fetch_duration_seconds",
			Help:    "Duration of full-collection document fetches in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"collection"},
	)

	DocumentFetchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "peakdash_document_fetch_errors_total",
			Help: "Total number of failed collection fetches",
		},
		[]string{"collection"},
	)

	// RecordsDropped counts documents excluded from analytics because they carry no usable timestamp.
	RecordsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "peakdash_records_dropped_total",
			Help: "Documents excluded from analytics for lacking a usable timestamp",
		},
		[]string{"collection"},
	)

	SnapshotCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "peakdash_snapshot_cache_hits_total",
			Help: "Collection snapshot cache hits",
		},
	)

	SnapshotCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "peakdash_snapshot_cache_misses_total",
			Help: "Collection snapshot cache misses",
		},
	)
)

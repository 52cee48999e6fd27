// Package monitoring holds the Prometheus collectors exported on /metrics.
package monitoring

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by route pattern, method and status",
		},
		[]string{"route", "method", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern and method",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	eventOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_operations_total",
			Help: "Event service operations by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	cacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_cache_lookups_total",
			Help: "Event cache lookups by result (hit, miss, error)",
		},
		[]string{"result"},
	)
)

// Outcomes recorded by TrackEventOperation.
const (
	OutcomeOK       = "ok"
	OutcomeInvalid  = "invalid"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// TrackRequest records one served HTTP request.
func TrackRequest(route, method string, status int, d time.Duration) {
	httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

// TrackEventOperation counts a create/get/list/update call and its outcome.
func TrackEventOperation(operation, outcome string) {
	eventOperations.WithLabelValues(operation, outcome).Inc()
}

// TrackCacheLookup counts an event cache lookup.
func TrackCacheLookup(result string) {
	cacheLookups.WithLabelValues(result).Inc()
}

// Package metrics defines the Prometheus collectors exposed at /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movie_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "movie_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "movie_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Domain Metrics
	FavoriteMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movie_api_favorite_mutations_total",
			Help: "Total number of favorite add/remove operations",
		},
		[]string{"operation", "result"}, // operation: "add", "remove"; result: "ok", "error"
	)

	AuthFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movie_api_auth_failures_total",
			Help: "Total number of rejected bearer tokens and logins",
		},
		[]string{"reason"},
	)

	TokensRevokedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movie_api_tokens_revoked_total",
			Help: "Total number of token revocations",
		},
		[]string{"scope"}, // "token", "user"
	)

	ImageCleanupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movie_api_image_cleanups_total",
			Help: "Total number of background image deletion outcomes",
		},
		[]string{"result"},
	)
)

// Image cleanup outcomes.
const (
	CleanupDeleted   = "deleted"
	CleanupRetried   = "retried"
	CleanupAbandoned = "abandoned"
)

// RecordAPIRequest records one completed request.
func RecordAPIRequest(method, route string, statusCode int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(start bool) {
	if start {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordFavoriteMutation records a favorite add or remove.
func RecordFavoriteMutation(operation string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	FavoriteMutationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordAuthFailure records a rejected credential.
func RecordAuthFailure(reason string) {
	AuthFailuresTotal.WithLabelValues(reason).Inc()
}

// RecordTokenRevoked records a revocation.
func RecordTokenRevoked(scope string) {
	TokensRevokedTotal.WithLabelValues(scope).Inc()
}

// RecordImageCleanup records one outcome of a background image deletion.
func RecordImageCleanup(result string) {
	ImageCleanupsTotal.WithLabelValues(result).Inc()
}

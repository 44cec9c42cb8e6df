// Package metrics exposes Prometheus counters for the scoring pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Custom registry keeps the exposition limited to service metrics.
var registry = prometheus.NewRegistry()

var (
	scoresTotal = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mockmate",
			Subsystem: "scoring",
			Name:      "scores_total",
			Help:      "Total number of completed scoring requests by mode",
		},
		[]string{"mode"},
	)

	extractionsTotal = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mockmate",
			Subsystem: "scoring",
			Name:      "extractions_total",
			Help:      "Result extractions by path (strict JSON parse vs heuristic fallback)",
		},
		[]string{"path"},
	)

	upstreamErrors = promauto.With(registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: "mockmate",
			Subsystem: "scoring",
			Name:      "upstream_errors_total",
			Help:      "Total number of failed generative model calls",
		},
	)

	relayFailures = promauto.With(registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: "mockmate",
			Subsystem: "scoring",
			Name:      "relay_failures_total",
			Help:      "Total number of failed best-effort leaderboard writes",
		},
	)
)

// GetRegistry returns the registry backing the /metrics endpoint.
func GetRegistry() *prometheus.Registry {
	return registry
}

func IncScore(mode string) {
	scoresTotal.WithLabelValues(mode).Inc()
}

func IncExtraction(path string) {
	extractionsTotal.WithLabelValues(path).Inc()
}

func IncUpstreamError() {
	upstreamErrors.Inc()
}

func IncRelayFailure() {
	relayFailures.Inc()
}

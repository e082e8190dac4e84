// Package metrics provides Prometheus metrics for the muhurat API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// registry is a custom registry so the endpoint exposes only our metrics,
// not the default Go runtime collectors.
var registry = prometheus.NewRegistry()

var (
	httpRequests = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "muhurat",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route pattern, method and status code.",
	}, []string{"route", "method", "status"})

	httpRequestDuration = promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "muhurat",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route pattern and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	scansTotal = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "muhurat",
		Subsystem: "engine",
		Name:      "scans_total",
		Help:      "Completed range scans by activity.",
	}, []string{"activity"})

	scanCandidates = promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
		Namespace: "muhurat",
		Subsystem: "engine",
		Name:      "scan_candidates",
		Help:      "Candidates returned per scan.",
		Buckets:   []float64{0, 1, 2, 3, 5, 8, 10},
	})
)

// RecordHTTPRequest records one completed HTTP request.
func RecordHTTPRequest(route, method, status string, seconds float64) {
	httpRequests.WithLabelValues(route, method, status).Inc()
	httpRequestDuration.WithLabelValues(route, method).Observe(seconds)
}

// RecordScan records one completed range scan and its result size.
func RecordScan(activity string, candidates int) {
	scansTotal.WithLabelValues(activity).Inc()
	scanCandidates.Observe(float64(candidates))
}

// Handler returns the HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

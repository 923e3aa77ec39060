// Package server exposes the calculator over HTTP: product and
// verification endpoints, a health check, and Prometheus metrics.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the Prometheus collectors tracked by the server.
//
// Each Metrics value owns its registry so that tests can construct
// several instances without duplicate-registration panics.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	activeRequests  prometheus.Gauge
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	verifyRuns      prometheus.Counter
	verifyMismatch  prometheus.Counter
}

// NewMetrics creates the server metrics and registers them, together
// with the Go runtime and process collectors, on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	m := &Metrics{
		registry: registry,
		activeRequests: factory.NewGauge(prometheus.GaugeOpts{
			Name: "u128calc_active_requests",
			Help: "Number of HTTP requests currently being served.",
		}),
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "u128calc_requests_total",
			Help: "Total number of HTTP requests served, by path and status.",
		}, []string{"path", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "u128calc_request_duration_seconds",
			Help:    "HTTP request latency in seconds, by path.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path"}),
		verifyRuns: factory.NewCounter(prometheus.CounterOpts{
			Name: "u128calc_verify_runs_total",
			Help: "Total number of verification runs executed over HTTP.",
		}),
		verifyMismatch: factory.NewCounter(prometheus.CounterOpts{
			Name: "u128calc_verify_mismatches_total",
			Help: "Total number of mismatching cases found by HTTP verification runs.",
		}),
	}

	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return m
}

// IncrementActiveRequests marks the start of an in-flight request.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
}

// DecrementActiveRequests marks the end of an in-flight request.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// ObserveRequest records a completed request with its status code and
// wall-clock duration in seconds.
func (m *Metrics) ObserveRequest(path, status string, seconds float64) {
	m.requestsTotal.WithLabelValues(path, status).Inc()
	m.requestDuration.WithLabelValues(path).Observe(seconds)
}

// RecordVerification updates the verification counters after a run.
func (m *Metrics) RecordVerification(mismatches int) {
	m.verifyRuns.Inc()
	m.verifyMismatch.Add(float64(mismatches))
}

// WritePrometheus serves the metrics in Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

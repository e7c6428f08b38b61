// Package metrics exposes Prometheus collectors for the HTTP layer.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPMetrics groups the request collectors and the registry they live in
type HTTPMetrics struct {
	registry *prometheus.Registry

	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
	// AuthFailures counts 401/403 rejections by reason
	AuthFailures *prometheus.CounterVec
}

// New creates the collectors on a private registry, along with the Go and
// process collectors.
func New() *HTTPMetrics {
	reg := prometheus.NewRegistry()
	m := &HTTPMetrics{
		registry: reg,
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		AuthFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_rejections_total",
			Help: "Requests rejected by authentication or authorization.",
		}, []string{"reason"}),
	}
	reg.MustRegister(
		m.Requests,
		m.Duration,
		m.AuthFailures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *HTTPMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Gatherer exposes the registry, mostly for tests
func (m *HTTPMetrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

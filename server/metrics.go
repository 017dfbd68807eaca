package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// serverMetrics holds Prometheus metrics for the HTTP adapter. Each Server
// owns its registry so tests can build several servers side by side.
type serverMetrics struct {
	registry    *prometheus.Registry
	requests    *prometheus.CounterVec   // requests by route and status
	duration    *prometheus.HistogramVec // latency by route
	derivations *prometheus.CounterVec   // derive outcomes: ok, invalid
	rateLimited prometheus.Counter       // requests rejected by the limiter
}

func newServerMetrics() *serverMetrics {
	m := &serverMetrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mbti",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route pattern and status code",
		}, []string{"route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "mbti",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route pattern",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		derivations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mbti",
			Name:      "derivations_total",
			Help:      "Type code derivations by outcome",
		}, []string{"outcome"}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mbti",
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter",
		}),
	}

	m.registry.MustRegister(m.requests, m.duration, m.derivations, m.rateLimited)
	return m
}

func (m *serverMetrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *serverMetrics) observeDerivation(err error) {
	if err != nil {
		m.derivations.WithLabelValues("invalid").Inc()
		return
	}
	m.derivations.WithLabelValues("ok").Inc()
}

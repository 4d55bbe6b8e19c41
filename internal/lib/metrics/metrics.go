// Package metrics exposes Prometheus counters for backend calls and
// submission throttling.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/deppfellow/promo-event/internal/errs"
)

const Namespace = "promo_event"

// Result labels of BackendRequests.
const (
	ResultOK           = "ok"
	ResultNetworkError = "network_error"
	ResultServerError  = "server_error"
	ResultOtherError   = "error"
)

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	BackendRequests *prometheus.CounterVec
	BackendDuration *prometheus.HistogramVec
	RateLimitHits   *prometheus.CounterVec
}

// New builds and registers the collectors, plus the Go runtime and process
// collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		BackendRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: "backend",
				Name:      "requests_total",
				Help:      "Backend requests by operation and result.",
			},
			[]string{"op", "result"},
		),

		BackendDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Subsystem: "backend",
				Name:      "request_duration_seconds",
				Help:      "Backend request latency in seconds.",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"op"},
		),

		RateLimitHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "rate_limit_hits_total",
				Help:      "Requests rejected by the rate limiter.",
			},
			[]string{"endpoint"},
		),
	}

	m.registry.MustRegister(
		m.BackendRequests,
		m.BackendDuration,
		m.RateLimitHits,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry returns the registry the collectors live in.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveBackend records one backend call. A nil *Metrics ignores it.
func (m *Metrics) ObserveBackend(op string, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.BackendRequests.WithLabelValues(op, resultOf(err)).Inc()
	m.BackendDuration.WithLabelValues(op).Observe(d.Seconds())
}

// RecordRateLimitHit counts a throttled request on endpoint.
func (m *Metrics) RecordRateLimitHit(endpoint string) {
	if m == nil {
		return
	}
	m.RateLimitHits.WithLabelValues(endpoint).Inc()
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errs.IsNetworkError(err):
		return ResultNetworkError
	case errs.IsServerError(err):
		return ResultServerError
	default:
		return ResultOtherError
	}
}

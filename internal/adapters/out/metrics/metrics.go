// Package metrics exposes Prometheus collectors for the HTTP server, order
// transitions and the overdue monitor.
package metrics

import (
	"net/http"

	"marketplace/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "marketplace"

// Metrics owns a private registry so that several instances can coexist in
// one process.
type Metrics struct {
	registry *prometheus.Registry

	Requests    *prometheus.CounterVec
	LatencyMS   *prometheus.HistogramVec
	Transitions *prometheus.CounterVec
	Overdue     prometheus.Gauge
}

func New() *Metrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "route", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"method", "route"})
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "orders",
		Name:      "transitions_total",
		Help:      "Committed order status changes by operation and resulting status.",
	}, []string{"operation", "status"})
	overdue := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "overdue_orders",
		Help:      "Live orders past their deadline at the last check.",
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		requests, latency, transitions, overdue,
	)
	return &Metrics{
		registry:    registry,
		Requests:    requests,
		LatencyMS:   latency,
		Transitions: transitions,
		Overdue:     overdue,
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveTransition counts a committed status change.
func (m *Metrics) ObserveTransition(operation string, to order.Status) {
	m.Transitions.WithLabelValues(operation, to.String()).Inc()
}

// SetOverdue records the size of the latest overdue listing.
func (m *Metrics) SetOverdue(n int) {
	m.Overdue.Set(float64(n))
}

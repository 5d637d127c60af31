package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the Prometheus collectors the service exposes.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	httpErrors   *prometheus.CounterVec
	agendaLoads  *prometheus.CounterVec
	guardDenials *prometheus.CounterVec
}

// NewMetrics registers all collectors on a private registry.
func NewMetrics(serviceName string) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fieldops",
			Name:      "http_requests_total",
			Help:      "HTTP requests by path, method and status.",
			ConstLabels: prometheus.Labels{
				"service": serviceName,
			},
		}, []string{"path", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fieldops",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path", "method"}),
		httpErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fieldops",
			Name:      "http_errors_total",
			Help:      "Request errors by path, method and error code.",
		}, []string{"path", "method", "code"}),
		agendaLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fieldops",
			Name:      "agenda_loads_total",
			Help:      "Unified agenda month loads by outcome.",
		}, []string{"outcome"}),
		guardDenials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fieldops",
			Name:      "route_guard_denials_total",
			Help:      "Route guard denials by decision.",
		}, []string{"decision"}),
	}

	registry.MustRegister(m.httpRequests, m.httpDuration, m.httpErrors, m.agendaLoads, m.guardDenials)
	return m
}

// Registry exposes the underlying registry for the metrics listener.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordRequest observes one completed HTTP request.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(path, method).Observe(duration.Seconds())
}

// RecordError counts a request that resolved to a domain error.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.httpErrors.WithLabelValues(path, method, code).Inc()
}

// RecordAgendaLoad counts a month load outcome ("ok", "error", "stale").
func (m *Metrics) RecordAgendaLoad(outcome string) {
	if m == nil {
		return
	}
	m.agendaLoads.WithLabelValues(outcome).Inc()
}

// RecordGuardDenial counts a route guard denial by decision name.
func (m *Metrics) RecordGuardDenial(decision string) {
	if m == nil {
		return
	}
	m.guardDenials.WithLabelValues(decision).Inc()
}

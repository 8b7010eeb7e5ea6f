// Package metrics exposes the Prometheus collectors of the service.
//
// All recording methods are safe on a nil *Metrics so components can be
// constructed without instrumentation in tests.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "campushub"

// Metrics holds the collectors registered on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	stateMutations  *prometheus.CounterVec
	persistFailures *prometheus.CounterVec
	decodeFallbacks *prometheus.CounterVec
	simulatorTicks  *prometheus.CounterVec
	simulatorActive prometheus.Gauge
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

// New creates and registers every collector, plus the Go runtime and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		stateMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "state",
			Name:      "mutations_total",
			Help:      "Successful write-through mutations by state key.",
		}, []string{"key"}),
		persistFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "state",
			Name:      "persist_failures_total",
			Help:      "Mutations rejected because the store write failed.",
		}, []string{"key"}),
		decodeFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "state",
			Name:      "seed_fallbacks_total",
			Help:      "Keys initialized from seed data, by reason.",
		}, []string{"key", "reason"}),
		simulatorTicks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "simulator",
			Name:      "ticks_total",
			Help:      "Simulator ticks by outcome.",
		}, []string{"outcome"}),
		simulatorActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "simulator",
			Name:      "active",
			Help:      "1 while the chat simulator timer is registered.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.stateMutations,
		m.persistFailures,
		m.decodeFallbacks,
		m.simulatorTicks,
		m.simulatorActive,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) StateMutated(key string) {
	if m == nil {
		return
	}
	m.stateMutations.WithLabelValues(key).Inc()
}

func (m *Metrics) PersistFailed(key string) {
	if m == nil {
		return
	}
	m.persistFailures.WithLabelValues(key).Inc()
}

// SeedFallback records a key that was (re)initialized from seed data.
// reason is one of "absent", "backend", "decode", "invalid".
func (m *Metrics) SeedFallback(key, reason string) {
	if m == nil {
		return
	}
	m.decodeFallbacks.WithLabelValues(key, reason).Inc()
}

func (m *Metrics) SimulatorTick(outcome string) {
	if m == nil {
		return
	}
	m.simulatorTicks.WithLabelValues(outcome).Inc()
}

func (m *Metrics) SimulatorActive(active bool) {
	if m == nil {
		return
	}
	if active {
		m.simulatorActive.Set(1)
		return
	}
	m.simulatorActive.Set(0)
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

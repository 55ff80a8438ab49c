package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles Prometheus collectors for the docs and widget services.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry           *prometheus.Registry
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
	DocFetches         *prometheus.CounterVec
	Simulations        *prometheus.CounterVec
	SimulationDuration *prometheus.HistogramVec
}

// NewMetrics constructs a registry with service collectors. service is
// attached as a constant label so both binaries can share a scrape config.
func NewMetrics(service string) *Metrics {
	reg := prometheus.NewRegistry()
	constLabels := prometheus.Labels{"service": service}

	reqs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "vire_openbb_http_requests_total",
		Help:        "HTTP requests by route and status code",
		ConstLabels: constLabels,
	}, []string{"route", "status"})

	durs := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:        "vire_openbb_http_request_duration_seconds",
		Help:        "HTTP request duration in seconds",
		Buckets:     prometheus.DefBuckets,
		ConstLabels: constLabels,
	}, []string{"route"})

	fetches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "vire_openbb_doc_fetches_total",
		Help:        "Documentation fetches by tool and outcome",
		ConstLabels: constLabels,
	}, []string{"tool", "outcome"})

	sims := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "vire_openbb_simulations_total",
		Help:        "Monte Carlo simulation requests by outcome",
		ConstLabels: constLabels,
	}, []string{"outcome"})

	simDurs := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:        "vire_openbb_simulation_duration_seconds",
		Help:        "Monte Carlo simulation duration in seconds, including history retrieval",
		Buckets:     []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		ConstLabels: constLabels,
	}, []string{"outcome"})

	reg.MustRegister(reqs, durs, fetches, sims, simDurs)

	return &Metrics{
		registry:           reg,
		HTTPRequests:       reqs,
		HTTPDuration:       durs,
		DocFetches:         fetches,
		Simulations:        sims,
		SimulationDuration: simDurs,
	}
}

// Registry returns the underlying Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest records one served request.
func (m *Metrics) RecordHTTPRequest(route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unknown"
	}
	m.HTTPRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// RecordDocFetch records a documentation tool invocation.
func (m *Metrics) RecordDocFetch(tool string, ok bool) {
	if m == nil {
		return
	}
	m.DocFetches.WithLabelValues(tool, outcome(ok)).Inc()
}

// RecordSimulation records a simulation request and its duration.
func (m *Metrics) RecordSimulation(ok bool, duration time.Duration) {
	if m == nil {
		return
	}
	o := outcome(ok)
	m.Simulations.WithLabelValues(o).Inc()
	m.SimulationDuration.WithLabelValues(o).Observe(duration.Seconds())
}

func outcome(ok bool) string {
	if ok {
		return "ok"
	}
	return "error"
}

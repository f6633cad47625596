package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry owns every collector the service exports. A nil *Registry is
// valid and records nothing, which keeps tests free of metrics plumbing.
type Registry struct {
	reg *prometheus.Registry

	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	upstream  *prometheus.CounterVec
	rotations prometheus.Counter
	fallbacks *prometheus.CounterVec
	sessions  prometheus.Gauge
}

// New creates a registry with process and Go runtime collectors attached.
func New() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "homestream_http_requests_total",
				Help: "Count of served HTTP requests",
			},
			[]string{"handler", "code", "method"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "homestream_http_request_duration_seconds",
				Help:    "Time taken to serve HTTP requests",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
			},
			[]string{"handler", "method"},
		),
		upstream: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "homestream_tmdb_requests_total",
				Help: "Count of TMDB API calls by endpoint and outcome",
			},
			[]string{"endpoint", "outcome"},
		),
		rotations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "homestream_tmdb_key_rotations_total",
				Help: "Count of API key rotations caused by rate limiting",
			},
		),
		fallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "homestream_placeholder_fallbacks_total",
				Help: "Count of sections served from placeholder content",
			},
			[]string{"section"},
		),
		sessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "homestream_active_sessions",
				Help: "Current number of browser sessions held in memory",
			},
		),
	}

	r.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.requests,
		r.duration,
		r.upstream,
		r.rotations,
		r.fallbacks,
		r.sessions,
	)
	return r
}

// Wrap instruments a handler with request count and latency under name.
func (r *Registry) Wrap(name string, next http.Handler) http.Handler {
	if r == nil {
		return next
	}
	labels := prometheus.Labels{"handler": name}
	return promhttp.InstrumentHandlerDuration(
		r.duration.MustCurryWith(labels),
		promhttp.InstrumentHandlerCounter(r.requests.MustCurryWith(labels), next),
	)
}

// Upstream records the outcome of a single TMDB request.
func (r *Registry) Upstream(endpoint, outcome string) {
	if r == nil {
		return
	}
	r.upstream.WithLabelValues(endpoint, outcome).Inc()
}

// Rotation records a credential switch.
func (r *Registry) Rotation() {
	if r == nil {
		return
	}
	r.rotations.Inc()
}

// Fallback records that a section was masked with placeholder content.
func (r *Registry) Fallback(section string) {
	if r == nil {
		return
	}
	r.fallbacks.WithLabelValues(section).Inc()
}

// Sessions sets the live session gauge.
func (r *Registry) Sessions(n int) {
	if r == nil {
		return
	}
	r.sessions.Set(float64(n))
}

// Handler exposes the registry in the Prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

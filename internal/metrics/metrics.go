// Package metrics exposes Prometheus collectors for the HTTP surface, content
// loads and live sessions.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors and the registry they are registered with.
type Metrics struct {
	registry *prometheus.Registry

	RequestCounter  *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ContentLoads    *prometheus.CounterVec
	LoadDuration    prometheus.Histogram
	LiveSessions    prometheus.Gauge
	LiveEvents      *prometheus.CounterVec
}

// New creates the collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "folio_http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: []float64{0.005, 0.025, 0.1, 0.5, 1, 5},
			},
			[]string{"method", "route"},
		),
		ContentLoads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_content_loads_total",
				Help: "Content loads by outcome",
			},
			[]string{"status"},
		),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "folio_content_load_duration_seconds",
			Help:    "Duration of content loads",
			Buckets: prometheus.DefBuckets,
		}),
		LiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "folio_live_sessions",
			Help: "Open live sessions",
		}),
		LiveEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_live_events_total",
				Help: "Inbound live session events by type",
			},
			[]string{"type"},
		),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestCounter,
		m.RequestDuration,
		m.ContentLoads,
		m.LoadDuration,
		m.LiveSessions,
		m.LiveEvents,
	)
	return m
}

// ObserveLoad records one content load.
func (m *Metrics) ObserveLoad(ok bool, d time.Duration) {
	status := "ok"
	if !ok {
		status = "failed"
	}
	m.ContentLoads.WithLabelValues(status).Inc()
	m.LoadDuration.Observe(d.Seconds())
}

// Middleware counts requests by route pattern and status.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.RequestCounter.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.RequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

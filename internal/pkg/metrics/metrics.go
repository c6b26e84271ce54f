package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var metricsNamespace = "hrsvr"

// MetricsCollection holds the HTTP and attendance/application counters.
// A nil *MetricsCollection is valid and records nothing.
type MetricsCollection struct {
	registry *prometheus.Registry

	RequestsTotal      *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
	ClockEventsTotal   *prometheus.CounterVec
	ApplicationsTotal  *prometheus.CounterVec
	StatusUpdatesTotal *prometheus.CounterVec
}

// New registers the collection, plus Go runtime and process collectors, on
// a fresh registry.
func New() *MetricsCollection {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &MetricsCollection{
		registry: reg,
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "http_requests_total",
				Help:      "Number of handled HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		ClockEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "clock_events_total",
				Help:      "Number of recorded clock-in and clock-out events.",
			},
			[]string{"event"},
		),
		ApplicationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "applications_submitted_total",
				Help:      "Number of submitted applications by category.",
			},
			[]string{"category"},
		),
		StatusUpdatesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "application_status_updates_total",
				Help:      "Number of application status changes by new status.",
			},
			[]string{"status"},
		),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (mc *MetricsCollection) Handler() http.Handler {
	return promhttp.HandlerFor(mc.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests.
func (mc *MetricsCollection) Registry() *prometheus.Registry {
	return mc.registry
}

func (mc *MetricsCollection) ClockIn() {
	if mc == nil {
		return
	}
	mc.ClockEventsTotal.WithLabelValues("clock_in").Inc()
}

func (mc *MetricsCollection) ClockOut() {
	if mc == nil {
		return
	}
	mc.ClockEventsTotal.WithLabelValues("clock_out").Inc()
}

func (mc *MetricsCollection) ApplicationSubmitted(category string) {
	if mc == nil {
		return
	}
	mc.ApplicationsTotal.WithLabelValues(category).Inc()
}

func (mc *MetricsCollection) StatusUpdated(status string) {
	if mc == nil {
		return
	}
	mc.StatusUpdatesTotal.WithLabelValues(status).Inc()
}

// Middleware records request counts and latency by chi route pattern.
func (mc *MetricsCollection) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		mc.RequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		mc.RequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

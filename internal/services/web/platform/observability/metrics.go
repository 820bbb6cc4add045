package observability

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/louisbranch/studentadmin/internal/services/web/platform/httpx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var latencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// Outcome labels for Student API calls.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics holds the Prometheus collectors exported by the web service.
type Metrics struct {
	registry     *prometheus.Registry
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
	APIRequests  *prometheus.CounterVec
	APIDuration  *prometheus.HistogramVec
}

// NewMetrics registers the web collectors on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "studentadmin_web_http_requests_total",
			Help: "Total number of browser requests served, by route pattern and status",
		}, []string{"method", "route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "studentadmin_web_http_request_duration_seconds",
			Help:    "Duration of browser requests, by route pattern",
			Buckets: latencyBuckets,
		}, []string{"method", "route"}),
		APIRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "studentadmin_student_api_requests_total",
			Help: "Total number of Student API calls, by operation and outcome",
		}, []string{"operation", "outcome"}),
		APIDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "studentadmin_student_api_request_duration_seconds",
			Help:    "Duration of Student API calls, by operation",
			Buckets: latencyBuckets,
		}, []string{"operation"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency per matched route pattern.
func (m *Metrics) Middleware() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			recorder := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(recorder, r)
			route := routeLabel(r)
			m.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(recorder.code())).Inc()
			m.HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(started).Seconds())
		})
	}
}

// ObserveAPICall records one Student API call.
func (m *Metrics) ObserveAPICall(operation string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	m.APIRequests.WithLabelValues(operation, outcome).Inc()
	m.APIDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// routeLabel keeps label cardinality bounded by using the mux pattern.
func routeLabel(r *http.Request) string {
	pattern := strings.TrimSpace(r.Pattern)
	if pattern == "" {
		return "unmatched"
	}
	return pattern
}

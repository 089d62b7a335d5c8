package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPServerMetrics collects request-level metrics plus catalog query
// outcomes on a private registry.
type HTTPServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	queryTotal   *prometheus.CounterVec
	queryResults *prometheus.HistogramVec
}

func NewHTTPServerMetrics(service string) *HTTPServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalog",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "catalog",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "catalog",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	queryTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalog",
			Subsystem: "query",
			Name:      "requests_total",
			Help:      "Total filter queries by outcome.",
		},
		[]string{"service", "endpoint", "outcome"},
	)
	queryResults := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "catalog",
			Subsystem: "query",
			Name:      "results",
			Help:      "Distribution of result counts per filter query.",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100, 250},
		},
		[]string{"service", "endpoint"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		queryTotal,
		queryResults,
	)

	return &HTTPServerMetrics{
		registry:        registry,
		requestTotal:    requestTotal,
		requestDuration: requestDuration,
		requestInFlight: requestInFlight,
		queryTotal:      queryTotal,
		queryResults:    queryResults,
	}
}

func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *HTTPServerMetrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := normalizePath(r.URL.Path)
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			service,
			r.Method,
			path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, path).Observe(time.Since(start).Seconds())
	})
}

// Metrics label cardinality stays bounded by collapsing slugs.
func normalizePath(path string) string {
	switch {
	case strings.HasPrefix(path, "/v1/products/"):
		return "/v1/products/{slug}"
	case strings.HasPrefix(path, "/v1/brands/"):
		if strings.HasSuffix(path, "/categories") {
			return "/v1/brands/{slug}/categories"
		}
		return "/v1/brands/{slug}"
	case strings.HasPrefix(path, "/v1/categories/"):
		if strings.HasSuffix(path, "/products") {
			return "/v1/categories/{slug}/products"
		}
		return "/v1/categories/{slug}"
	default:
		return path
	}
}

// RecordQuery counts one filter query and its result volume. Empty
// results are a valid outcome tracked separately from hits.
func (m *HTTPServerMetrics) RecordQuery(endpoint string, results int) {
	outcome := "hit"
	if results == 0 {
		outcome = "empty"
	}
	m.queryTotal.WithLabelValues("catalog", endpoint, outcome).Inc()
	m.queryResults.WithLabelValues("catalog", endpoint).Observe(float64(results))
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

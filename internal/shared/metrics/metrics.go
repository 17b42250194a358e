package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rochi88/go-exercise/internal/shared/logger"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight *prometheus.GaugeVec

	// Exercise metrics
	operationsTotal *prometheus.CounterVec
	rejectionsTotal *prometheus.CounterVec

	// Playground metrics
	handlesLive  prometheus.Gauge
	handlesSwept prometheus.Counter

	// System metrics
	uptime prometheus.Gauge

	logger *logger.Logger
}

// New creates a new metrics instance backed by its own registry
func New(logger *logger.Logger) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		logger:   logger.Named("metrics"),
	}

	factory := promauto.With(reg)
	m.initHTTPMetrics(factory)
	m.initExerciseMetrics(factory)
	m.initPlaygroundMetrics(factory)
	m.initSystemMetrics(factory)

	m.logger.Info("Metrics initialized")

	return m
}

// initHTTPMetrics initializes HTTP-related metrics
func (m *Metrics) initHTTPMetrics(f promauto.Factory) {
	m.httpRequestsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	m.httpRequestDuration = f.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	m.httpRequestsInFlight = f.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "endpoint"},
	)
}

// initExerciseMetrics initializes per-operation counters
func (m *Metrics) initExerciseMetrics(f promauto.Factory) {
	m.operationsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hof_operations_total",
			Help: "Total number of exercise operations invoked",
		},
		[]string{"kind", "operation"},
	)

	m.rejectionsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hof_rejections_total",
			Help: "Operations that left the handle unchanged because a guard refused them",
		},
		[]string{"kind", "operation"},
	)
}

// initPlaygroundMetrics initializes handle registry metrics
func (m *Metrics) initPlaygroundMetrics(f promauto.Factory) {
	m.handlesLive = f.NewGauge(
		prometheus.GaugeOpts{
			Name: "playground_handles",
			Help: "Number of live playground handles",
		},
	)

	m.handlesSwept = f.NewCounter(
		prometheus.CounterOpts{
			Name: "playground_swept_total",
			Help: "Total number of idle handles removed by the sweeper",
		},
	)
}

// initSystemMetrics initializes system metrics
func (m *Metrics) initSystemMetrics(f promauto.Factory) {
	m.uptime = f.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// HTTP Metrics Methods

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, endpoint string, status int, duration time.Duration) {
	statusStr := strconv.Itoa(status)

	m.httpRequestsTotal.WithLabelValues(method, endpoint, statusStr).Inc()
	m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// Exercise Metrics Methods

// RecordOperation records an operation on a handle. rejected marks
// operations a guard turned into a no-op.
func (m *Metrics) RecordOperation(kind, operation string, rejected bool) {
	m.operationsTotal.WithLabelValues(kind, operation).Inc()
	if rejected {
		m.rejectionsTotal.WithLabelValues(kind, operation).Inc()
	}
}

// Playground Metrics Methods

// SetLiveHandles sets the number of live handles
func (m *Metrics) SetLiveHandles(n int) {
	m.handlesLive.Set(float64(n))
}

// RecordSwept records handles removed by the sweeper
func (m *Metrics) RecordSwept(n int) {
	m.handlesSwept.Add(float64(n))
}

// System Metrics Methods

// RecordUptime records the application uptime
func (m *Metrics) RecordUptime(uptime time.Duration) {
	m.uptime.Set(uptime.Seconds())
}

// GinMiddleware returns a Gin middleware for collecting HTTP metrics
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method

		// Use the route template so handle ids do not explode cardinality
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		m.httpRequestsInFlight.WithLabelValues(method, path).Inc()
		defer m.httpRequestsInFlight.WithLabelValues(method, path).Dec()

		c.Next()

		m.RecordHTTPRequest(method, path, c.Writer.Status(), time.Since(start))
	}
}

// Handler returns an http.Handler serving this registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// GinMetricsHandler returns a Gin handler for the /metrics endpoint
func (m *Metrics) GinMetricsHandler() gin.HandlerFunc {
	return gin.WrapH(m.Handler())
}

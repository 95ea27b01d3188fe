package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Filesystem operation metrics
	OpsTotal    *prometheus.CounterVec
	OpDuration  *prometheus.HistogramVec
	OpErrors    *prometheus.CounterVec
	BytesRead   prometheus.Counter
	BytesWrote  prometheus.Counter

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time
}

// NewMetrics creates a new metrics collector
func NewMetrics() *Metrics {
	m := &Metrics{
		startTime: time.Now(),

		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fileops_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fileops_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),

		OpsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fileops_operations_total",
				Help: "Total number of filesystem operations",
			},
			[]string{"op", "outcome"},
		),
		OpDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fileops_operation_duration_seconds",
				Help:    "Filesystem operation duration in seconds",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5},
			},
			[]string{"op"},
		),
		OpErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fileops_operation_errors_total",
				Help: "Total number of filesystem operation failures",
			},
			[]string{"op", "error_type"},
		),
		BytesRead: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "fileops_bytes_read_total",
				Help: "Total bytes returned by read operations",
			},
		),
		BytesWrote: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "fileops_bytes_written_total",
				Help: "Total bytes accepted by write operations",
			},
		),

		Uptime: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "fileops_uptime_seconds",
				Help: "Backend uptime in seconds",
			},
		),
	}

	go m.updateUptime()

	return m
}

// updateUptime continuously updates the uptime metric
func (m *Metrics) updateUptime() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.Uptime.Set(time.Since(m.startTime).Seconds())
	}
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordOperation records a dispatched filesystem operation
func (m *Metrics) RecordOperation(op, outcome string, duration time.Duration) {
	m.OpsTotal.WithLabelValues(op, outcome).Inc()
	m.OpDuration.WithLabelValues(op).Observe(duration.Seconds())
}

// RecordOperationError records a failed operation by failure category
func (m *Metrics) RecordOperationError(op, errorType string) {
	m.OpErrors.WithLabelValues(op, errorType).Inc()
}

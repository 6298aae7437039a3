package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors used for monitoring the service: an HTTP
// request counter and duration histogram by route and status, and a counter
// for employee record operations.
type Metrics struct {
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
	EmpleadoOps  *prometheus.CounterVec
}

// New creates a Metrics instance registered with the provided Registerer.
func New(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "aurorarrhh_http_requests_total",
			Help: "Total HTTP requests served, by route and status code.",
		}, []string{"route", "status"}),
		HTTPDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "aurorarrhh_http_request_duration_seconds",
			Help:    "HTTP request latency, by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		EmpleadoOps: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "aurorarrhh_empleado_operations_total",
			Help: "Total employee record operations, by operation and outcome.",
		}, []string{"operation", "outcome"}),
	}
}

// RecordEmpleadoOp increments the employee operation counter.
func (m *Metrics) RecordEmpleadoOp(operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.EmpleadoOps.WithLabelValues(operation, outcome).Inc()
}

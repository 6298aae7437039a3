package metrics_test

import (
	"errors"
	"testing"

	"github.com/dmarquezl/aurora-rrhh/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNew_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.HTTPRequests.WithLabelValues("/api/empleados", "200").Inc()
	m.HTTPDuration.WithLabelValues("/api/empleados").Observe(0.01)

	if got := testutil.ToFloat64(m.HTTPRequests.WithLabelValues("/api/empleados", "200")); got != 1 {
		t.Fatalf("expected 1 request counted, got %v", got)
	}
}

func TestRecordEmpleadoOp(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.RecordEmpleadoOp("create", nil)
	m.RecordEmpleadoOp("create", errors.New("boom"))
	m.RecordEmpleadoOp("delete", nil)

	if got := testutil.ToFloat64(m.EmpleadoOps.WithLabelValues("create", "success")); got != 1 {
		t.Fatalf("expected 1 create success, got %v", got)
	}
	if got := testutil.ToFloat64(m.EmpleadoOps.WithLabelValues("create", "failure")); got != 1 {
		t.Fatalf("expected 1 create failure, got %v", got)
	}
	if got := testutil.ToFloat64(m.EmpleadoOps.WithLabelValues("delete", "success")); got != 1 {
		t.Fatalf("expected 1 delete success, got %v", got)
	}
}

package metrics

import (
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}
	if r.GraphNodes == nil || r.GraphEdges == nil {
		t.Error("graph gauges not initialized")
	}
	if r.ValidationsTotal == nil || r.EstimationsTotal == nil || r.SuiteRunsTotal == nil {
		t.Error("counters not initialized")
	}
	if r.registry == nil {
		t.Error("prometheus registry not initialized")
	}
}

func TestDefaultRegistry(t *testing.T) {
	// Should return the same instance
	if DefaultRegistry() != DefaultRegistry() {
		t.Error("DefaultRegistry() should return the same instance")
	}
}

// gatherValue finds a metric family by name and returns the value of
// its first metric, honoring the metric type.
func gatherValue(t *testing.T, r *Registry, name string) float64 {
	t.Helper()
	families, err := r.Gatherer().Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		if len(mf.Metric) == 0 {
			t.Fatalf("metric family %s has no metrics", name)
		}
		m := mf.Metric[0]
		switch mf.GetType() {
		case dto.MetricType_COUNTER:
			return m.GetCounter().GetValue()
		case dto.MetricType_GAUGE:
			return m.GetGauge().GetValue()
		case dto.MetricType_HISTOGRAM:
			return float64(m.GetHistogram().GetSampleCount())
		}
	}
	t.Fatalf("metric family %s not found", name)
	return 0
}

func TestRecordValidation(t *testing.T) {
	r := NewRegistry()
	r.RecordValidation(true, 0, 10*time.Millisecond)
	r.RecordValidation(false, 3, 5*time.Millisecond)

	if got := gatherValue(t, r, "causeway_validations_total"); got != 1 {
		t.Errorf("first label value = %v, want 1", got)
	}
	if got := gatherValue(t, r, "causeway_validation_duration_seconds"); got != 2 {
		t.Errorf("duration samples = %v, want 2", got)
	}
}

func TestRecordGraphAndSuite(t *testing.T) {
	r := NewRegistry()
	r.RecordGraph(12, 17)
	r.RecordSuiteStep("readiness", time.Millisecond)
	r.RecordSuiteRun(true)
	r.RecordBenchmarkBreach()

	if got := gatherValue(t, r, "causeway_graph_nodes"); got != 12 {
		t.Errorf("graph nodes = %v, want 12", got)
	}
	if got := gatherValue(t, r, "causeway_graph_edges"); got != 17 {
		t.Errorf("graph edges = %v, want 17", got)
	}
	if got := gatherValue(t, r, "causeway_benchmark_breaches_total"); got != 1 {
		t.Errorf("breaches = %v, want 1", got)
	}
}

func TestRecordEstimation(t *testing.T) {
	r := NewRegistry()
	r.RecordEstimation(true, 1000, 20*time.Millisecond)

	if got := gatherValue(t, r, "causeway_estimation_iterations"); got != 1 {
		t.Errorf("iteration samples = %v, want 1", got)
	}
}

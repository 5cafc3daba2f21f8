// Package metrics exposes Prometheus collectors for graph validation,
// Monte Carlo estimation, and validation-suite execution.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the causal core
type Registry struct {
	// Graph metrics
	GraphNodes prometheus.Gauge
	GraphEdges prometheus.Gauge

	// Structural validation metrics
	ValidationsTotal   *prometheus.CounterVec
	ValidationDuration prometheus.Histogram
	OrderViolations    prometheus.Histogram

	// Monte Carlo estimation metrics
	EstimationsTotal     *prometheus.CounterVec
	EstimationDuration   prometheus.Histogram
	EstimationIterations prometheus.Histogram

	// Suite metrics
	SuiteRunsTotal    *prometheus.CounterVec
	SuiteStepDuration *prometheus.HistogramVec
	BenchmarkBreaches prometheus.Counter

	registry *prometheus.Registry
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide registry instance
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a registry with all collectors registered
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}

	r.GraphNodes = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "causeway_graph_nodes",
		Help: "Number of nodes in the most recently validated graph",
	})
	r.GraphEdges = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "causeway_graph_edges",
		Help: "Number of edges in the most recently validated graph, feedback included",
	})

	r.ValidationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "causeway_validations_total",
		Help: "Structural validations by outcome",
	}, []string{"result"})
	r.ValidationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "causeway_validation_duration_seconds",
		Help:    "Structural validation latency",
		Buckets: prometheus.DefBuckets,
	})
	r.OrderViolations = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "causeway_order_violations",
		Help:    "Order violations found per validation",
		Buckets: []float64{0, 1, 2, 5, 10, 25, 50},
	})

	r.EstimationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "causeway_estimations_total",
		Help: "Monte Carlo estimations by outcome",
	}, []string{"result"})
	r.EstimationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "causeway_estimation_duration_seconds",
		Help:    "Monte Carlo estimation latency",
		Buckets: prometheus.DefBuckets,
	})
	r.EstimationIterations = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "causeway_estimation_iterations",
		Help:    "Iterations requested per estimation",
		Buckets: prometheus.ExponentialBuckets(100, 10, 5),
	})

	r.SuiteRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "causeway_suite_runs_total",
		Help: "Validation suite executions by outcome",
	}, []string{"result"})
	r.SuiteStepDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "causeway_suite_step_duration_seconds",
		Help:    "Per-step validation suite latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"step"})
	r.BenchmarkBreaches = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "causeway_benchmark_breaches_total",
		Help: "Benchmark threshold breaches recorded by the suite",
	})

	r.registry.MustRegister(
		r.GraphNodes, r.GraphEdges,
		r.ValidationsTotal, r.ValidationDuration, r.OrderViolations,
		r.EstimationsTotal, r.EstimationDuration, r.EstimationIterations,
		r.SuiteRunsTotal, r.SuiteStepDuration, r.BenchmarkBreaches,
	)
	return r
}

// Gatherer exposes the underlying registry so callers can serve or
// scrape it however they wire their observability layer.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// RecordValidation records one structural validation
func (r *Registry) RecordValidation(valid bool, violations int, duration time.Duration) {
	r.ValidationsTotal.WithLabelValues(outcome(valid)).Inc()
	r.ValidationDuration.Observe(duration.Seconds())
	r.OrderViolations.Observe(float64(violations))
}

// RecordEstimation records one Monte Carlo estimation
func (r *Registry) RecordEstimation(ok bool, iterations int, duration time.Duration) {
	r.EstimationsTotal.WithLabelValues(outcome(ok)).Inc()
	r.EstimationDuration.Observe(duration.Seconds())
	r.EstimationIterations.Observe(float64(iterations))
}

// RecordGraph records the size of the graph under evaluation
func (r *Registry) RecordGraph(nodes, edges int) {
	r.GraphNodes.Set(float64(nodes))
	r.GraphEdges.Set(float64(edges))
}

// RecordSuiteStep records the latency of one suite step
func (r *Registry) RecordSuiteStep(step string, duration time.Duration) {
	r.SuiteStepDuration.WithLabelValues(step).Observe(duration.Seconds())
}

// RecordSuiteRun records a completed suite execution
func (r *Registry) RecordSuiteRun(passed bool) {
	r.SuiteRunsTotal.WithLabelValues(outcome(passed)).Inc()
}

// RecordBenchmarkBreach counts a benchmark threshold breach
func (r *Registry) RecordBenchmarkBreach() {
	r.BenchmarkBreaches.Inc()
}

func outcome(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}

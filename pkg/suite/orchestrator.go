// Package suite runs the full fixed sequence of checks and benchmarks
// that certifies a causal model: readiness, structural validation,
// connection-matrix validation, and performance benchmarks.
package suite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/evalctl/causeway/pkg/causal"
	"github.com/evalctl/causeway/pkg/config"
	"github.com/evalctl/causeway/pkg/logging"
	"github.com/evalctl/causeway/pkg/metrics"
	"github.com/evalctl/causeway/pkg/montecarlo"
	"github.com/evalctl/causeway/pkg/structural"
)

// readinessSeed pins the readiness estimation so its expected outcome
// is exact.
var readinessSeed = int64(1)

// Orchestrator composes the builder, validator, and estimator into the
// fixed validation sequence.
type Orchestrator struct {
	cfg       config.Config
	validator *structural.Validator
	estimator *montecarlo.Estimator
	logger    logging.Logger
	registry  *metrics.Registry
}

// NewOrchestrator wires an orchestrator from configuration, a log
// sink, and a metrics registry. A nil logger discards output; a nil
// registry falls back to the process-wide default.
func NewOrchestrator(cfg config.Config, logger logging.Logger, registry *metrics.Registry) *Orchestrator {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	if registry == nil {
		registry = metrics.DefaultRegistry()
	}

	estimator := montecarlo.NewEstimator()
	if cfg.RunSalt != "" {
		estimator.RunSalt = cfg.RunSalt
	}

	return &Orchestrator{
		cfg: cfg,
		validator: structural.NewValidatorWithOptions(structural.Options{
			MaxPathLength: cfg.MaxPathLength,
			MaxPaths:      cfg.MaxPaths,
		}),
		estimator: estimator,
		logger:    logger.With(logging.Component("validation-suite")),
		registry:  registry,
	}
}

// ExecuteSuite runs the fixed check sequence against a graph. Hard
// failures in readiness or structural validation abort the remaining
// steps; benchmark threshold breaches are recorded as warnings unless
// configured fatal. Failed benchmarks are not retried. The returned
// error is non-nil only for cancellation; check failures are reported
// through Report.Passed.
func (o *Orchestrator) ExecuteSuite(ctx context.Context, g *causal.Graph) (*Report, error) {
	report := &Report{
		RunID:     uuid.NewString(),
		Passed:    true,
		StartedAt: time.Now(),
	}
	o.logger.Info("suite started", logging.String("run_id", report.RunID))

	steps := []struct {
		name string
		run  func(context.Context, *causal.Graph, *Report) error
		hard bool
	}{
		{StepReadiness, o.runReadiness, true},
		{StepStructural, o.runStructural, true},
		{StepConnectionMatrix, o.runConnectionMatrix, true},
		{StepBenchmarks, o.runBenchmarks, o.cfg.Benchmarks.Fatal},
	}

	for _, step := range steps {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("suite aborted before step %s: %w", step.name, ctx.Err())
		default:
		}

		start := time.Now()
		err := step.run(ctx, g, report)
		duration := time.Since(start)
		o.registry.RecordSuiteStep(step.name, duration)

		result := StepResult{Name: step.name, Status: StatusPassed, Duration: duration}
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			result.Message = err.Error()
			if step.hard {
				result.Status = StatusFailed
				report.Passed = false
			} else {
				result.Status = StatusWarning
				report.Warnings = append(report.Warnings, err.Error())
			}
		}
		report.Steps = append(report.Steps, result)

		o.logger.Info("suite step finished",
			logging.Step(step.name),
			logging.String("status", string(result.Status)),
			logging.Duration("duration", duration))

		if result.Status == StatusFailed {
			break
		}
	}

	report.Duration = time.Since(report.StartedAt)
	o.registry.RecordSuiteRun(report.Passed)
	o.logger.Info("suite finished",
		logging.String("run_id", report.RunID),
		logging.Bool("passed", report.Passed),
		logging.Duration("duration", report.Duration))
	return report, nil
}

// emit appends a metric to the report and logs it
func (o *Orchestrator) emit(report *Report, name string, threshold, value float64, passed bool) {
	report.Metrics = append(report.Metrics, Metric{
		Name:      name,
		Threshold: threshold,
		Value:     value,
		Passed:    passed,
		Timestamp: time.Now(),
	})
	o.logger.Debug("metric emitted",
		logging.String("metric", name),
		logging.Float64("threshold", threshold),
		logging.Float64("value", value),
		logging.Bool("passed", passed))
}

// runReadiness exercises the builder, validator, and estimator on a
// minimal five-stage model. A component that cannot handle the trivial
// case is not ready for a real one; a hardcoded success flag proves
// nothing.
func (o *Orchestrator) runReadiness(ctx context.Context, _ *causal.Graph, report *Report) error {
	trivial, err := causal.BuildGraph(
		[]causal.NodeDecl{
			{ID: "in", Category: causal.Inputs},
			{ID: "proc", Category: causal.Processes},
			{ID: "out", Category: causal.Outputs},
			{ID: "res", Category: causal.Results},
			{ID: "imp", Category: causal.Impact},
		},
		[]causal.EdgeDecl{
			{Source: "in", Target: "proc"},
			{Source: "proc", Target: "out"},
			{Source: "out", Target: "res"},
			{Source: "res", Target: "imp"},
		},
	)
	if err != nil {
		return fmt.Errorf("builder not ready: %w", err)
	}

	validation := o.validator.Validate(trivial)
	if !validation.Valid {
		return fmt.Errorf("validator not ready: trivial model reported invalid")
	}

	estimate, err := o.estimator.EstimateRobustness(ctx, trivial, "readiness-probe", 50,
		&montecarlo.Options{Seed: &readinessSeed, RetentionProbability: 1.0})
	if err != nil {
		return fmt.Errorf("estimator not ready: %w", err)
	}
	p := 0.0
	if estimate.PValue != nil {
		p = *estimate.PValue
	}
	o.emit(report, "readiness.acyclicity_p_value", 1.0, p, p == 1.0)
	if p != 1.0 {
		return fmt.Errorf("estimator not ready: trivial DAG estimated p=%v, want 1.0", p)
	}
	return nil
}

// runStructural validates the graph under evaluation
func (o *Orchestrator) runStructural(_ context.Context, g *causal.Graph, report *Report) error {
	start := time.Now()
	result := o.validator.Validate(g)
	duration := time.Since(start)

	o.registry.RecordGraph(g.NodeCount(), g.EdgeCount())
	o.registry.RecordValidation(result.Valid, len(result.OrderViolations), duration)

	o.emit(report, "validation.order_violations", 0, float64(len(result.OrderViolations)),
		len(result.OrderViolations) == 0)
	o.emit(report, "validation.missing_categories", 0, float64(len(result.MissingCategories)),
		len(result.MissingCategories) == 0)
	o.emit(report, "validation.complete_paths", 1, float64(len(result.CompletePaths)),
		len(result.CompletePaths) >= 1)

	if !result.Valid {
		return fmt.Errorf("structural validation failed: %d order violations, %d missing categories, %d complete paths",
			len(result.OrderViolations), len(result.MissingCategories), len(result.CompletePaths))
	}
	return nil
}

// runConnectionMatrix confirms every edge present in the graph is
// legal under the configured transition table, and every feedback edge
// actually goes backward.
func (o *Orchestrator) runConnectionMatrix(_ context.Context, g *causal.Graph, report *Report) error {
	table, err := o.cfg.TransitionTable()
	if err != nil {
		return fmt.Errorf("connection matrix unavailable: %w", err)
	}

	illegal := 0
	for _, e := range g.ForwardEdges() {
		src, okS := g.Node(e.Source)
		dst, okT := g.Node(e.Target)
		if !okS || !okT || !table.Legal(src.Category, dst.Category) {
			illegal++
		}
	}
	for _, e := range g.FeedbackEdges() {
		src, okS := g.Node(e.Source)
		dst, okT := g.Node(e.Target)
		if !okS || !okT || src.Category <= dst.Category {
			illegal++
		}
	}

	o.emit(report, "connection_matrix.illegal_edges", 0, float64(illegal), illegal == 0)
	if illegal > 0 {
		return fmt.Errorf("connection matrix check failed: %d illegal edges", illegal)
	}
	return nil
}

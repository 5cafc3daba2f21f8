package suite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/evalctl/causeway/pkg/causal"
	"github.com/evalctl/causeway/pkg/montecarlo"
)

// benchmarkStages is how many nodes per category the synthetic
// benchmark model carries. Sized to match a realistic policy plan
// (tens of nodes).
const benchmarkStages = 10

var benchmarkSeed = int64(424242)

// runBenchmarks times build, validation, and estimation over a
// synthetic model and compares each against its configured budget.
// Breaches are reported but never retried.
func (o *Orchestrator) runBenchmarks(ctx context.Context, _ *causal.Graph, report *Report) error {
	budgets := o.cfg.Benchmarks
	var breaches []error

	buildStart := time.Now()
	synthetic, err := buildSyntheticModel(benchmarkStages)
	buildTime := time.Since(buildStart)
	if err != nil {
		return fmt.Errorf("benchmark model construction failed: %w", err)
	}
	if breach := o.emitBenchmark(report, "benchmark.build_seconds", budgets.BuildBudget, buildTime); breach != nil {
		breaches = append(breaches, breach)
	}

	validateStart := time.Now()
	result := o.validator.Validate(synthetic)
	validateTime := time.Since(validateStart)
	if !result.Valid {
		return fmt.Errorf("benchmark model unexpectedly invalid")
	}
	if breach := o.emitBenchmark(report, "benchmark.validate_seconds", budgets.ValidateBudget, validateTime); breach != nil {
		breaches = append(breaches, breach)
	}

	estimateStart := time.Now()
	_, err = o.estimator.EstimateRobustness(ctx, synthetic, "benchmark-probe", budgets.Iterations,
		&montecarlo.Options{Seed: &benchmarkSeed})
	estimateTime := time.Since(estimateStart)
	if err != nil {
		return fmt.Errorf("benchmark estimation failed: %w", err)
	}
	o.registry.RecordEstimation(true, budgets.Iterations, estimateTime)
	if breach := o.emitBenchmark(report, "benchmark.estimate_seconds", budgets.EstimateBudget, estimateTime); breach != nil {
		breaches = append(breaches, breach)
	}

	return errors.Join(breaches...)
}

// emitBenchmark records one timing metric and returns a breach error
// when the measurement exceeds its budget.
func (o *Orchestrator) emitBenchmark(report *Report, name string, budget time.Duration, measured time.Duration) error {
	passed := measured <= budget
	o.emit(report, name, budget.Seconds(), measured.Seconds(), passed)
	if passed {
		return nil
	}
	o.registry.RecordBenchmarkBreach()
	return fmt.Errorf("%s: measured %v exceeds budget %v", name, measured, budget)
}

// buildSyntheticModel assembles a layered model with the given number
// of nodes per category: every node links to each node of the next
// category, plus one feedback edge from impact back to inputs.
func buildSyntheticModel(perStage int) (*causal.Graph, error) {
	b := causal.NewBuilder()
	categories := causal.Categories()

	ids := make([][]string, len(categories))
	for ci, c := range categories {
		ids[ci] = make([]string, perStage)
		for i := 0; i < perStage; i++ {
			id := fmt.Sprintf("%s-%d", c, i)
			if err := b.AddNode(id, c, nil); err != nil {
				return nil, err
			}
			ids[ci][i] = id
		}
	}
	for ci := 0; ci < len(categories)-1; ci++ {
		for _, from := range ids[ci] {
			for _, to := range ids[ci+1] {
				if err := b.AddEdge(from, to); err != nil {
					return nil, err
				}
			}
		}
	}
	if err := b.AddFeedbackEdge(ids[len(ids)-1][0], ids[0][0]); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

package causeway

import (
	"context"
	"testing"

	"github.com/evalctl/causeway/pkg/causal"
	"github.com/evalctl/causeway/pkg/config"
	"github.com/evalctl/causeway/pkg/metrics"
)

func newTestCore(t *testing.T) *Core {
	t.Helper()
	core, err := New(config.Default(), nil, metrics.NewRegistry())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return core
}

func planDeclarations() ([]causal.NodeDecl, []causal.EdgeDecl) {
	nodes := []causal.NodeDecl{
		{ID: "funding", Category: causal.Inputs},
		{ID: "training", Category: causal.Processes},
		{ID: "graduates", Category: causal.Outputs},
		{ID: "employment", Category: causal.Results},
		{ID: "poverty-reduction", Category: causal.Impact},
	}
	edges := []causal.EdgeDecl{
		{Source: "funding", Target: "training"},
		{Source: "training", Target: "graduates"},
		{Source: "graduates", Target: "employment"},
		{Source: "employment", Target: "poverty-reduction"},
	}
	return nodes, edges
}

func TestCore_EndToEnd(t *testing.T) {
	core := newTestCore(t)
	nodes, edges := planDeclarations()

	g, err := core.Build(nodes, edges)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	result := core.Validate(g)
	if !result.Valid {
		t.Fatalf("expected valid plan, got: %+v", result)
	}

	estimate, err := core.EstimateRobustness(context.Background(), g, "plan-e2e", 0, nil)
	if err != nil {
		t.Fatalf("EstimateRobustness failed: %v", err)
	}
	// iterations <= 0 selects the configured default
	if estimate.Iterations != config.Default().DefaultIterations {
		t.Errorf("iterations = %d, want configured default %d",
			estimate.Iterations, config.Default().DefaultIterations)
	}
	if estimate.PValue == nil || *estimate.PValue != 1.0 {
		t.Errorf("acyclic plan p-value = %v, want 1.0", estimate.PValue)
	}

	sensitivity, err := core.AnalyzeSensitivity(context.Background(), g, "plan-e2e", 100, nil)
	if err != nil {
		t.Fatalf("AnalyzeSensitivity failed: %v", err)
	}
	if sensitivity.RobustnessScore != 1.0 {
		t.Errorf("DAG robustness = %v, want 1.0", sensitivity.RobustnessScore)
	}

	report, err := core.ExecuteSuite(context.Background(), g)
	if err != nil {
		t.Fatalf("ExecuteSuite failed: %v", err)
	}
	if !report.Passed {
		t.Errorf("suite failed for a valid plan: %+v", report)
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.ConfidenceLevel = 2.0
	if _, err := New(cfg, nil, metrics.NewRegistry()); err == nil {
		t.Error("expected error for invalid configuration")
	}
}

func TestCore_BuildUsesConfiguredTransitions(t *testing.T) {
	cfg := config.Default()
	cfg.Transitions = map[string][]string{
		"inputs": {"processes"},
	}
	core, err := New(cfg, nil, metrics.NewRegistry())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	nodes := []causal.NodeDecl{
		{ID: "A", Category: causal.Inputs},
		{ID: "C", Category: causal.Outputs},
	}
	// inputs -> outputs is forward, but the configured rules only
	// allow inputs -> processes
	_, err = core.Build(nodes, []causal.EdgeDecl{{Source: "A", Target: "C"}})
	if err == nil {
		t.Error("expected configured transition table to reject the edge")
	}
}

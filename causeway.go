// Package causeway validates theory-of-change causal models for
// policy plans and estimates how structurally robust they are against
// random perturbation. It is the single entry point over the causal
// graph builder, the structural validator, the Monte Carlo robustness
// estimator, and the validation suite.
package causeway

import (
	"context"

	"github.com/evalctl/causeway/pkg/causal"
	"github.com/evalctl/causeway/pkg/config"
	"github.com/evalctl/causeway/pkg/logging"
	"github.com/evalctl/causeway/pkg/metrics"
	"github.com/evalctl/causeway/pkg/montecarlo"
	"github.com/evalctl/causeway/pkg/structural"
	"github.com/evalctl/causeway/pkg/suite"
)

// Core bundles the configured components for one deployment. All
// methods are safe for concurrent use; each estimation call owns its
// private random source.
type Core struct {
	cfg          config.Config
	validator    *structural.Validator
	estimator    *montecarlo.Estimator
	orchestrator *suite.Orchestrator
}

// New creates a Core from configuration. A nil logger discards log
// output; a nil registry uses the process-wide metrics registry.
func New(cfg config.Config, logger logging.Logger, registry *metrics.Registry) (*Core, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	estimator := montecarlo.NewEstimator()
	estimator.RunSalt = cfg.RunSalt

	return &Core{
		cfg: cfg,
		validator: structural.NewValidatorWithOptions(structural.Options{
			MaxPathLength: cfg.MaxPathLength,
			MaxPaths:      cfg.MaxPaths,
		}),
		estimator:    estimator,
		orchestrator: suite.NewOrchestrator(cfg, logger, registry),
	}, nil
}

// Build assembles an immutable causal graph from externally supplied
// declarations, using the configured transition legality table.
func (c *Core) Build(nodes []causal.NodeDecl, edges []causal.EdgeDecl) (*causal.Graph, error) {
	table, err := c.cfg.TransitionTable()
	if err != nil {
		return nil, err
	}
	return causal.BuildGraphWithTransitions(nodes, edges, table)
}

// Validate runs the structural check over a built graph.
func (c *Core) Validate(g *causal.Graph) *structural.Result {
	return c.validator.Validate(g)
}

// EstimateRobustness runs a Monte Carlo acyclicity estimation.
// iterations <= 0 selects the configured default count.
func (c *Core) EstimateRobustness(ctx context.Context, g *causal.Graph, planID string, iterations int, opts *montecarlo.Options) (*montecarlo.Result, error) {
	if iterations <= 0 {
		iterations = c.cfg.DefaultIterations
	}
	opts = c.withConfigDefaults(opts)
	return c.estimator.EstimateRobustness(ctx, g, planID, iterations, opts)
}

// AnalyzeSensitivity measures each edge's contribution to the
// estimated acyclicity probability.
func (c *Core) AnalyzeSensitivity(ctx context.Context, g *causal.Graph, planID string, iterations int, opts *montecarlo.Options) (*montecarlo.SensitivityResult, error) {
	if iterations <= 0 {
		iterations = c.cfg.DefaultIterations
	}
	opts = c.withConfigDefaults(opts)
	return c.estimator.AnalyzeSensitivity(ctx, g, planID, iterations, opts)
}

// ExecuteSuite runs the full fixed validation sequence.
func (c *Core) ExecuteSuite(ctx context.Context, g *causal.Graph) (*suite.Report, error) {
	return c.orchestrator.ExecuteSuite(ctx, g)
}

// withConfigDefaults overlays configured defaults onto per-call
// options the caller left unset.
func (c *Core) withConfigDefaults(opts *montecarlo.Options) *montecarlo.Options {
	merged := montecarlo.Options{}
	if opts != nil {
		merged = *opts
	}
	if merged.RetentionProbability == 0 {
		merged.RetentionProbability = c.cfg.RetentionProbability
	}
	if merged.ConfidenceLevel == 0 {
		merged.ConfidenceLevel = c.cfg.ConfidenceLevel
	}
	return &merged
}

package montecarlo

import (
	"errors"
	"time"
)

// Sentinel errors for invalid call parameters
var (
	ErrInvalidIterations = errors.New("iterations must be positive")
	ErrNilGraph          = errors.New("graph is nil")
)

// Options are the per-call tuning knobs for an estimation. The zero
// value of each field selects its documented default.
type Options struct {
	// Seed overrides the derived seed when non-nil
	Seed *int64
	// RetentionProbability is the chance each edge survives in a
	// candidate subgraph (default 0.5)
	RetentionProbability float64
	// ConfidenceLevel for the Wilson score interval (default 0.95)
	ConfidenceLevel float64
	// Prior belief in structural soundness for the Bayesian update
	// (default 0.5)
	Prior float64
}

func (o *Options) withDefaults() Options {
	opts := Options{}
	if o != nil {
		opts = *o
	}
	if opts.RetentionProbability == 0 {
		opts.RetentionProbability = 0.5
	}
	if opts.ConfidenceLevel == 0 {
		opts.ConfidenceLevel = 0.95
	}
	if opts.Prior == 0 {
		opts.Prior = 0.5
	}
	return opts
}

// Result is the outcome of one Monte Carlo robustness estimation.
// PValue is nil for degenerate graphs (no nodes), in which case all
// statistics are zero and Reproducible is false.
type Result struct {
	PlanID          string
	RunID           string
	Iterations      int
	Seed            int64
	PValue          *float64
	CILower         float64
	CIUpper         float64
	Power           float64
	Posterior       float64
	NodeImportance  map[string]float64
	ComputationTime time.Duration
	Reproducible    bool
}

// SensitivityResult reports how much each single edge contributes to
// the estimated acyclicity probability. Sensitivity is keyed by the
// canonical "source->target" edge form.
type SensitivityResult struct {
	PlanID             string
	RunID              string
	Iterations         int
	Seed               int64
	BaselinePValue     float64
	Sensitivity        map[string]float64
	AverageSensitivity float64
	RobustnessScore    float64
	ComputationTime    time.Duration
	Reproducible       bool
}

package montecarlo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/evalctl/causeway/pkg/causal"
	"github.com/evalctl/causeway/pkg/seed"
	"github.com/evalctl/causeway/pkg/structural"
)

// DefaultCheckEvery is how many iterations run between cooperative
// cancellation checks. The iteration count is caller-controlled and
// otherwise unbounded, so long loops must observe the context.
const DefaultCheckEvery = 1024

// defaultRunSalt feeds the derived-seed path when the caller supplies
// no explicit seed.
const defaultRunSalt = "robustness-run"

// Estimator performs Monte Carlo acyclicity estimation over causal
// graphs. The zero value is not usable; construct with NewEstimator.
// An Estimator is stateless across calls and safe for concurrent use:
// each call owns its private random source.
type Estimator struct {
	// RunSalt is mixed into derived seeds so different run kinds on
	// the same plan do not share randomness
	RunSalt string
	// NewSource builds the per-call random source for a seed
	NewSource func(seed int64) Source
	// CheckEvery bounds the interval between context checks
	CheckEvery int
	// Now supplies the date used for derived seeds; injectable so
	// tests can pin it
	Now func() time.Time

	validator *structural.Validator
}

// NewEstimator creates an estimator with default seeding, randomness,
// and cancellation settings.
func NewEstimator() *Estimator {
	return &Estimator{
		RunSalt:    defaultRunSalt,
		NewSource:  NewSource,
		CheckEvery: DefaultCheckEvery,
		Now:        time.Now,
		validator:  structural.NewValidator(),
	}
}

// EstimateRobustness estimates the probability that a random edge
// subset of the graph remains acyclic. Each of the given iterations
// retains every edge (feedback included) independently with the
// configured retention probability and tests the candidate subgraph
// with Kahn's algorithm.
//
// The seed resolves caller-supplied first, otherwise it is derived
// from (planID, run salt, current date). Results are recomputed on
// every call, never cached.
func (e *Estimator) EstimateRobustness(ctx context.Context, g *causal.Graph, planID string, iterations int, opts *Options) (*Result, error) {
	start := time.Now()
	if g == nil {
		return nil, ErrNilGraph
	}
	if iterations <= 0 {
		return nil, fmt.Errorf("estimate robustness for plan %q: %w (got %d)", planID, ErrInvalidIterations, iterations)
	}

	result := &Result{
		PlanID:     planID,
		RunID:      uuid.NewString(),
		Iterations: iterations,
	}

	// Degenerate graph: no nodes means nothing to estimate. Return a
	// sentinel result, never an error.
	if g.NodeCount() == 0 {
		result.NodeImportance = map[string]float64{}
		result.ComputationTime = time.Since(start)
		return result, nil
	}

	o := opts.withDefaults()
	seedValue := e.resolveSeed(planID, o.Seed)
	result.Seed = seedValue
	result.Reproducible = true

	p, err := e.acyclicFraction(ctx, g.NodeIDs(), g.AllEdges(), iterations, o.RetentionProbability, seedValue, -1)
	if err != nil {
		return nil, err
	}

	result.PValue = &p
	result.CILower, result.CIUpper = wilsonInterval(p, iterations, o.ConfidenceLevel)
	result.Power = statisticalPower(p, iterations, 1-o.ConfidenceLevel)
	result.Posterior = bayesianPosterior(p, o.Prior)
	result.NodeImportance = nodeImportance(g, e.pathValidator().CompletePaths(g))
	result.ComputationTime = time.Since(start)
	return result, nil
}

// resolveSeed prefers the caller-supplied seed, deriving one from the
// plan identity otherwise.
func (e *Estimator) resolveSeed(planID string, explicit *int64) int64 {
	if explicit != nil {
		return *explicit
	}
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	return seed.Seed(planID, e.RunSalt, now().UTC().Format("2006-01-02"))
}

// acyclicFraction runs the core sampling loop and returns the fraction
// of candidate subgraphs that were acyclic. skip names an edge index
// excluded from every candidate (-1 for none); a draw is still consumed
// for skipped edges so that with- and without-edge runs see identical
// retention patterns on the remaining edges (common random numbers).
func (e *Estimator) acyclicFraction(ctx context.Context, ids []string, edges []causal.Edge, iterations int, retention float64, seedValue int64, skip int) (float64, error) {
	newSource := e.NewSource
	if newSource == nil {
		newSource = NewSource
	}
	rng := newSource(seedValue)

	checkEvery := e.CheckEvery
	if checkEvery <= 0 {
		checkEvery = DefaultCheckEvery
	}

	acyclic := 0
	adj := make(map[string][]string, len(ids))
	indegree := make(map[string]int, len(ids))

	for i := 0; i < iterations; i++ {
		if i%checkEvery == 0 && ctx != nil {
			select {
			case <-ctx.Done():
				return 0, fmt.Errorf("robustness estimation aborted after %d iterations: %w", i, ctx.Err())
			default:
			}
		}

		for _, id := range ids {
			adj[id] = adj[id][:0]
			indegree[id] = 0
		}
		for j, edge := range edges {
			retained := rng.Float64() < retention
			if j == skip || !retained {
				continue
			}
			adj[edge.Source] = append(adj[edge.Source], edge.Target)
			indegree[edge.Target]++
		}

		if isAcyclic(ids, adj, indegree) {
			acyclic++
		}
	}

	return float64(acyclic) / float64(iterations), nil
}

// pathValidator returns the validator used for node importance,
// falling back to defaults for estimators not built via NewEstimator.
// No state is written, so concurrent estimations stay race-free.
func (e *Estimator) pathValidator() *structural.Validator {
	if e.validator == nil {
		return structural.NewValidator()
	}
	return e.validator
}

// nodeImportance scores each node by the fraction of complete causal
// paths passing through it. Nodes on no path score zero; with no
// complete paths at all, every node scores zero.
func nodeImportance(g *causal.Graph, paths [][]string) map[string]float64 {
	importance := make(map[string]float64, g.NodeCount())
	for _, id := range g.NodeIDs() {
		importance[id] = 0
	}
	if len(paths) == 0 {
		return importance
	}
	for _, path := range paths {
		for _, id := range path {
			importance[id]++
		}
	}
	total := float64(len(paths))
	for id := range importance {
		importance[id] /= total
	}
	return importance
}

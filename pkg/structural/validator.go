package structural

import (
	"sort"
	"time"

	"github.com/evalctl/causeway/pkg/causal"
)

// Validator checks categorical completeness and causal-order
// correctness over a built graph. It holds no graph state; the same
// validator can check any number of graphs.
type Validator struct {
	opts Options
}

// NewValidator creates a validator with default path-search bounds.
func NewValidator() *Validator {
	return NewValidatorWithOptions(Options{})
}

// NewValidatorWithOptions creates a validator with explicit bounds.
func NewValidatorWithOptions(opts Options) *Validator {
	return &Validator{opts: opts.withDefaults()}
}

// Categories returns the set of categories actually present among the
// graph's nodes.
func (v *Validator) Categories(g *causal.Graph) map[causal.Category]bool {
	present := make(map[causal.Category]bool)
	for _, id := range g.NodeIDs() {
		if n, ok := g.Node(id); ok {
			present[n.Category] = true
		}
	}
	return present
}

// MissingCategories returns the categories with no instantiated node,
// in causal order.
func (v *Validator) MissingCategories(g *causal.Graph) []causal.Category {
	present := v.Categories(g)
	missing := make([]causal.Category, 0)
	for _, c := range causal.Categories() {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	return missing
}

// OrderViolations scans every forward edge and collects, without
// short-circuiting, each edge whose source/target category pair goes
// backward in the causal total order. The returned list follows edge
// insertion order, so repeated calls are deterministic.
func (v *Validator) OrderViolations(g *causal.Graph) []causal.Edge {
	violations := make([]causal.Edge, 0)
	for _, e := range g.ForwardEdges() {
		src, okS := g.Node(e.Source)
		dst, okT := g.Node(e.Target)
		if !okS || !okT {
			continue
		}
		if src.Category > dst.Category {
			violations = append(violations, e)
		}
	}
	return violations
}

// CompletePaths enumerates simple paths from any Inputs node to any
// Impact node that touch at least one node of every category in
// non-decreasing order. Only forward edges participate; feedback edges
// are excluded from primary path search. The search is bounded by the
// validator's Options.
func (v *Validator) CompletePaths(g *causal.Graph) [][]string {
	starts := make([]string, 0)
	for _, id := range g.NodeIDs() {
		if n, ok := g.Node(id); ok && n.Category == causal.Inputs {
			starts = append(starts, id)
		}
	}
	sort.Strings(starts)

	s := &pathSearch{
		graph:  g,
		opts:   v.opts,
		paths:  make([][]string, 0),
		onPath: make(map[string]bool),
	}
	for _, start := range starts {
		if len(s.paths) >= v.opts.MaxPaths {
			break
		}
		s.walk(start, nil, 0)
	}
	return s.paths
}

// pathSearch carries the DFS state for one CompletePaths call
type pathSearch struct {
	graph  *causal.Graph
	opts   Options
	paths  [][]string
	onPath map[string]bool
}

// walk extends the current simple path with id. seen is a bitmask of
// categories already touched on the path.
func (s *pathSearch) walk(id string, path []string, seen uint8) {
	if len(s.paths) >= s.opts.MaxPaths || len(path) >= s.opts.MaxPathLength {
		return
	}
	node, ok := s.graph.Node(id)
	if !ok {
		return
	}
	if len(path) > 0 {
		prev, _ := s.graph.Node(path[len(path)-1])
		if node.Category < prev.Category {
			// An order-violating edge admitted by a permissive
			// transition table; never part of a complete path.
			return
		}
	}

	path = append(path, id)
	seen |= 1 << uint(node.Category)
	s.onPath[id] = true
	defer func() { s.onPath[id] = false }()

	const allCategories = 1<<5 - 1
	if node.Category == causal.Impact && seen == allCategories {
		s.paths = append(s.paths, append([]string(nil), path...))
		return
	}

	next := s.graph.OutNeighbors(id)
	sort.Strings(next)
	for _, n := range next {
		if s.onPath[n] {
			continue
		}
		s.walk(n, path, seen)
	}
}

// Validate runs the full structural check. The graph is valid when no
// forward edge violates the causal order, every category is
// instantiated, and at least one complete path exists.
func (v *Validator) Validate(g *causal.Graph) *Result {
	result := &Result{
		OrderViolations:   v.OrderViolations(g),
		CompletePaths:     v.CompletePaths(g),
		MissingCategories: v.MissingCategories(g),
		CheckedAt:         time.Now(),
	}
	result.Valid = len(result.OrderViolations) == 0 &&
		len(result.MissingCategories) == 0 &&
		len(result.CompletePaths) > 0
	result.Suggestions = Suggestions(result)
	return result
}

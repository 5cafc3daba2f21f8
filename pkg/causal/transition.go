package causal

// TransitionTable is the data-driven legality matrix for edges between
// causal categories. Keeping legality in a table rather than branching
// logic means alternate category schemes can be exercised in tests by
// constructing a different table, without touching the builder.
type TransitionTable struct {
	allowed [numCategories][numCategories]bool
}

// DefaultTransitions returns the standard legality table: an edge may go
// from a category to the same or any later category. Backward edges are
// never legal here; they must be declared as feedback edges instead.
func DefaultTransitions() *TransitionTable {
	t := &TransitionTable{}
	for _, from := range Categories() {
		for _, to := range Categories() {
			if from <= to {
				t.allowed[from][to] = true
			}
		}
	}
	return t
}

// PermissiveTransitions returns a table where every category pair is
// legal. Useful for assembling graphs whose order violations are to be
// diagnosed downstream rather than rejected at insertion.
func PermissiveTransitions() *TransitionTable {
	t := &TransitionTable{}
	for _, from := range Categories() {
		for _, to := range Categories() {
			t.allowed[from][to] = true
		}
	}
	return t
}

// NewTransitionTable builds a table from an explicit rule set mapping
// each source category to its allowed target categories. Pairs not
// listed are illegal.
func NewTransitionTable(rules map[Category][]Category) *TransitionTable {
	t := &TransitionTable{}
	for from, targets := range rules {
		if !from.IsValid() {
			continue
		}
		for _, to := range targets {
			if to.IsValid() {
				t.allowed[from][to] = true
			}
		}
	}
	return t
}

// Legal reports whether an edge from one category to another is allowed
func (t *TransitionTable) Legal(from, to Category) bool {
	if !from.IsValid() || !to.IsValid() {
		return false
	}
	return t.allowed[from][to]
}

package causal

// Node is a single element of a theory-of-change model: an activity,
// deliverable, or outcome classified into one causal category.
type Node struct {
	ID         string
	Category   Category
	Attributes map[string]any
}

// Edge is a directed causal claim between two nodes. Feedback marks a
// declared backward edge; feedback edges are tracked separately from
// the forward edges used in primary path search.
type Edge struct {
	Source   string
	Target   string
	Feedback bool
}

// Key returns the canonical "source->target" form of the edge, used as
// a stable map key in sensitivity reports.
func (e Edge) Key() string {
	return e.Source + "->" + e.Target
}

// NodeDecl is an externally supplied node declaration, as produced by
// the upstream extraction layer.
type NodeDecl struct {
	ID         string
	Category   Category
	Attributes map[string]any
}

// EdgeDecl is an externally supplied edge declaration
type EdgeDecl struct {
	Source   string
	Target   string
	Feedback bool
}

package causal

import "fmt"

// Builder assembles a causal graph from node and edge declarations,
// enforcing categorical transition legality at insertion time. A zero
// Builder is not usable; construct one with NewBuilder.
type Builder struct {
	nodes       map[string]Node
	nodeOrder   []string
	forward     []Edge
	feedback    []Edge
	transitions *TransitionTable
}

// NewBuilder creates a builder using the default transition table.
func NewBuilder() *Builder {
	return NewBuilderWithTransitions(DefaultTransitions())
}

// NewBuilderWithTransitions creates a builder whose edge legality is
// decided by the supplied table. A nil table falls back to the default.
func NewBuilderWithTransitions(t *TransitionTable) *Builder {
	if t == nil {
		t = DefaultTransitions()
	}
	return &Builder{
		nodes:       make(map[string]Node),
		transitions: t,
	}
}

// AddNode registers a node. Fails with ErrDuplicateNode if the ID is
// already present.
func (b *Builder) AddNode(id string, category Category, attributes map[string]any) error {
	if !category.IsValid() {
		return &GraphError{Op: "AddNode", NodeID: id, Cause: ErrInvalidCategory,
			Context: fmt.Sprintf("category %d", int(category))}
	}
	if _, exists := b.nodes[id]; exists {
		return duplicateNodeError(id)
	}
	b.nodes[id] = Node{ID: id, Category: category, Attributes: attributes}
	b.nodeOrder = append(b.nodeOrder, id)
	return nil
}

// AddEdge registers a forward causal edge. Both endpoints must already
// exist, self-loops are rejected, and the category transition must be
// legal per the builder's transition table.
func (b *Builder) AddEdge(source, target string) error {
	src, dst, err := b.endpoints("AddEdge", source, target)
	if err != nil {
		return err
	}
	if source == target {
		return invalidConnectionError("AddEdge", source, target, "self-loop")
	}
	if !b.transitions.Legal(src.Category, dst.Category) {
		return invalidConnectionError("AddEdge", source, target,
			fmt.Sprintf("transition %s -> %s is not legal", src.Category, dst.Category))
	}
	b.forward = append(b.forward, Edge{Source: source, Target: target})
	return nil
}

// AddFeedbackEdge registers a declared backward edge. Feedback edges
// must actually go backward in category order; they are recorded
// outside the primary forward set.
func (b *Builder) AddFeedbackEdge(source, target string) error {
	src, dst, err := b.endpoints("AddFeedbackEdge", source, target)
	if err != nil {
		return err
	}
	if source == target {
		return invalidConnectionError("AddFeedbackEdge", source, target, "self-loop")
	}
	if src.Category <= dst.Category {
		return invalidConnectionError("AddFeedbackEdge", source, target,
			fmt.Sprintf("transition %s -> %s is not backward", src.Category, dst.Category))
	}
	b.feedback = append(b.feedback, Edge{Source: source, Target: target, Feedback: true})
	return nil
}

func (b *Builder) endpoints(op, source, target string) (Node, Node, error) {
	src, ok := b.nodes[source]
	if !ok {
		return Node{}, Node{}, unknownNodeError(op, source, target, source)
	}
	dst, ok := b.nodes[target]
	if !ok {
		return Node{}, Node{}, unknownNodeError(op, source, target, target)
	}
	return src, dst, nil
}

// Build returns an immutable snapshot of the accumulated graph. The
// builder may keep accepting declarations afterwards; the snapshot is
// unaffected.
func (b *Builder) Build() *Graph {
	return newGraph(b.nodes, b.nodeOrder, b.forward, b.feedback)
}

// BuildGraph assembles a graph directly from declaration slices, the
// form in which the upstream extraction layer hands over a plan. The
// first illegal declaration aborts construction.
func BuildGraph(nodes []NodeDecl, edges []EdgeDecl) (*Graph, error) {
	return BuildGraphWithTransitions(nodes, edges, nil)
}

// BuildGraphWithTransitions is BuildGraph with an explicit transition
// table (nil means the default table).
func BuildGraphWithTransitions(nodes []NodeDecl, edges []EdgeDecl, t *TransitionTable) (*Graph, error) {
	b := NewBuilderWithTransitions(t)
	for _, n := range nodes {
		if err := b.AddNode(n.ID, n.Category, n.Attributes); err != nil {
			return nil, err
		}
	}
	for _, e := range edges {
		var err error
		if e.Feedback {
			err = b.AddFeedbackEdge(e.Source, e.Target)
		} else {
			err = b.AddEdge(e.Source, e.Target)
		}
		if err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

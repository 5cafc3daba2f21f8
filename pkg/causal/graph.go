package causal

// Graph is an immutable snapshot of a causal model. It is built once
// per plan evaluation and never mutated afterwards, so it is safe for
// concurrent read-only access by multiple estimation calls.
type Graph struct {
	nodes     map[string]Node
	nodeOrder []string // insertion order, for deterministic iteration
	forward   []Edge
	feedback  []Edge
	out       map[string][]string // forward adjacency
}

func newGraph(nodes map[string]Node, nodeOrder []string, forward, feedback []Edge) *Graph {
	g := &Graph{
		nodes:     make(map[string]Node, len(nodes)),
		nodeOrder: append([]string(nil), nodeOrder...),
		forward:   append([]Edge(nil), forward...),
		feedback:  append([]Edge(nil), feedback...),
		out:       make(map[string][]string),
	}
	for id, n := range nodes {
		g.nodes[id] = n
	}
	for _, e := range g.forward {
		g.out[e.Source] = append(g.out[e.Source], e.Target)
	}
	return g
}

// Node returns the node with the given ID, if present.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// NodeIDs returns all node IDs in insertion order.
func (g *Graph) NodeIDs() []string {
	return append([]string(nil), g.nodeOrder...)
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges, feedback included.
func (g *Graph) EdgeCount() int {
	return len(g.forward) + len(g.feedback)
}

// ForwardEdges returns the forward edges in insertion order.
func (g *Graph) ForwardEdges() []Edge {
	return append([]Edge(nil), g.forward...)
}

// FeedbackEdges returns the declared feedback edges in insertion order.
func (g *Graph) FeedbackEdges() []Edge {
	return append([]Edge(nil), g.feedback...)
}

// AllEdges returns forward edges followed by feedback edges. The order
// is deterministic, which downstream sampling relies on for replay.
func (g *Graph) AllEdges() []Edge {
	all := make([]Edge, 0, len(g.forward)+len(g.feedback))
	all = append(all, g.forward...)
	all = append(all, g.feedback...)
	return all
}

// OutNeighbors returns the forward-edge successors of a node.
func (g *Graph) OutNeighbors(id string) []string {
	return append([]string(nil), g.out[id]...)
}

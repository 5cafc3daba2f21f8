package montecarlo

// isAcyclic tests a candidate subgraph for acyclicity using Kahn's
// algorithm: repeatedly strip nodes with zero remaining in-degree; the
// graph is acyclic iff every node is eventually stripped.
func isAcyclic(ids []string, adj map[string][]string, indegree map[string]int) bool {
	queue := make([]string, 0, len(ids))
	for _, id := range ids {
		if indegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	stripped := 0
	for len(queue) > 0 {
		id := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		stripped++

		for _, next := range adj[id] {
			indegree[next]--
			if indegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	return stripped == len(ids)
}

// File: methods_clone.go
// Role: Cloning and induced views.
// Determinism:
//   - Copies carry edge IDs, insertion order and nextEdgeID of the source.
// Concurrency:
//   - Read locks on the source; the result is a fresh graph instance.

package core

// Clone returns a deep copy of the Graph: mode, vertices, edges and adjacency.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return g.copyWhere(func(string) bool { return true })
}

// InducedSubgraph returns a new Graph containing only the vertices with
// keep[id] == true and the edges whose endpoints are both kept.
// The input graph is not mutated.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	return g.copyWhere(func(id string) bool { return keep[id] })
}

func (g *Graph) copyWhere(keep func(id string) bool) *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := NewGraph(WithDirected(g.directed))
	for id := range g.vertices {
		if !keep(id) {
			continue
		}
		out.vertices[id] = &Vertex{ID: id}
		out.adjacency[id] = make(map[string]string)
	}
	for eid, e := range g.edges {
		if !keep(e.From) || !keep(e.To) {
			continue
		}
		cp := *e
		out.edges[eid] = &cp
		out.adjacency[e.From][e.To] = eid
		if !e.Directed {
			out.adjacency[e.To][e.From] = eid
		}
	}
	// Carry the counter forward so later AddEdge calls cannot reuse an ID.
	out.nextEdgeID = g.nextEdgeID

	return out
}

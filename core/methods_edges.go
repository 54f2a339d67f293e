// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edge IDs are "e<seq>" with seq strictly increasing per graph.
//   - Edges() enumerates in insertion order.
package core

import (
	"fmt"
	"sort"
)

const edgeIDPrefix = "e"

// AddEdge creates a new edge from 'from' to 'to' and returns its ID.
// Missing endpoints are created. Undirected edges are mirrored in adjacency.
//
// Returns ErrEmptyVertexID, ErrLoopNotAllowed or ErrDuplicateEdge.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}
	// 2) Ensure both endpoints exist (idempotent)
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// 3) Simple-graph guard; for undirected graphs the mirror covers to→from.
	if _, exists := g.adjacency[from][to]; exists {
		return "", ErrDuplicateEdge
	}

	g.nextEdgeID++
	e := &Edge{
		ID:       fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeID),
		From:     from,
		To:       to,
		Directed: g.directed,
		seq:      g.nextEdgeID,
	}
	g.edges[e.ID] = e
	g.adjacency[from][to] = e.ID
	if !e.Directed {
		g.adjacency[to][from] = e.ID
	}

	return e.ID, nil
}

// HasEdge reports whether an edge from 'from' to 'to' exists
// (either orientation for undirected graphs).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Edges returns all edges in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortBySeq(out)

	return out
}

// EdgeCount returns the number of edges (an undirected edge counts once).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

func sortBySeq(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
}

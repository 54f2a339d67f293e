// Package core provides the thread-safe in-memory Graph used to carry the
// combinatorial output of galois: the cycle graph of a unit group (undirected)
// and the Hasse diagram of its subgroup lattice (directed).
//
// The Graph G = (V,E) is deliberately small:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Simple graphs only: no self-loops, no parallel edges
//   - Constant-time edge lookups via nested maps: adjacency[from][to] = edgeID
//   - Collision-free Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Determinism:
//
//	Vertices() and NeighborIDs() return IDs sorted lexicographically.
//	Edges() and Neighbors() return edges in insertion order, so two graphs
//	built by the same sequence of AddEdge calls enumerate identically.
//
// Core Methods:
//
//	AddVertex(id string) error                   // O(1), idempotent
//	HasVertex(id string) bool                    // O(1)
//	AddEdge(from, to string) (string, error)     // O(1)
//	HasEdge(from, to string) bool                // O(1)
//	Neighbors(id string) ([]*Edge, error)        // O(d·log d)
//	NeighborIDs(id string) ([]string, error)     // O(d·log d)
//	Degree(id string) (int, error)               // O(1)
//	Vertices() []string                          // O(V·log V)
//	Edges() []*Edge                              // O(E·log E)
//	Clone() *Graph                               // O(V+E)
//	InducedSubgraph(g, keep) *Graph              // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID   – zero-length vertex ID
//	ErrVertexNotFound  – missing vertex
//	ErrLoopNotAllowed  – self-loop (from == to)
//	ErrDuplicateEdge   – second edge between the same endpoints
package core

// Package dfs implements depth‑first algorithms on a core.Graph:
//
//   - TopologicalSort: linear ordering of a DAG such that for every arc u→v,
//     u precedes v. Ties are broken by the sorted vertex enumeration of core,
//     so the ordering is deterministic. Returns ErrCycleDetected on cycles.
//   - DetectCycles: enumerates the simple cycles closed by back-edges, each
//     reported once in canonical form (minimal rotation, and for undirected
//     graphs also minimal direction), sorted for deterministic output.
//
// Both use the White/Gray/Black colouring and honour context cancellation.
//
// Complexity:
//
//   - TopologicalSort: Time O(V+E), Memory O(V)
//   - DetectCycles:    Time O(V+E+C·L), Memory O(V+L_max)
//
// Errors:
//
//   - ErrGraphNil       graph pointer is nil
//   - ErrCycleDetected  cycle discovered by TopologicalSort
//   - ErrNeighborFetch  neighbour lookup failed
//   - context errors    when the supplied context is done
package dfs

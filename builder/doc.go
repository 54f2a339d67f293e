// Package builder assembles core.Graph values from deterministic constructors.
//
// A Constructor is a closure over its parameters that mutates a graph using a
// resolved builderConfig. BuildGraph creates the graph, resolves options and
// applies constructors in order, so identical inputs always yield identical
// graphs (same vertex IDs, same edge IDs, same enumeration order).
//
// Constructors:
//
//   - Vertices(idx): isolated vertices, added in the given order.
//   - Ring(idx):     a closed walk idx[0]→idx[1]→…→idx[0]. Rings of length 1
//     add a single vertex; rings of length 2 add one edge. Edges already present
//     are skipped, so rings sharing vertices merge instead of duplicating.
//   - Arcs(pairs):   explicit edges pairs[i][0]→pairs[i][1].
//
// Vertex IDs come from an IDFn (index → string), decimal by default.
//
// Errors:
//
//	ErrTooFewVertices  – empty ring
//	ErrConstructFailed – nil constructor or a core rejection
package builder

// Package galois computes the structure of the Galois group of the n-th
// cyclotomic field Q(ζn) over Q, which is the unit group (Z/nZ)×.
//
// 🚀 What you get for a modulus n:
//
//   - the order φ(n) and the decomposition of (Z/nZ)× into cyclic factors,
//     including the 2-power exception C2 × C_{2^(k-2)};
//   - the complete subgroup lattice with its covering relation;
//   - the cycle graph: every maximal cycle, all sharing the identity.
//
// Everything is organized under these subpackages:
//
//	units/      - the group model: factors, generators, invariant factors
//	lattice/    - subgroup enumeration, Hasse diagram, Möbius function
//	cyclegraph/ - maximal cycles and the cycle graph
//	layout/     - boundary for an external planar layout engine
//	cyclotomic/ - Compute / ComputeMany entry points
//	config/     - YAML limits, output and logging settings
//	core/       - thread-safe graph storage (vertices, edges, adjacency)
//	builder/    - deterministic constructors (Vertices, Arcs, Ring)
//	bfs/, dfs/  - traversals, topological order and cycle detection
//
// Quick ASCII example, the cycle graph of (Z/8Z)× ≅ C2 × C2:
//
//	    3
//	    │
//	5───1───7
//
// The CLI lives in cmd/galois:
//
//	go install github.com/katalvlaran/galois/cmd/galois@latest
//	galois report 5 8 15
package galois

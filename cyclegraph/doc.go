// Package cyclegraph builds the cycle graph of a unit group (Z/nZ)×.
//
// The cycle graph has one node per group element. For every maximal cyclic
// subgroup ⟨g⟩ (one not strictly contained in another cyclic subgroup) the
// cycle e → g → g² → … → g^(k-1) → e is added; all cycles share the identity.
// A 2-cycle collapses to the single edge e–g and the trivial group is one
// isolated node.
//
// Each maximal cyclic subgroup is named by its canonical generator, the
// smallest residue generating it, and cycles are emitted in ascending
// generator order so the result does not depend on iteration order.
//
// Cycles may share non-identity elements: in C2 × C4 (n = 15) the element 4
// lies on both 4-cycles.
package cyclegraph

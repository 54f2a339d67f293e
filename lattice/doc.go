// Package lattice enumerates the subgroup lattice of a unit group (Z/nZ)×.
//
// Every subgroup is materialized as a sorted element set. Subgroups are
// ordered by (order, elements) and receive an Index among subgroups of the
// same order, giving stable identifiers of the form "H<order>.<index>".
//
// Two enumeration strategies are used:
//
//   - cyclic groups of order m have exactly one subgroup per divisor d of m,
//     generated by gen^(m/d);
//   - otherwise an arena of bitsets, keyed by the canonical element set, is
//     grown from the trivial subgroup by joining every discovered subgroup
//     with every cyclic subgroup ⟨x⟩ until nothing new appears. Since the
//     group is abelian the join HK is just the product set. The cost grows
//     exponentially with the number of non-cyclic direct factors, so the
//     enumeration is bounded by WithMaxOrder and WithMaxSubgroups.
//
// The covering relation is H ⋖ K iff H ⊂ K and [K:H] is prime, which holds
// for finite abelian groups. The Hasse diagram is exposed as a directed
// core.Graph, edges pointing from the smaller to the larger subgroup.
package lattice

package lattice

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/galois/dfs"
	"github.com/katalvlaran/galois/units"
)

// Validate re-checks the lattice invariants and reports every violation:
//   - a unique bottom (the trivial subgroup) and a unique top (the group);
//   - every member set contains the identity and is closed under products;
//   - labels are consistent with the (order, index) ordering;
//   - every covering pair has prime index and the Hasse diagram is acyclic;
//   - the subgroup count matches d(φ) for cyclic groups and the Goursat count
//     for groups with two invariant factors.
//
// Closure is checked exhaustively, costing O(Σ|H|²).
func (l *Lattice) Validate() error {
	var result *multierror.Error
	g := l.group
	n := len(l.subs)
	if n == 0 {
		return fmt.Errorf("lattice: Validate: empty lattice: %w", ErrUnsupported)
	}

	if l.subs[0].Order != 1 {
		result = multierror.Append(result, fmt.Errorf("bottom %s is not trivial", l.subs[0].ID))
	}
	if l.subs[n-1].Order != g.Order() {
		result = multierror.Append(result, fmt.Errorf("top %s has order %d, want %d", l.subs[n-1].ID, l.subs[n-1].Order, g.Order()))
	}

	ids := make(map[string]bool, n)
	for i, s := range l.subs {
		if ids[s.ID] {
			result = multierror.Append(result, fmt.Errorf("duplicate id %s", s.ID))
		}
		ids[s.ID] = true
		if want := fmt.Sprintf("H%d.%d", s.Order, s.Index); s.ID != want {
			result = multierror.Append(result, fmt.Errorf("subgroup %d: id %s, want %s", i, s.ID, want))
		}
		if len(s.Elements) != s.Order || g.Order()%s.Order != 0 {
			result = multierror.Append(result, fmt.Errorf("%s: %d elements, order %d", s.ID, len(s.Elements), s.Order))
		}
		if err := l.checkClosed(i); err != nil {
			result = multierror.Append(result, err)
		}
		if i != 0 && len(l.below[i]) == 0 {
			result = multierror.Append(result, fmt.Errorf("%s: second minimal element", s.ID))
		}
		if i != n-1 && len(l.above[i]) == 0 {
			result = multierror.Append(result, fmt.Errorf("%s: second maximal element", s.ID))
		}
	}

	for _, e := range l.edges {
		from, to := l.subs[e.From], l.subs[e.To]
		if to.Order%from.Order != 0 || !units.IsPrime(to.Order/from.Order) {
			result = multierror.Append(result, fmt.Errorf("cover %s ⋖ %s: index not prime", from.ID, to.ID))
		}
	}
	if has, cycles, err := dfs.DetectCycles(l.hasse); err != nil {
		result = multierror.Append(result, err)
	} else if has {
		result = multierror.Append(result, fmt.Errorf("hasse diagram has %d cycles", len(cycles)))
	}

	inv := g.InvariantFactors()
	switch {
	case len(inv) <= 1:
		if want := len(units.Divisors(g.Order())); n != want {
			result = multierror.Append(result, fmt.Errorf("cyclic group: %d subgroups, want %d", n, want))
		}
	case len(inv) == 2:
		if want := ProductSubgroupCount(inv[0], inv[1]); n != want {
			result = multierror.Append(result, fmt.Errorf("C%d x C%d: %d subgroups, want %d", inv[0], inv[1], n, want))
		}
	}

	return result.ErrorOrNil()
}

func (l *Lattice) checkClosed(i int) error {
	g := l.group
	s := l.subs[i]
	set := l.sets[i]
	if p := g.Index(g.Identity()); p < 0 || !set.has(p) {
		return fmt.Errorf("%s: identity missing", s.ID)
	}
	for _, a := range s.Elements {
		for _, b := range s.Elements {
			p := g.Index(g.Mul(a, b))
			if p < 0 || !set.has(p) {
				return fmt.Errorf("%s: %d*%d not in subgroup", s.ID, a, b)
			}
		}
	}

	return nil
}

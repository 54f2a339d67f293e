package lattice

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/galois/units"
)

// space holds the element table shared by both enumeration strategies.
type space struct {
	g   *units.Group
	els []int
}

func (s space) singleton(x int) bitset {
	b := newBitset(len(s.els))
	b.set(s.g.Index(x))

	return b
}

// cyclic returns ⟨x⟩.
func (s space) cyclic(x int) bitset {
	b := newBitset(len(s.els))
	id := s.g.Identity()
	y := id
	for {
		b.set(s.g.Index(y))
		y = s.g.Mul(y, x)
		if y == id {
			return b
		}
	}
}

// product returns the set {a·c : a ∈ A, c ∈ C}, a subgroup when A and C are.
func (s space) product(a, c bitset) bitset {
	out := newBitset(len(s.els))
	cs := c.members()
	for _, i := range a.members() {
		for _, j := range cs {
			out.set(s.g.Index(s.g.Mul(s.els[i], s.els[j])))
		}
	}

	return out
}

// enumerateCyclic lists the subgroups of a cyclic group, one per divisor.
func enumerateCyclic(s space, o options) ([]bitset, error) {
	m := len(s.els)
	if m == 1 {
		return []bitset{s.singleton(s.g.Identity())}, nil
	}

	gens := s.g.Generators()
	if len(gens) != 1 {
		return nil, fmt.Errorf("lattice: enumerateCyclic: %d generators for cyclic group: %w", len(gens), ErrUnsupported)
	}
	gen := gens[0]
	if s.g.ElementOrder(gen) != m {
		return nil, fmt.Errorf("lattice: enumerateCyclic: generator %d has order %d, want %d: %w",
			gen, s.g.ElementOrder(gen), m, ErrUnsupported)
	}

	divs := units.Divisors(m)
	if o.maxSubgroups > 0 && len(divs) > o.maxSubgroups {
		return nil, fmt.Errorf("lattice: enumerateCyclic: %d subgroups > %d: %w", len(divs), o.maxSubgroups, ErrTooLarge)
	}
	out := make([]bitset, 0, len(divs))
	for _, d := range divs {
		out = append(out, s.cyclic(s.g.Pow(gen, m/d)))
	}

	return out, nil
}

// enumerateGeneric grows an arena of subgroups from the trivial one by joining
// with every cyclic subgroup until closure.
func enumerateGeneric(s space, o options) ([]bitset, error) {
	var cyclics []bitset
	seen := make(map[string]struct{})
	for _, x := range s.els {
		c := s.cyclic(x)
		k := c.key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		cyclics = append(cyclics, c)
	}

	arena := []bitset{s.singleton(s.g.Identity())}
	index := map[string]int{arena[0].key(): 0}
	round := 0
	for i := 0; i < len(arena); i++ {
		if err := o.ctx.Err(); err != nil {
			return nil, err
		}
		h := arena[i]
		for _, c := range cyclics {
			if c.subsetOf(h) {
				continue
			}
			j := s.product(h, c)
			k := j.key()
			if _, ok := index[k]; ok {
				continue
			}
			if o.maxSubgroups > 0 && len(arena) >= o.maxSubgroups {
				return nil, fmt.Errorf("lattice: enumerateGeneric: more than %d subgroups: %w", o.maxSubgroups, ErrTooLarge)
			}
			index[k] = len(arena)
			arena = append(arena, j)
		}
		round++
	}
	o.logger.Debug("generic enumeration finished",
		zap.Int("cyclic_subgroups", len(cyclics)),
		zap.Int("subgroups", len(arena)),
		zap.Int("rounds", round))

	return arena, nil
}

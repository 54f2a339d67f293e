// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/galois/builder"
	"github.com/katalvlaran/galois/core"
	"github.com/katalvlaran/galois/units"
)

// Subgroup is one node of the lattice.
type Subgroup struct {
	// ID is "H<order>.<index>".
	ID    string
	Order int
	// Index distinguishes subgroups of equal order, starting at 0.
	Index int
	// Elements are the member residues in ascending order.
	Elements []int
	Cyclic   bool
	// Generator is the smallest residue generating the subgroup, when Cyclic.
	Generator int
}

// Edge is a covering pair: subgroup From is maximal in subgroup To.
type Edge struct {
	From, To int
}

// Lattice is the immutable subgroup lattice of a unit group.
type Lattice struct {
	group *units.Group
	els   []int
	subs  []Subgroup
	sets  []bitset
	index map[string]int
	below [][]int // below[i]: subgroups covered by i
	above [][]int // above[i]: subgroups covering i
	edges []Edge
	hasse *core.Graph
}

// Build enumerates all subgroups of g and their covering relation.
//
// Errors: ErrUnsupported for a nil or inconsistent group, ErrTooLarge when
// the order or the subgroup count exceeds the limits, or ctx errors.
func Build(g *units.Group, opts ...Option) (*Lattice, error) {
	if g == nil {
		return nil, fmt.Errorf("lattice: Build: nil group: %w", ErrUnsupported)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxOrder > 0 && g.Order() > o.maxOrder {
		return nil, fmt.Errorf("lattice: Build: order %d > %d: %w", g.Order(), o.maxOrder, ErrTooLarge)
	}

	s := space{g: g, els: g.Elements()}
	var (
		sets []bitset
		err  error
	)
	fast := g.IsCyclic() && !o.generic
	if fast {
		sets, err = enumerateCyclic(s, o)
	} else {
		sets, err = enumerateGeneric(s, o)
	}
	if err != nil {
		return nil, err
	}

	l := newLattice(s, sets)
	if err = l.link(); err != nil {
		return nil, err
	}
	o.logger.Debug("subgroup lattice built",
		zap.Int("modulus", g.Modulus()),
		zap.Int("order", g.Order()),
		zap.Bool("cyclic_path", fast),
		zap.Int("subgroups", len(l.subs)),
		zap.Int("covers", len(l.edges)))

	return l, nil
}

// newLattice sorts the raw sets by (order, elements) and labels them.
func newLattice(s space, sets []bitset) *Lattice {
	type entry struct {
		set bitset
		els []int
	}
	entries := make([]entry, len(sets))
	for i, b := range sets {
		pos := b.members()
		res := make([]int, len(pos))
		for j, p := range pos {
			res[j] = s.els[p]
		}
		entries[i] = entry{set: b, els: res}
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].els, entries[j].els
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}

		return false
	})

	l := &Lattice{
		group: s.g,
		els:   s.els,
		subs:  make([]Subgroup, len(entries)),
		sets:  make([]bitset, len(entries)),
		index: make(map[string]int, len(entries)),
	}
	idx := 0
	for i, e := range entries {
		if i > 0 && len(entries[i-1].els) != len(e.els) {
			idx = 0
		}
		sub := Subgroup{
			ID:       fmt.Sprintf("H%d.%d", len(e.els), idx),
			Order:    len(e.els),
			Index:    idx,
			Elements: e.els,
		}
		for _, x := range e.els {
			if s.g.ElementOrder(x) == sub.Order {
				sub.Cyclic, sub.Generator = true, x
				break
			}
		}
		l.subs[i] = sub
		l.sets[i] = e.set
		l.index[e.set.key()] = i
		idx++
	}

	return l
}

// link computes covering pairs and the Hasse diagram.
func (l *Lattice) link() error {
	n := len(l.subs)
	l.below = make([][]int, n)
	l.above = make([][]int, n)

	byOrder := make(map[int][]int)
	for i, s := range l.subs {
		byOrder[s.Order] = append(byOrder[s.Order], i)
	}
	top := l.group.Order()
	for i, s := range l.subs {
		for _, p := range units.Divisors(top / s.Order) {
			if !units.IsPrime(p) {
				continue
			}
			for _, j := range byOrder[s.Order*p] {
				if l.sets[i].subsetOf(l.sets[j]) {
					l.edges = append(l.edges, Edge{From: i, To: j})
					l.above[i] = append(l.above[i], j)
					l.below[j] = append(l.below[j], i)
				}
			}
		}
	}
	sort.Slice(l.edges, func(a, b int) bool {
		if l.edges[a].From != l.edges[b].From {
			return l.edges[a].From < l.edges[b].From
		}
		return l.edges[a].To < l.edges[b].To
	})
	for i := range l.subs {
		sort.Ints(l.above[i])
		sort.Ints(l.below[i])
	}

	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	arcs := make([][2]int, len(l.edges))
	for i, e := range l.edges {
		arcs[i] = [2]int{e.From, e.To}
	}
	hasse, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true)},
		[]builder.BuilderOption{builder.WithIDScheme(func(i int) string { return l.subs[i].ID })},
		builder.Vertices(all),
		builder.Arcs(arcs),
	)
	if err != nil {
		return fmt.Errorf("lattice: Hasse diagram: %w", err)
	}
	l.hasse = hasse

	return nil
}

// Group returns the group the lattice was built from.
func (l *Lattice) Group() *units.Group { return l.group }

// Len returns the number of subgroups.
func (l *Lattice) Len() int { return len(l.subs) }

// Subgroups returns all subgroups sorted by (order, elements).
func (l *Lattice) Subgroups() []Subgroup {
	out := make([]Subgroup, len(l.subs))
	for i := range l.subs {
		out[i] = l.subs[i].clone()
	}

	return out
}

// Subgroup returns the i-th subgroup.
func (l *Lattice) Subgroup(i int) (Subgroup, error) {
	if !l.valid(i) {
		return Subgroup{}, fmt.Errorf("lattice: Subgroup(%d): %w", i, ErrIndexOutOfRange)
	}

	return l.subs[i].clone(), nil
}

// Bottom returns the index of the trivial subgroup.
func (l *Lattice) Bottom() int { return 0 }

// Top returns the index of the whole group.
func (l *Lattice) Top() int { return len(l.subs) - 1 }

// Covers returns the subgroups that i covers (its maximal proper subgroups).
func (l *Lattice) Covers(i int) []int {
	if !l.valid(i) {
		return nil
	}

	return append([]int(nil), l.below[i]...)
}

// CoveredBy returns the subgroups covering i (minimal proper supergroups).
func (l *Lattice) CoveredBy(i int) []int {
	if !l.valid(i) {
		return nil
	}

	return append([]int(nil), l.above[i]...)
}

// Edges returns every covering pair, sorted by (From, To).
func (l *Lattice) Edges() []Edge {
	return append([]Edge(nil), l.edges...)
}

// Contains reports whether subgroup i contains subgroup j.
func (l *Lattice) Contains(i, j int) bool {
	if !l.valid(i) || !l.valid(j) {
		return false
	}

	return l.sets[j].subsetOf(l.sets[i])
}

// Meet returns the index of the intersection of subgroups i and j.
func (l *Lattice) Meet(i, j int) (int, error) {
	if !l.valid(i) || !l.valid(j) {
		return -1, fmt.Errorf("lattice: Meet(%d, %d): %w", i, j, ErrIndexOutOfRange)
	}

	return l.lookup("Meet", l.sets[i].and(l.sets[j]))
}

// Join returns the index of the subgroup generated by subgroups i and j.
func (l *Lattice) Join(i, j int) (int, error) {
	if !l.valid(i) || !l.valid(j) {
		return -1, fmt.Errorf("lattice: Join(%d, %d): %w", i, j, ErrIndexOutOfRange)
	}
	s := space{g: l.group, els: l.els}

	return l.lookup("Join", s.product(l.sets[i], l.sets[j]))
}

// IndexOf returns the index of the subgroup with exactly the given elements.
func (l *Lattice) IndexOf(elements []int) (int, error) {
	b := newBitset(len(l.els))
	for _, x := range elements {
		p := l.group.Index(x)
		if p < 0 {
			return -1, fmt.Errorf("lattice: IndexOf: %d is not a unit: %w", x, ErrNotSubgroup)
		}
		b.set(p)
	}

	return l.lookup("IndexOf", b)
}

func (l *Lattice) lookup(method string, b bitset) (int, error) {
	i, ok := l.index[b.key()]
	if !ok {
		return -1, fmt.Errorf("lattice: %s: set of %d elements: %w", method, b.count(), ErrNotSubgroup)
	}

	return i, nil
}

func (l *Lattice) valid(i int) bool { return i >= 0 && i < len(l.subs) }

func (s Subgroup) clone() Subgroup {
	s.Elements = append([]int(nil), s.Elements...)
	return s
}

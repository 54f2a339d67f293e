// SPDX-License-Identifier: MIT

package cyclegraph

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/galois/builder"
	"github.com/katalvlaran/galois/core"
	"github.com/katalvlaran/galois/units"
)

// Cycle is the orbit of a maximal cyclic subgroup, starting at the identity.
type Cycle struct {
	Generator int
	// Elements is [e, g, g², …, g^(k-1)].
	Elements []int
}

// Len returns the cycle length, the order of its generator.
func (c Cycle) Len() int { return len(c.Elements) }

// Graph is the immutable cycle graph of a unit group.
type Graph struct {
	group  *units.Group
	nodes  []int
	cycles []Cycle
	edges  [][2]int
	core   *core.Graph
}

// Build computes the cycle graph of g.
//
// Errors: ErrUnsupported for a nil group, ErrTooLarge above WithMaxOrder.
func Build(g *units.Group, opts ...Option) (*Graph, error) {
	if g == nil {
		return nil, fmt.Errorf("cyclegraph: Build: nil group: %w", ErrUnsupported)
	}
	o := options{logger: zap.NewNop(), maxOrder: DefaultMaxOrder}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxOrder > 0 && g.Order() > o.maxOrder {
		return nil, fmt.Errorf("cyclegraph: Build: order %d > %d: %w", g.Order(), o.maxOrder, ErrTooLarge)
	}

	cg := &Graph{group: g, nodes: g.Elements()}
	cycles, err := maximalCycles(g, cg.nodes)
	if err != nil {
		return nil, err
	}
	cg.cycles = cycles

	cons := []builder.Constructor{builder.Vertices(cg.nodes)}
	seen := make(map[[2]int]bool)
	for _, c := range cycles {
		cons = append(cons, builder.Ring(c.Elements))
		k := len(c.Elements)
		if k < 2 {
			continue
		}
		for i := range c.Elements {
			a, b := c.Elements[i], c.Elements[(i+1)%k]
			if a > b {
				a, b = b, a
			}
			if e := [2]int{a, b}; !seen[e] {
				seen[e] = true
				cg.edges = append(cg.edges, e)
			}
		}
	}
	sort.Slice(cg.edges, func(i, j int) bool {
		if cg.edges[i][0] != cg.edges[j][0] {
			return cg.edges[i][0] < cg.edges[j][0]
		}
		return cg.edges[i][1] < cg.edges[j][1]
	})

	cg.core, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithIDScheme(builder.DecimalID)}, cons...)
	if err != nil {
		return nil, fmt.Errorf("cyclegraph: Build: %w", err)
	}
	o.logger.Debug("cycle graph built",
		zap.Int("modulus", g.Modulus()),
		zap.Int("nodes", len(cg.nodes)),
		zap.Int("faces", len(cg.cycles)),
		zap.Int("edges", len(cg.edges)))

	return cg, nil
}

// maximalCycles finds every maximal cyclic subgroup. Elements are visited by
// descending order, ties by ascending residue; an element not yet covered by
// a cycle generates a new maximal one, and is its smallest generator.
func maximalCycles(g *units.Group, els []int) ([]Cycle, error) {
	ord := make([]int, len(els))
	for i, x := range els {
		ord[i] = g.ElementOrder(x)
		if ord[i] < 1 {
			return nil, fmt.Errorf("cyclegraph: element %d has no order: %w", x, ErrUnsupported)
		}
	}
	visit := make([]int, len(els))
	for i := range visit {
		visit[i] = i
	}
	sort.SliceStable(visit, func(a, b int) bool { return ord[visit[a]] > ord[visit[b]] })

	covered := make([]bool, len(els))
	var out []Cycle
	for _, i := range visit {
		if covered[i] {
			continue
		}
		x := els[i]
		c := Cycle{Generator: x, Elements: make([]int, 0, ord[i])}
		for y, k := g.Identity(), 0; k < ord[i]; k++ {
			c.Elements = append(c.Elements, y)
			covered[g.Index(y)] = true
			y = g.Mul(y, x)
		}
		out = append(out, c)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Generator < out[b].Generator })

	return out, nil
}

// Group returns the group the graph was built from.
func (cg *Graph) Group() *units.Group { return cg.group }

// Identity returns the shared node of all cycles.
func (cg *Graph) Identity() int { return cg.group.Identity() }

// Nodes returns every element, ascending.
func (cg *Graph) Nodes() []int { return append([]int(nil), cg.nodes...) }

// NodeCount returns φ(n).
func (cg *Graph) NodeCount() int { return len(cg.nodes) }

// Edges returns the distinct edges as (smaller, larger) residue pairs, sorted.
func (cg *Graph) Edges() [][2]int { return append([][2]int(nil), cg.edges...) }

// EdgeCount returns the number of distinct edges.
func (cg *Graph) EdgeCount() int { return len(cg.edges) }

// Cycles returns the maximal cycles in ascending generator order.
func (cg *Graph) Cycles() []Cycle {
	out := make([]Cycle, len(cg.cycles))
	for i, c := range cg.cycles {
		out[i] = Cycle{Generator: c.Generator, Elements: append([]int(nil), c.Elements...)}
	}

	return out
}

// CyclesThrough returns the indices (into Cycles) of the cycles containing x.
func (cg *Graph) CyclesThrough(x int) []int {
	var out []int
	for i, c := range cg.cycles {
		for _, y := range c.Elements {
			if y == x {
				out = append(out, i)
				break
			}
		}
	}

	return out
}

// Core returns a copy of the graph as an undirected core.Graph whose vertex
// IDs are decimal residues.
func (cg *Graph) Core() *core.Graph { return cg.core.Clone() }

// Induced returns the subgraph of Core induced by the given residues, e.g.
// the part of the drawing lying inside one subgroup.
func (cg *Graph) Induced(residues []int) *core.Graph {
	keep := make(map[string]bool, len(residues))
	for _, x := range residues {
		keep[builder.DecimalID(x)] = true
	}

	return core.InducedSubgraph(cg.core, keep)
}

package dfs

import (
	"fmt"

	"github.com/katalvlaran/galois/core"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph
	opts  options
	state map[string]int
	order []string // post-order
}

// TopologicalSort computes a topological ordering of all vertices in g.
// Returns ErrGraphNil, ErrUndirected, ErrCycleDetected or ErrNeighborFetch.
func TopologicalSort(g *core.Graph, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirected
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	verts := g.Vertices()
	s := &topoSorter{
		graph: g,
		opts:  o,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	// Visit roots in reverse so that, after the final reversal, independent
	// vertices keep their ascending enumeration order.
	for i := len(verts) - 1; i >= 0; i-- {
		if s.state[verts[i]] == White {
			if err := s.visit(verts[i]); err != nil {
				return nil, err
			}
		}
	}
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

func (t *topoSorter) visit(id string) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	switch t.state[id] {
	case Gray:
		return fmt.Errorf("%w: back-edge into %q", ErrCycleDetected, id)
	case Black:
		return nil
	}
	t.state[id] = Gray

	nbrs, err := t.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	// Reverse neighbour order for the same reason as the roots above.
	for i := len(nbrs) - 1; i >= 0; i-- {
		if err = t.visit(nbrs[i]); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}

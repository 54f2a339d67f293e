package cyclegraph

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/galois/bfs"
	"github.com/katalvlaran/galois/builder"
	"github.com/katalvlaran/galois/dfs"
)

// Validate re-checks the structural invariants of the graph and returns all
// violations at once: node count φ(n), every cycle starting at the identity
// and closing back on it, every element on some cycle, connectivity from the
// identity within half the longest cycle, vertex degrees matching the faces
// and the agreement of Edges with the underlying core.Graph.
func (cg *Graph) Validate() error {
	var result *multierror.Error
	g := cg.group

	if cg.NodeCount() != g.Order() {
		result = multierror.Append(result, fmt.Errorf("%d nodes, want φ=%d", cg.NodeCount(), g.Order()))
	}
	if cg.core.VertexCount() != cg.NodeCount() {
		result = multierror.Append(result, fmt.Errorf("core has %d vertices, want %d", cg.core.VertexCount(), cg.NodeCount()))
	}
	if cg.core.EdgeCount() != cg.EdgeCount() {
		result = multierror.Append(result, fmt.Errorf("core has %d edges, want %d", cg.core.EdgeCount(), cg.EdgeCount()))
	}

	onCycle := make(map[int]bool, len(cg.nodes))
	long := false
	for _, c := range cg.cycles {
		if len(c.Elements) == 0 || c.Elements[0] != cg.Identity() {
			result = multierror.Append(result, fmt.Errorf("cycle of %d does not start at identity", c.Generator))
			continue
		}
		if g.ElementOrder(c.Generator) != len(c.Elements) {
			result = multierror.Append(result, fmt.Errorf("cycle of %d has length %d, order %d",
				c.Generator, len(c.Elements), g.ElementOrder(c.Generator)))
		}
		last := c.Elements[len(c.Elements)-1]
		if g.Mul(last, c.Generator) != cg.Identity() {
			result = multierror.Append(result, fmt.Errorf("cycle of %d does not close", c.Generator))
		}
		for _, x := range c.Elements {
			onCycle[x] = true
		}
		long = long || len(c.Elements) > 2
	}
	for _, x := range cg.nodes {
		if !onCycle[x] {
			result = multierror.Append(result, fmt.Errorf("element %d lies on no cycle", x))
		}
	}

	if err := cg.checkReach(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := cg.checkDegrees(); err != nil {
		result = multierror.Append(result, err)
	}

	has, _, err := dfs.DetectCycles(cg.core)
	if err != nil {
		result = multierror.Append(result, err)
	} else if has != long {
		result = multierror.Append(result, fmt.Errorf("core cycles=%t, faces longer than 2=%t", has, long))
	}

	return result.ErrorOrNil()
}

// checkReach walks the core graph from the identity. Every element of a
// cycle of length k is at most k/2 steps away, and every generator is
// adjacent to the identity.
func (cg *Graph) checkReach() error {
	id := builder.DecimalID(cg.Identity())
	depth := 0
	for _, c := range cg.cycles {
		if d := c.Len() / 2; d > depth {
			depth = d
		}
	}

	visited := 0
	opts := []bfs.Option{bfs.WithOnVisit(func(string, int) error {
		visited++
		return nil
	})}
	if depth > 0 {
		opts = append(opts, bfs.WithMaxDepth(depth))
	}
	res, err := bfs.BFS(cg.core, id, opts...)
	if err != nil {
		return err
	}
	if visited != cg.NodeCount() {
		return fmt.Errorf("%d of %d nodes within %d steps of identity", visited, cg.NodeCount(), depth)
	}
	for _, c := range cg.cycles {
		if c.Len() < 2 {
			continue
		}
		gen := builder.DecimalID(c.Generator)
		if !res.Reached(gen) {
			return fmt.Errorf("generator %d unreachable", c.Generator)
		}
		path, err := res.PathTo(gen)
		if err != nil {
			return err
		}
		if len(path) != 2 {
			return fmt.Errorf("generator %d is %d steps from identity", c.Generator, len(path)-1)
		}
	}

	return nil
}

// checkDegrees compares vertex degrees with the faces: the identity has two
// edges per cycle longer than 2 and one per 2-cycle, and the generator of a
// 2-cycle is a leaf.
func (cg *Graph) checkDegrees() error {
	want := 0
	for _, c := range cg.cycles {
		switch {
		case c.Len() > 2:
			want += 2
		case c.Len() == 2:
			want++
			nbrs, err := cg.core.Neighbors(builder.DecimalID(c.Generator))
			if err != nil {
				return err
			}
			if len(nbrs) != 1 {
				return fmt.Errorf("involution %d has %d edges, want 1", c.Generator, len(nbrs))
			}
		}
	}
	deg, err := cg.core.Degree(builder.DecimalID(cg.Identity()))
	if err != nil {
		return err
	}
	if deg != want {
		return fmt.Errorf("identity has degree %d, want %d", deg, want)
	}

	return nil
}

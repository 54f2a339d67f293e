// Package layout is the boundary to an external planar layout engine.
//
// No layout algorithm lives here; callers plug an Engine into
// cyclotomic.WithLayout. How non-planar cycle graphs should be drawn is not
// settled: engines report them with ErrNonPlanar.
package layout

import (
	"context"
	"errors"
	"sort"

	"github.com/katalvlaran/galois/cyclegraph"
)

// ErrNonPlanar is returned by an Engine when the graph has no planar drawing.
var ErrNonPlanar = errors.New("layout: graph is not planar")

// Point is a position in the plane.
type Point struct {
	X, Y float64
}

// Embedding maps every residue of a cycle graph to a position.
type Embedding struct {
	Positions map[int]Point
}

// Residues returns the embedded residues in ascending order.
func (e *Embedding) Residues() []int {
	out := make([]int, 0, len(e.Positions))
	for r := range e.Positions {
		out = append(out, r)
	}
	sort.Ints(out)

	return out
}

// Covers reports whether every node of cg has a position.
func (e *Embedding) Covers(cg *cyclegraph.Graph) bool {
	for _, x := range cg.Nodes() {
		if _, ok := e.Positions[x]; !ok {
			return false
		}
	}

	return true
}

// Engine computes a drawing of a cycle graph.
type Engine interface {
	Layout(ctx context.Context, cg *cyclegraph.Graph) (*Embedding, error)
}

// EngineFunc adapts a function to Engine.
type EngineFunc func(ctx context.Context, cg *cyclegraph.Graph) (*Embedding, error)

// Layout calls f.
func (f EngineFunc) Layout(ctx context.Context, cg *cyclegraph.Graph) (*Embedding, error) {
	return f(ctx, cg)
}

// SPDX-License-Identifier: MIT
// Package: galois/builder
//
// impl_vertices.go - isolated vertices and explicit arcs.
//
// Contract:
//   • Vertices adds IDs in the given order; existing vertices are kept.
//   • Arcs emits edges in the given order; core rejections are wrapped
//     with ErrConstructFailed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/galois/core"
)

const (
	methodVertices = "Vertices"
	methodArcs     = "Arcs"
)

// Vertices returns a Constructor that adds one vertex per index.
func Vertices(idx []int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for _, i := range idx {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %v: %w", methodVertices, id, err, ErrConstructFailed)
			}
		}

		return nil
	}
}

// Arcs returns a Constructor that adds the edge pairs[i][0]→pairs[i][1]
// for every i, in order.
func Arcs(pairs [][2]int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for _, p := range pairs {
			u, v := cfg.idFn(p[0]), cfg.idFn(p[1])
			if _, err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %v: %w", methodArcs, u, v, err, ErrConstructFailed)
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: galois/builder
//
// impl_ring.go - implementation of Ring(idx) constructor.
//
// Contract:
//   • len(idx) ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices in the given order, then edges idx[i] → idx[(i+1)%k].
//   • Degenerate rings: k = 1 adds only the vertex; k = 2 adds a single edge.
//   • An edge already present in g is skipped (rings merge on shared edges).
//
// Complexity:
//   • Time: O(k) vertices + O(k) edges.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/galois/core"
)

const (
	methodRing   = "Ring"
	minRingNodes = 1
)

// Ring returns a Constructor that closes the sequence idx into a cycle.
func Ring(idx []int) Constructor {
	// Copy so later mutation of the caller's slice cannot change the ring.
	members := append([]int(nil), idx...)

	return func(g *core.Graph, cfg builderConfig) error {
		k := len(members)
		if k < minRingNodes {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodRing, k, minRingNodes, ErrTooFewVertices)
		}

		if err := Vertices(members)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodRing, err)
		}
		if k == 1 {
			return nil
		}

		for i := 0; i < k; i++ {
			u, v := cfg.idFn(members[i]), cfg.idFn(members[(i+1)%k])
			if g.HasEdge(u, v) {
				continue // closing edge of a 2-ring, or an edge shared with an earlier ring
			}
			if _, err := g.AddEdge(u, v); err != nil && !errors.Is(err, core.ErrDuplicateEdge) {
				return fmt.Errorf("%s: AddEdge(%s→%s): %v: %w", methodRing, u, v, err, ErrConstructFailed)
			}
		}

		return nil
	}
}

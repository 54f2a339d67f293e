// SPDX-License-Identifier: MIT

package cyclotomic

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/galois/cyclegraph"
	"github.com/katalvlaran/galois/lattice"
	"github.com/katalvlaran/galois/layout"
	"github.com/katalvlaran/galois/units"
)

// Result gathers everything derived from one modulus.
type Result struct {
	Modulus int
	// Totient is φ(n), the order of the group.
	Totient    int
	Group      *units.Group
	Lattice    *lattice.Lattice  // nil with WithoutLattice
	CycleGraph *cyclegraph.Graph // nil with WithoutCycleGraph
	Embedding  *layout.Embedding // nil without WithLayout
}

// Compute derives the group, subgroup lattice and cycle graph of (Z/nZ)×.
//
// Errors: ErrInvalidInput for n < 1, ErrTooLarge when a limit is hit,
// ErrUnsupported when a stage rejects the group, or the layout engine's error.
func Compute(n int, opts ...Option) (*Result, error) {
	return compute(context.Background(), n, newOptions(opts))
}

// ComputeMany runs Compute for every modulus in ns, at most WithConcurrency at
// a time. Results keep the order of ns. The first failure cancels the
// remaining work and is returned without partial results.
func ComputeMany(ctx context.Context, ns []int, opts ...Option) ([]*Result, error) {
	o := newOptions(opts)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.concurrency)

	out := make([]*Result, len(ns))
	for i, n := range ns {
		i, n := i, n
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := compute(ctx, n, o)
			if err != nil {
				return err
			}
			out[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func compute(ctx context.Context, n int, o options) (*Result, error) {
	const method = "Compute"
	if n < 1 {
		return nil, fmt.Errorf("cyclotomic: %s(%d): %w", method, n, ErrInvalidInput)
	}
	if o.maxModulus > 0 && n > o.maxModulus {
		return nil, fmt.Errorf("cyclotomic: %s(%d): modulus above %d: %w", method, n, o.maxModulus, ErrTooLarge)
	}

	log := o.logger.With(zap.Int("modulus", n))
	g, err := units.Decompose(n)
	if err != nil {
		return nil, classify(method, n, err)
	}
	log.Debug("group decomposed",
		zap.Int("order", g.Order()),
		zap.Stringer("structure", g),
		zap.Bool("cyclic", g.IsCyclic()))

	res := &Result{Modulus: n, Totient: g.Order(), Group: g}
	if o.lattice {
		res.Lattice, err = lattice.Build(g,
			lattice.WithContext(ctx),
			lattice.WithLogger(log),
			lattice.WithMaxOrder(o.maxModulus),
			lattice.WithMaxSubgroups(o.maxSubgroups))
		if err != nil {
			return nil, classify(method, n, err)
		}
	}
	if o.cycleGraph {
		res.CycleGraph, err = cyclegraph.Build(g,
			cyclegraph.WithLogger(log),
			cyclegraph.WithMaxOrder(o.maxModulus))
		if err != nil {
			return nil, classify(method, n, err)
		}
		if o.engine != nil {
			res.Embedding, err = o.engine.Layout(ctx, res.CycleGraph)
			if err != nil {
				return nil, fmt.Errorf("cyclotomic: %s(%d): layout: %w", method, n, err)
			}
		}
	}

	return res, nil
}

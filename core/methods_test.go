// SPDX-License-Identifier: MIT
// Package core_test verifies the simple-graph contract of core.Graph.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/galois/core"
)

func TestGraph_VertexLifecycle(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("1"))
	require.NoError(t, g.AddVertex("1")) // idempotent
	assert.True(t, g.HasVertex("1"))
	assert.False(t, g.HasVertex(""))
	assert.False(t, g.HasVertex("2"))
	assert.Equal(t, 1, g.VertexCount())

	_, err := g.Degree("2")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestGraph_AddEdgeUndirected(t *testing.T) {
	g := core.NewGraph()

	id, err := g.AddEdge("1", "2")
	require.NoError(t, err)
	assert.Equal(t, "e1", id)
	assert.True(t, g.HasEdge("1", "2"))
	assert.True(t, g.HasEdge("2", "1"), "undirected edges are mirrored")

	_, err = g.AddEdge("2", "1")
	assert.ErrorIs(t, err, core.ErrDuplicateEdge)
	_, err = g.AddEdge("3", "3")
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = g.AddEdge("", "3")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, []string{"1", "2"}, g.Vertices())

	d, err := g.Degree("2")
	require.NoError(t, err)
	assert.Equal(t, 1, d)
}

func TestGraph_AddEdgeDirected(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	assert.True(t, g.Directed())

	_, err := g.AddEdge("a", "b")
	require.NoError(t, err)
	assert.True(t, g.HasEdge("a", "b"))
	assert.False(t, g.HasEdge("b", "a"))

	// Reverse arc is a different edge in a directed graph.
	_, err = g.AddEdge("b", "a")
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())

	out, err := g.Neighbors("a")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "b", out[0].To)
	assert.True(t, out[0].Directed)
}

func TestGraph_DeterministicOrder(t *testing.T) {
	build := func() *core.Graph {
		g := core.NewGraph()
		for _, p := range [][2]string{{"1", "3"}, {"3", "9"}, {"9", "1"}, {"1", "10"}} {
			_, err := g.AddEdge(p[0], p[1])
			require.NoError(t, err)
		}
		return g
	}
	a, b := build(), build()

	ids := func(es []*core.Edge) []string {
		out := make([]string, len(es))
		for i, e := range es {
			out[i] = e.ID + ":" + e.From + "-" + e.To
		}
		return out
	}
	assert.Equal(t, ids(a.Edges()), ids(b.Edges()))
	// e10 must not sort before e2: order is insertion order, not lexical.
	assert.Equal(t, []string{"e1:1-3", "e2:3-9", "e3:9-1", "e4:1-10"}, ids(a.Edges()))

	nbrs, err := a.NeighborIDs("1")
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "3", "9"}, nbrs)

	_, err = a.NeighborIDs("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_CloneAndInduced(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("1", "2")
	_, _ = g.AddEdge("2", "4")
	_, _ = g.AddEdge("4", "1")
	_ = g.AddVertex("7")

	c := g.Clone()
	assert.Equal(t, g.Vertices(), c.Vertices())
	assert.Equal(t, g.EdgeCount(), c.EdgeCount())

	// Mutating the clone leaves the source untouched and never reuses IDs.
	id, err := c.AddEdge("7", "1")
	require.NoError(t, err)
	assert.Equal(t, "e4", id)
	assert.False(t, g.HasEdge("7", "1"))

	sub := core.InducedSubgraph(g, map[string]bool{"1": true, "2": true})
	assert.Equal(t, []string{"1", "2"}, sub.Vertices())
	assert.Equal(t, 1, sub.EdgeCount())
	assert.True(t, sub.HasEdge("2", "1"))
}

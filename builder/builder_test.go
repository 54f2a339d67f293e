// SPDX-License-Identifier: MIT
package builder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/galois/builder"
	"github.com/katalvlaran/galois/core"
)

func TestRing_Sizes(t *testing.T) {
	cases := []struct {
		name      string
		idx       []int
		wantV     int
		wantE     int
		wantError error
	}{
		{"empty", nil, 0, 0, builder.ErrTooFewVertices},
		{"single", []int{1}, 1, 0, nil},
		{"pair", []int{1, 7}, 2, 1, nil},
		{"square", []int{1, 2, 4, 3}, 4, 4, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, builder.Ring(tc.idx))
			if tc.wantError != nil {
				require.ErrorIs(t, err, tc.wantError)
				assert.Nil(t, g)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
		})
	}
}

func TestRing_SharedVerticesMerge(t *testing.T) {
	// Two 2-rings and a 4-ring through the identity: the bowtie of C2×C2
	// plus a square that reuses the edge 1–3.
	g, err := builder.BuildGraph(nil, nil,
		builder.Ring([]int{1, 3}),
		builder.Ring([]int{1, 5}),
		builder.Ring([]int{1, 3, 9, 5}),
	)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	// 1–3 and 1–5 already exist; 3–9 and 9–5 are new.
	assert.Equal(t, 4, g.EdgeCount())
}

func TestBuildGraph_IDSchemeAndArcs(t *testing.T) {
	name := func(i int) string { return fmt.Sprintf("H%d", i) }
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true)},
		[]builder.BuilderOption{builder.WithIDScheme(name)},
		builder.Vertices([]int{0, 1, 2}),
		builder.Arcs([][2]int{{0, 1}, {1, 2}}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"H0", "H1", "H2"}, g.Vertices())
	assert.True(t, g.HasEdge("H0", "H1"))
	assert.False(t, g.HasEdge("H1", "H0"))
}

func TestBuildGraph_Failures(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildGraph(nil, nil, builder.Arcs([][2]int{{1, 2}, {2, 1}}))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildGraph(nil, nil, builder.Arcs([][2]int{{3, 3}}))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	assert.Panics(t, func() { builder.WithIDScheme(nil) })
}

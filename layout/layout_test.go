package layout_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/galois/cyclegraph"
	"github.com/katalvlaran/galois/layout"
	"github.com/katalvlaran/galois/units"
)

func TestEngineFunc(t *testing.T) {
	g, err := units.Decompose(7)
	require.NoError(t, err)
	cg, err := cyclegraph.Build(g)
	require.NoError(t, err)

	line := layout.EngineFunc(func(_ context.Context, cg *cyclegraph.Graph) (*layout.Embedding, error) {
		e := &layout.Embedding{Positions: map[int]layout.Point{}}
		for i, x := range cg.Nodes() {
			e.Positions[x] = layout.Point{X: float64(i)}
		}
		return e, nil
	})

	var eng layout.Engine = line
	emb, err := eng.Layout(context.Background(), cg)
	require.NoError(t, err)
	assert.True(t, emb.Covers(cg))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, emb.Residues())

	delete(emb.Positions, 6)
	assert.False(t, emb.Covers(cg))
}

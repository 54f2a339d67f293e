package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/galois/bfs"
	"github.com/katalvlaran/galois/core"
)

func bowtie(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range [][2]string{{"1", "3"}, {"1", "5"}, {"1", "7"}} {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("9")) // isolated
	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "1")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := bowtie(t)
	_, err = bfs.BFS(g, "42")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, "1", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	boom := errors.New("boom")
	_, err = bfs.BFS(g, "1", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "5" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

func TestBFS_OrderDepthAndPath(t *testing.T) {
	g := bowtie(t)
	res, err := bfs.BFS(g, "3")
	require.NoError(t, err)

	assert.Equal(t, []string{"3", "1", "5", "7"}, res.Order)
	assert.Equal(t, 2, res.Depth["7"])
	assert.False(t, res.Reached("9"))

	path, err := res.PathTo("5")
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1", "5"}, path)

	_, err = res.PathTo("9")
	assert.Error(t, err)
}

func TestBFS_MaxDepth(t *testing.T) {
	g := bowtie(t)
	res, err := bfs.BFS(g, "3", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1"}, res.Order)
}

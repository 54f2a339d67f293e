package lattice_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/galois/lattice"
	"github.com/katalvlaran/galois/units"
)

func group(t *testing.T, n int) *units.Group {
	t.Helper()
	g, err := units.Decompose(n)
	require.NoError(t, err)

	return g
}

func build(t *testing.T, n int, opts ...lattice.Option) *lattice.Lattice {
	t.Helper()
	l, err := lattice.Build(group(t, n), opts...)
	require.NoError(t, err)

	return l
}

func omega(m int) int {
	c := 0
	for p := 2; m > 1; p++ {
		for m%p == 0 {
			m /= p
			c++
		}
	}

	return c
}

func TestBuild_CyclicOrderFour(t *testing.T) {
	l := build(t, 5)
	require.Equal(t, 3, l.Len())

	subs := l.Subgroups()
	assert.Equal(t, []int{1}, subs[0].Elements)
	assert.Equal(t, []int{1, 4}, subs[1].Elements)
	assert.Equal(t, []int{1, 2, 3, 4}, subs[2].Elements)
	assert.Equal(t, "H2.0", subs[1].ID)
	assert.Equal(t, 2, subs[2].Generator)
	assert.Equal(t, []lattice.Edge{{From: 0, To: 1}, {From: 1, To: 2}}, l.Edges())
	assert.Equal(t, 0, l.Mobius())
}

func TestBuild_KleinFour(t *testing.T) {
	l := build(t, 8)
	require.Equal(t, 5, l.Len())

	var ids []string
	for _, s := range l.Subgroups() {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"H1.0", "H2.0", "H2.1", "H2.2", "H4.0"}, ids)

	top, err := l.Subgroup(l.Top())
	require.NoError(t, err)
	assert.False(t, top.Cyclic)
	h, err := l.Subgroup(2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 5}, h.Elements)
	assert.True(t, h.Cyclic)
	assert.Equal(t, 5, h.Generator)

	assert.Len(t, l.Edges(), 6)
	assert.Equal(t, []int{1, 2, 3}, l.Covers(4))
	assert.Equal(t, []int{1, 2, 3}, l.CoveredBy(0))
	assert.Equal(t, []int{0}, l.Covers(1))
	assert.Nil(t, l.Covers(9))

	meet, err := l.Meet(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, meet)
	join, err := l.Join(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, join)

	assert.Equal(t, 2, l.Mobius())

	levels, err := l.Levels()
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}, {1, 2, 3}, {4}}, levels)
}

func TestBuild_Trivial(t *testing.T) {
	for _, n := range []int{1, 2} {
		l := build(t, n)
		require.Equal(t, 1, l.Len(), "n=%d", n)
		assert.Equal(t, l.Bottom(), l.Top())
		assert.Empty(t, l.Edges())
		assert.Equal(t, 1, l.Mobius())
		assert.NoError(t, l.Validate())

		levels, err := l.Levels()
		require.NoError(t, err)
		assert.Equal(t, [][]int{{0}}, levels)
	}
	s, err := build(t, 1).Subgroup(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, s.Elements)
	assert.Equal(t, "H1.0", s.ID)
}

func TestBuild_Errors(t *testing.T) {
	_, err := lattice.Build(nil)
	assert.ErrorIs(t, err, lattice.ErrUnsupported)

	_, err = lattice.Build(group(t, 7), lattice.WithMaxOrder(4))
	assert.ErrorIs(t, err, lattice.ErrTooLarge)

	_, err = lattice.Build(group(t, 13), lattice.WithMaxSubgroups(3))
	assert.ErrorIs(t, err, lattice.ErrTooLarge)

	_, err = lattice.Build(group(t, 24), lattice.WithMaxSubgroups(10))
	assert.ErrorIs(t, err, lattice.ErrTooLarge)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = lattice.Build(group(t, 24), lattice.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuild_CyclicCountIsDivisorCount(t *testing.T) {
	for _, n := range []int{3, 7, 9, 11, 13, 18, 25, 27, 49, 50, 81} {
		g := group(t, n)
		require.True(t, g.IsCyclic())
		l := build(t, n)
		assert.Equal(t, len(units.Divisors(g.Order())), l.Len(), "n=%d", n)
	}
}

func TestBuild_GenericMatchesCyclicPath(t *testing.T) {
	for _, n := range []int{7, 9, 25, 27, 50} {
		fast := build(t, n)
		slow := build(t, n, lattice.WithGenericEnumeration())
		if diff := cmp.Diff(fast.Subgroups(), slow.Subgroups()); diff != "" {
			t.Errorf("n=%d: subgroups differ (-fast +slow):\n%s", n, diff)
		}
		assert.Equal(t, fast.Edges(), slow.Edges(), "n=%d", n)
	}
}

func TestBuild_GoursatCount(t *testing.T) {
	for _, n := range []int{8, 12, 15, 16, 20, 21, 35, 39, 63, 65} {
		g := group(t, n)
		inv := g.InvariantFactors()
		require.Len(t, inv, 2, "n=%d", n)
		l := build(t, n)
		assert.Equal(t, lattice.ProductSubgroupCount(inv[0], inv[1]), l.Len(), "n=%d %s", n, g)
	}
	assert.Equal(t, 16, build(t, 24).Len())
}

func TestProductSubgroupCount(t *testing.T) {
	assert.Equal(t, 1, lattice.ProductSubgroupCount(1, 1))
	assert.Equal(t, 5, lattice.ProductSubgroupCount(2, 2))
	assert.Equal(t, 8, lattice.ProductSubgroupCount(2, 4))
	assert.Equal(t, 6, lattice.ProductSubgroupCount(1, 12))
	assert.Equal(t, 0, lattice.ProductSubgroupCount(0, 3))
}

func TestValidate_AllSmallModuli(t *testing.T) {
	for n := 1; n <= 60; n++ {
		l := build(t, n)
		assert.NoError(t, l.Validate(), "n=%d", n)
		assert.Equal(t, 1, mustSub(t, l, l.Bottom()).Order)
		assert.Equal(t, l.Group().Order(), mustSub(t, l, l.Top()).Order)
	}
}

func TestLevels_RankIsPrimeFactorCount(t *testing.T) {
	for _, n := range []int{15, 24, 35, 63} {
		l := build(t, n)
		levels, err := l.Levels()
		require.NoError(t, err)
		for rank, lv := range levels {
			for _, i := range lv {
				assert.Equal(t, rank, omega(mustSub(t, l, i).Order), "n=%d sub=%d", n, i)
			}
		}
	}
}

func TestTopologicalOrder_RespectsCovers(t *testing.T) {
	l := build(t, 24)
	order, err := l.TopologicalOrder()
	require.NoError(t, err)
	require.Len(t, order, l.Len())

	pos := make(map[int]int, len(order))
	for i, s := range order {
		pos[s] = i
	}
	for _, e := range l.Edges() {
		assert.Less(t, pos[e.From], pos[e.To])
	}
}

func TestHasse(t *testing.T) {
	h := build(t, 8).Hasse()
	assert.True(t, h.Directed())
	assert.Equal(t, 5, h.VertexCount())
	assert.Equal(t, 6, h.EdgeCount())
	assert.True(t, h.HasEdge("H1.0", "H2.1"))
	assert.False(t, h.HasEdge("H2.1", "H1.0"))
}

func TestIndexOfAndContains(t *testing.T) {
	l := build(t, 8)
	i, err := l.IndexOf([]int{5, 1})
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	_, err = l.IndexOf([]int{1, 3, 5})
	assert.ErrorIs(t, err, lattice.ErrNotSubgroup)
	_, err = l.IndexOf([]int{2})
	assert.ErrorIs(t, err, lattice.ErrNotSubgroup)

	assert.True(t, l.Contains(4, 1))
	assert.False(t, l.Contains(1, 4))
	assert.False(t, l.Contains(1, 2))
	assert.False(t, l.Contains(-1, 0))

	_, err = l.Meet(0, 7)
	assert.ErrorIs(t, err, lattice.ErrIndexOutOfRange)
	_, err = l.Subgroup(5)
	assert.ErrorIs(t, err, lattice.ErrIndexOutOfRange)
}

func TestMobius(t *testing.T) {
	assert.Equal(t, 1, build(t, 7).Mobius())   // C6
	assert.Equal(t, 0, build(t, 17).Mobius())  // C16
	assert.Equal(t, -8, build(t, 24).Mobius()) // C2^3
}

func TestDeterminism(t *testing.T) {
	a, b := build(t, 63), build(t, 63)
	if diff := cmp.Diff(a.Subgroups(), b.Subgroups()); diff != "" {
		t.Fatalf("rebuild differs:\n%s", diff)
	}
	assert.Equal(t, a.Edges(), b.Edges())
}

func mustSub(t *testing.T, l *lattice.Lattice, i int) lattice.Subgroup {
	t.Helper()
	s, err := l.Subgroup(i)
	require.NoError(t, err)

	return s
}

func TestValidate_DescendingModuli(t *testing.T) {
	for _, n := range []int{106, 93, 77, 64, 45, 21, 5} {
		l := build(t, n)
		assert.NoError(t, l.Validate(), "n=%d", n)
		assert.Equal(t, l.Group().Order(), mustSub(t, l, l.Top()).Order, "n=%d", n)
	}
}

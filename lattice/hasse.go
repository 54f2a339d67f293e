package lattice

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/galois/bfs"
	"github.com/katalvlaran/galois/core"
	"github.com/katalvlaran/galois/dfs"
)

// Hasse returns a copy of the Hasse diagram: a directed core.Graph with one
// vertex per subgroup ID and an arc H→K for every covering pair H ⋖ K.
func (l *Lattice) Hasse() *core.Graph { return l.hasse.Clone() }

// Levels groups subgroup indices by rank, the number of prime factors of the
// order counted with multiplicity. Ranks are BFS depths from the bottom, which
// coincide because the lattice of a finite abelian group is graded.
func (l *Lattice) Levels() ([][]int, error) {
	res, err := bfs.BFS(l.hasse, l.subs[l.Bottom()].ID)
	if err != nil {
		return nil, fmt.Errorf("lattice: Levels: %w", err)
	}

	var levels [][]int
	for i, s := range l.subs {
		d, ok := res.Depth[s.ID]
		if !ok {
			return nil, fmt.Errorf("lattice: Levels: %s unreachable from bottom: %w", s.ID, ErrUnsupported)
		}
		for len(levels) <= d {
			levels = append(levels, nil)
		}
		levels[d] = append(levels[d], i)
	}
	for _, lv := range levels {
		sort.Ints(lv)
	}

	return levels, nil
}

// TopologicalOrder returns all subgroup indices such that every subgroup
// precedes the subgroups containing it.
func (l *Lattice) TopologicalOrder() ([]int, error) {
	ids, err := dfs.TopologicalSort(l.hasse)
	if err != nil {
		return nil, fmt.Errorf("lattice: TopologicalOrder: %w", err)
	}
	byID := make(map[string]int, len(l.subs))
	for i, s := range l.subs {
		byID[s.ID] = i
	}
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = byID[id]
	}

	return out, nil
}

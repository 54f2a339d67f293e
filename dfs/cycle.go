package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/galois/core"
)

// cycleFinder carries the DFS state of DetectCycles.
type cycleFinder struct {
	graph    *core.Graph
	opts     options
	directed bool
	state    map[string]int
	path     []string
	seen     map[string]struct{}
	cycles   [][]string
}

// DetectCycles inspects g for simple cycles closed by DFS back-edges.
// Returns (true, cycles, nil) if any are found; each cycle is closed
// ([v0, …, v0]) and canonical. A nil graph is cycle-free.
//
// In undirected graphs the edge back to the DFS parent is not a cycle.
func DetectCycles(g *core.Graph, opts ...Option) (bool, [][]string, error) {
	if g == nil {
		return false, nil, nil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	verts := g.Vertices()
	f := &cycleFinder{
		graph:    g,
		opts:     o,
		directed: g.Directed(),
		state:    make(map[string]int, len(verts)),
		path:     make([]string, 0, len(verts)),
		seen:     make(map[string]struct{}),
	}
	for _, v := range verts {
		if f.state[v] == White {
			if err := f.visit(v, ""); err != nil {
				return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
			}
		}
	}
	if len(f.cycles) == 0 {
		return false, nil, nil
	}
	sort.Slice(f.cycles, func(i, j int) bool {
		return JoinSig(f.cycles[i]) < JoinSig(f.cycles[j])
	})

	return true, f.cycles, nil
}

func (f *cycleFinder) visit(id, parent string) error {
	select {
	case <-f.opts.ctx.Done():
		return f.opts.ctx.Err()
	default:
	}
	f.state[id] = Gray
	f.path = append(f.path, id)

	nbrs, err := f.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, nbr := range nbrs {
		if !f.directed && nbr == parent {
			continue
		}
		switch f.state[nbr] {
		case White:
			if err = f.visit(nbr, id); err != nil {
				return err
			}
		case Gray:
			f.record(nbr)
		}
	}

	f.path = f.path[:len(f.path)-1]
	f.state[id] = Black

	return nil
}

// record extracts the cycle path[idx(start):] + start and keeps it if new.
func (f *cycleFinder) record(start string) {
	idx := IndexOf(f.path, start)
	base := append([]string(nil), f.path[idx:]...)

	pick := MinimalRotation(base)
	if !f.directed {
		if rev := MinimalRotation(Reverse(base)); Compare(rev, pick) < 0 {
			pick = rev
		}
	}
	closed := append(pick, pick[0])
	sig := JoinSig(closed)
	if _, ok := f.seen[sig]; ok {
		return
	}
	f.seen[sig] = struct{}{}
	f.cycles = append(f.cycles, closed)
}

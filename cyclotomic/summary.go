package cyclotomic

// Summary is a plain, serializable view of a Result.
type Summary struct {
	Modulus          int                `yaml:"modulus"`
	Totient          int                `yaml:"totient"`
	Structure        string             `yaml:"structure"`
	Cyclic           bool               `yaml:"cyclic"`
	Exponent         int                `yaml:"exponent"`
	InvariantFactors []int              `yaml:"invariant_factors,flow"`
	PrimaryFactors   map[int][]int      `yaml:"primary_factors,omitempty"`
	Factors          []FactorSummary    `yaml:"factors,omitempty"`
	Generators       []int              `yaml:"generators,flow"`
	Lattice          *LatticeSummary    `yaml:"lattice,omitempty"`
	CycleGraph       *CycleSummary      `yaml:"cycle_graph,omitempty"`
	Embedding        map[int][2]float64 `yaml:"embedding,omitempty"`
}

// FactorSummary describes the unit group of one prime power.
type FactorSummary struct {
	Prime      int    `yaml:"prime"`
	Exponent   int    `yaml:"exponent"`
	Kind       string `yaml:"kind"`
	Structure  string `yaml:"structure"`
	Generators []int  `yaml:"generators,flow"`
}

// SubgroupSummary describes one subgroup.
type SubgroupSummary struct {
	ID       string `yaml:"id"`
	Order    int    `yaml:"order"`
	Cyclic   bool   `yaml:"cyclic"`
	Elements []int  `yaml:"elements,flow"`
}

// LatticeSummary describes the subgroup lattice; covers are ID pairs.
type LatticeSummary struct {
	Count     int               `yaml:"count"`
	Mobius    int               `yaml:"mobius"`
	Subgroups []SubgroupSummary `yaml:"subgroups"`
	Covers    [][2]string       `yaml:"covers,flow"`
}

// CycleSummary describes the cycle graph.
type CycleSummary struct {
	Nodes  int        `yaml:"nodes"`
	Edges  [][2]int   `yaml:"edges,flow"`
	Cycles []CycleRow `yaml:"cycles"`
}

// CycleRow is one maximal cycle.
type CycleRow struct {
	Generator int   `yaml:"generator"`
	Elements  []int `yaml:"elements,flow"`
}

// Summary flattens r for reporting.
func (r *Result) Summary() Summary {
	g := r.Group
	s := Summary{
		Modulus:          r.Modulus,
		Totient:          r.Totient,
		Structure:        g.String(),
		Cyclic:           g.IsCyclic(),
		Exponent:         g.Exponent(),
		InvariantFactors: g.InvariantFactors(),
		PrimaryFactors:   g.PrimaryFactors(),
		Generators:       g.Generators(),
	}
	for _, f := range g.Factors() {
		s.Factors = append(s.Factors, FactorSummary{
			Prime:      f.Prime,
			Exponent:   f.Exponent,
			Kind:       f.Kind.String(),
			Structure:  f.String(),
			Generators: f.Generators,
		})
	}

	if l := r.Lattice; l != nil {
		ls := &LatticeSummary{Count: l.Len(), Mobius: l.Mobius()}
		subs := l.Subgroups()
		for _, h := range subs {
			ls.Subgroups = append(ls.Subgroups, SubgroupSummary{ID: h.ID, Order: h.Order, Cyclic: h.Cyclic, Elements: h.Elements})
		}
		for _, e := range l.Edges() {
			ls.Covers = append(ls.Covers, [2]string{subs[e.From].ID, subs[e.To].ID})
		}
		s.Lattice = ls
	}

	if cg := r.CycleGraph; cg != nil {
		cs := &CycleSummary{Nodes: cg.NodeCount(), Edges: cg.Edges()}
		for _, c := range cg.Cycles() {
			cs.Cycles = append(cs.Cycles, CycleRow{Generator: c.Generator, Elements: c.Elements})
		}
		s.CycleGraph = cs
	}

	if r.Embedding != nil {
		s.Embedding = make(map[int][2]float64, len(r.Embedding.Positions))
		for x, p := range r.Embedding.Positions {
			s.Embedding[x] = [2]float64{p.X, p.Y}
		}
	}

	return s
}

package lattice_test

import (
	"fmt"

	"github.com/katalvlaran/galois/lattice"
	"github.com/katalvlaran/galois/units"
)

func ExampleBuild() {
	g, _ := units.Decompose(8)
	l, err := lattice.Build(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, s := range l.Subgroups() {
		fmt.Println(s.ID, s.Elements)
	}
	for _, e := range l.Edges() {
		fmt.Printf("%d -> %d\n", e.From, e.To)
	}
	// Output:
	// H1.0 [1]
	// H2.0 [1 3]
	// H2.1 [1 5]
	// H2.2 [1 7]
	// H4.0 [1 3 5 7]
	// 0 -> 1
	// 0 -> 2
	// 0 -> 3
	// 1 -> 4
	// 2 -> 4
	// 3 -> 4
}

package cyclegraph_test

import (
	"fmt"

	"github.com/katalvlaran/galois/cyclegraph"
	"github.com/katalvlaran/galois/units"
)

func ExampleBuild() {
	g, _ := units.Decompose(15)
	cg, err := cyclegraph.Build(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, c := range cg.Cycles() {
		fmt.Println(c.Generator, c.Elements)
	}
	fmt.Println(cg.NodeCount(), cg.EdgeCount())
	// Output:
	// 2 [1 2 4 8]
	// 7 [1 7 4 13]
	// 11 [1 11]
	// 14 [1 14]
	// 8 10
}

package core_test

import (
	"fmt"

	"github.com/katalvlaran/galois/core"
)

// ExampleGraph builds the 4-cycle 1-2-4-3 of (Z/5Z)× by hand.
func ExampleGraph() {
	g := core.NewGraph()
	_, _ = g.AddEdge("1", "2")
	_, _ = g.AddEdge("2", "4")
	_, _ = g.AddEdge("4", "3")
	_, _ = g.AddEdge("3", "1")

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("4–2 exists?", g.HasEdge("4", "2"))

	// Output:
	// Vertices: [1 2 3 4]
	// Edges: 4
	// 4–2 exists? true
}

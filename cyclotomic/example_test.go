package cyclotomic_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/galois/cyclotomic"
)

func ExampleCompute() {
	r, err := cyclotomic.Compute(12)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(r.Totient, r.Group, r.Lattice.Len(), r.CycleGraph.EdgeCount())
	// Output: 4 C2 x C2 5 3
}

func ExampleComputeMany() {
	rs, err := cyclotomic.ComputeMany(context.Background(), []int{7, 8, 9}, cyclotomic.WithoutLattice())
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, r := range rs {
		fmt.Printf("n=%d %s faces=%d\n", r.Modulus, r.Group, len(r.CycleGraph.Cycles()))
	}
	// Output:
	// n=7 C6 faces=1
	// n=8 C2 x C2 faces=3
	// n=9 C6 faces=1
}

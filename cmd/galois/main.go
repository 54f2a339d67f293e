// Command galois prints the Galois group of the n-th cyclotomic field,
// (Z/nZ)×, together with its subgroup lattice and cycle graph.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

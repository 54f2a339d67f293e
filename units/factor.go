package units

import (
	"fmt"
	"strings"
)

// Kind tags the shape of the unit group of a single prime power.
type Kind int

const (
	// KindTrivial is (Z/2Z)×, the trivial group.
	KindTrivial Kind = iota
	// KindCyclic is a cyclic factor: odd prime powers and 4.
	KindCyclic
	// KindTwoPower is (Z/2^kZ)× for k ≥ 3, isomorphic to C_2 × C_{2^(k-2)}.
	KindTwoPower
)

func (k Kind) String() string {
	switch k {
	case KindTrivial:
		return "trivial"
	case KindCyclic:
		return "cyclic"
	case KindTwoPower:
		return "two-power"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Factor is the unit group of one prime power p^k dividing n.
type Factor struct {
	Prime    int
	Exponent int
	// Modulus is Prime^Exponent.
	Modulus int
	Kind    Kind
	// Orders lists the orders of the cyclic components: none for KindTrivial,
	// one for KindCyclic, two (2 and 2^(k-2)) for KindTwoPower.
	Orders []int
	// Generators holds, per component, a residue modulo Modulus generating it.
	Generators []int
}

// Order returns the order of the factor, φ(p^k).
func (f Factor) Order() int {
	o := 1
	for _, m := range f.Orders {
		o *= m
	}

	return o
}

// String renders the factor as a product of cyclic groups, e.g. "C2 x C4".
func (f Factor) String() string {
	if len(f.Orders) == 0 {
		return "C1"
	}
	parts := make([]string, len(f.Orders))
	for i, m := range f.Orders {
		parts[i] = fmt.Sprintf("C%d", m)
	}

	return strings.Join(parts, " x ")
}

func newFactor(p, k int) Factor {
	q := ipow(p, k)
	f := Factor{Prime: p, Exponent: k, Modulus: q}
	switch {
	case p == 2 && k == 1:
		f.Kind = KindTrivial
	case p == 2 && k == 2:
		f.Kind = KindCyclic
		f.Orders = []int{2}
		f.Generators = []int{3}
	case p == 2:
		f.Kind = KindTwoPower
		f.Orders = []int{2, q / 4}
		f.Generators = []int{q - 1, 5}
	default:
		f.Kind = KindCyclic
		f.Orders = []int{q / p * (p - 1)}
		f.Generators = []int{primitiveRoot(p, k)}
	}

	return f
}

// primitiveRoot returns the smallest primitive root modulo p^k, p odd.
func primitiveRoot(p, k int) int {
	q := ipow(p, k)
	phi := q / p * (p - 1)
	divs := primeDivisors(p - 1)
	if k > 1 {
		divs = append(divs, p)
	}
	for g := 2; g < q; g++ {
		if g%p == 0 {
			continue
		}
		ok := true
		for _, r := range divs {
			if powMod(g, phi/r, q) == 1 {
				ok = false
				break
			}
		}
		if ok {
			return g
		}
	}

	return 1 // unreachable for odd p: primitive roots exist modulo p^k
}

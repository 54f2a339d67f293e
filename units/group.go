// SPDX-License-Identifier: MIT

package units

import (
	"fmt"
	"sort"
	"strings"
)

// Group is the unit group (Z/nZ)× together with its decomposition.
// It is immutable and safe for concurrent use.
type Group struct {
	modulus  int
	factors  []Factor
	elements []int
	pos      []int // residue -> index in elements, -1 when not a unit

	gens      []int // one lifted generator per cyclic component
	genOrders []int

	invariant []int
	exponent  int
	expPrimes []int
}

// Decompose builds the unit group of Z/nZ.
// It fails with ErrInvalidModulus for n < 1 and ErrTooLarge for n above
// MaxModulus.
func Decompose(n int) (*Group, error) {
	if n < 1 {
		return nil, fmt.Errorf("units: Decompose(%d): %w", n, ErrInvalidModulus)
	}
	if n > MaxModulus {
		return nil, fmt.Errorf("units: Decompose(%d): above %d: %w", n, MaxModulus, ErrTooLarge)
	}

	g := &Group{modulus: n, exponent: 1}
	for _, pp := range factorize(n) {
		f := newFactor(pp.p, pp.k)
		g.factors = append(g.factors, f)
		for i, a := range f.Generators {
			g.gens = append(g.gens, crtLift(a, f.Modulus, n))
			g.genOrders = append(g.genOrders, f.Orders[i])
		}
	}

	g.pos = make([]int, n)
	if n == 1 {
		g.elements = []int{0}
		g.pos[0] = 0
	} else {
		g.pos[0] = -1
		for x := 1; x < n; x++ {
			g.pos[x] = -1
			if gcd(x, n) == 1 {
				g.pos[x] = len(g.elements)
				g.elements = append(g.elements, x)
			}
		}
	}

	g.invariant = invariantFactors(g.primaryOrders())
	if k := len(g.invariant); k > 0 {
		g.exponent = g.invariant[k-1]
	}
	g.expPrimes = primeDivisors(g.exponent)

	return g, nil
}

// Totient returns Euler's φ(n), computed from the factorization of n in
// O(√n) without materializing the group.
func Totient(n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("units: Totient(%d): %w", n, ErrInvalidModulus)
	}
	phi := 1
	for _, pp := range factorize(n) {
		phi *= ipow(pp.p, pp.k-1) * (pp.p - 1)
	}

	return phi, nil
}

// Modulus returns n.
func (g *Group) Modulus() int { return g.modulus }

// Order returns φ(n).
func (g *Group) Order() int { return len(g.elements) }

// Factors returns one Factor per prime power of n, ascending by prime.
func (g *Group) Factors() []Factor {
	out := make([]Factor, len(g.factors))
	copy(out, g.factors)

	return out
}

// Elements returns the residues of the group in ascending order.
func (g *Group) Elements() []int {
	out := make([]int, len(g.elements))
	copy(out, g.elements)

	return out
}

// Index returns the position of x in Elements, or -1 if x is not a unit.
func (g *Group) Index(x int) int {
	if x < 0 || x >= g.modulus {
		return -1
	}

	return g.pos[x]
}

// Contains reports whether x is a canonical residue of the group.
func (g *Group) Contains(x int) bool { return g.Index(x) >= 0 }

// Identity returns 1 mod n.
func (g *Group) Identity() int { return 1 % g.modulus }

// Mul returns a*b mod n.
func (g *Group) Mul(a, b int) int { return mulMod(a, b, g.modulus) }

// Pow returns x^e mod n. Negative exponents use the inverse of x.
func (g *Group) Pow(x, e int) int {
	if e < 0 {
		return powMod(g.Inverse(x), -e, g.modulus)
	}

	return powMod(x, e, g.modulus)
}

// Inverse returns x^-1 mod n, x being a member of the group.
func (g *Group) Inverse(x int) int {
	return powMod(x, g.exponent-1, g.modulus)
}

// ElementOrder returns the multiplicative order of x, or 0 if x is not a unit.
func (g *Group) ElementOrder(x int) int {
	if !g.Contains(x) {
		return 0
	}
	ord := g.exponent
	for _, p := range g.expPrimes {
		for ord%p == 0 && powMod(x, ord/p, g.modulus) == g.Identity() {
			ord /= p
		}
	}

	return ord
}

// Generators returns one residue per cyclic component, lifted to Z/nZ by the
// Chinese remainder theorem. Products of their powers cover the group.
func (g *Group) Generators() []int {
	out := make([]int, len(g.gens))
	copy(out, g.gens)

	return out
}

// GeneratorOrders returns the orders of Generators, index for index.
func (g *Group) GeneratorOrders() []int {
	out := make([]int, len(g.genOrders))
	copy(out, g.genOrders)

	return out
}

// IsCyclic reports whether the group is cyclic, i.e. n ∈ {1, 2, 4, p^k, 2p^k}.
func (g *Group) IsCyclic() bool { return len(g.invariant) <= 1 }

// Exponent returns λ(n), the least common multiple of all element orders.
func (g *Group) Exponent() int { return g.exponent }

// InvariantFactors returns d1 | d2 | … | dr with the group ≅ C_d1 × … × C_dr.
// The trivial group has no invariant factors.
func (g *Group) InvariantFactors() []int {
	out := make([]int, len(g.invariant))
	copy(out, g.invariant)

	return out
}

// PrimaryFactors returns the primary decomposition: for every prime p dividing
// φ(n), the prime-power orders of the cyclic p-components, ascending.
func (g *Group) PrimaryFactors() map[int][]int {
	out := make(map[int][]int)
	for _, pp := range g.primaryOrders() {
		out[pp.p] = append(out[pp.p], ipow(pp.p, pp.k))
	}
	for _, v := range out {
		sort.Ints(v)
	}

	return out
}

// String renders the invariant factor form, e.g. "C2 x C4", or "C1".
func (g *Group) String() string {
	if len(g.invariant) == 0 {
		return "C1"
	}
	parts := make([]string, len(g.invariant))
	for i, d := range g.invariant {
		parts[i] = fmt.Sprintf("C%d", d)
	}

	return strings.Join(parts, " x ")
}

// primaryOrders splits every cyclic component order into its prime powers.
func (g *Group) primaryOrders() []primePower {
	var out []primePower
	for _, m := range g.genOrders {
		out = append(out, factorize(m)...)
	}

	return out
}

// invariantFactors combines prime-power components into d1 | d2 | … | dr by
// repeatedly multiplying the largest remaining power of each prime.
func invariantFactors(primary []primePower) []int {
	byPrime := make(map[int][]int)
	var ps []int
	for _, pp := range primary {
		if _, ok := byPrime[pp.p]; !ok {
			ps = append(ps, pp.p)
		}
		byPrime[pp.p] = append(byPrime[pp.p], pp.k)
	}
	for _, p := range ps {
		sort.Sort(sort.Reverse(sort.IntSlice(byPrime[p])))
	}

	var out []int
	for {
		d := 1
		for _, p := range ps {
			ks := byPrime[p]
			if len(ks) == 0 {
				continue
			}
			d *= ipow(p, ks[0])
			byPrime[p] = ks[1:]
		}
		if d == 1 {
			break
		}
		out = append(out, d)
	}
	sort.Ints(out)

	return out
}

package lattice

import "github.com/katalvlaran/galois/units"

// Mobius returns μ(1, G), the Möbius function of the lattice evaluated on the
// interval from the trivial subgroup to the whole group.
//
// μ(1, 1) = 1 and μ(1, K) = -Σ μ(1, H) over proper subgroups H of K.
// Cost is quadratic in Len.
func (l *Lattice) Mobius() int {
	mu := make([]int, len(l.subs))
	mu[0] = 1
	for k := 1; k < len(l.subs); k++ {
		sum := 0
		for h := 0; h < k; h++ {
			if l.subs[h].Order < l.subs[k].Order && l.sets[h].subsetOf(l.sets[k]) {
				sum += mu[h]
			}
		}
		mu[k] = -sum
	}

	return mu[len(mu)-1]
}

// ProductSubgroupCount returns the number of subgroups of C_m × C_n, counted
// with Goursat's lemma: a subgroup corresponds to subquotients G1/G2 of C_m and
// H1/H2 of C_n of the same order k, together with one of the φ(k)
// isomorphisms between them. It returns 0 when m or n is below 1.
func ProductSubgroupCount(m, n int) int {
	if m < 1 || n < 1 {
		return 0
	}
	left, right := subquotients(m), subquotients(n)

	count := 0
	for k, a := range left {
		b, ok := right[k]
		if !ok {
			continue
		}
		phi, _ := units.Totient(k)
		count += a * b * phi
	}

	return count
}

// subquotients counts the pairs G2 ≤ G1 ≤ C_n by quotient order |G1/G2|.
func subquotients(n int) map[int]int {
	out := make(map[int]int)
	for _, a := range units.Divisors(n) {
		for _, b := range units.Divisors(a) {
			out[a/b]++
		}
	}

	return out
}

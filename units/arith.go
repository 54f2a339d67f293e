package units

import "math/bits"

// primePower is one factor p^k of an integer.
type primePower struct {
	p, k int
}

// factorize returns the prime-power factorization of n > 1, ascending by
// prime, by trial division up to √n. It keeps no state between calls.
func factorize(n int) []primePower {
	if n < 2 {
		return nil
	}
	var out []primePower
	for p := 2; p <= n/p; p++ {
		if n%p != 0 {
			continue
		}
		pp := primePower{p: p}
		for n%p == 0 {
			n /= p
			pp.k++
		}
		out = append(out, pp)
	}
	if n > 1 {
		out = append(out, primePower{p: n, k: 1})
	}

	return out
}

// primeDivisors returns the distinct primes dividing n, ascending.
func primeDivisors(n int) []int {
	pp := factorize(n)
	out := make([]int, len(pp))
	for i, f := range pp {
		out[i] = f.p
	}

	return out
}

// IsPrime reports whether n is prime.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}

	return true
}

// Divisors returns the positive divisors of n ≥ 1 in ascending order.
func Divisors(n int) []int {
	if n < 1 {
		return nil
	}
	var lo, hi []int
	for d := 1; d*d <= n; d++ {
		if n%d != 0 {
			continue
		}
		lo = append(lo, d)
		if d != n/d {
			hi = append(hi, n/d)
		}
	}
	for i := len(hi) - 1; i >= 0; i-- {
		lo = append(lo, hi[i])
	}

	return lo
}

func ipow(b, e int) int {
	r := 1
	for ; e > 0; e-- {
		r *= b
	}

	return r
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}

	return a
}

// mulMod computes a*b mod m for 0 ≤ a, b < m without overflow.
func mulMod(a, b, m int) int {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	return int(bits.Rem64(hi, lo, uint64(m)))
}

// powMod computes b^e mod m for e ≥ 0 by square-and-multiply.
func powMod(b, e, m int) int {
	if m == 1 {
		return 0
	}
	r := 1
	b %= m
	for e > 0 {
		if e&1 == 1 {
			r = mulMod(r, b, m)
		}
		b = mulMod(b, b, m)
		e >>= 1
	}

	return r
}

// invMod returns a^-1 mod m, if gcd(a, m) = 1.
func invMod(a, m int) (int, bool) {
	t, newT := 0, 1
	r, newR := m, ((a%m)+m)%m
	for newR != 0 {
		q := r / newR
		t, newT = newT, t-q*newT
		r, newR = newR, r-q*newR
	}
	if r != 1 {
		return 0, false
	}
	if t < 0 {
		t += m
	}

	return t, true
}

// crtLift returns the x in [0, n) with x ≡ a (mod q) and x ≡ 1 (mod n/q).
// q must divide n and be coprime to n/q.
func crtLift(a, q, n int) int {
	r := n / q
	inv, _ := invMod(r%q, q)
	t := mulMod(((a-1)%q+q)%q, inv, q)

	return (1 + r*t) % n
}

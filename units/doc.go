// Package units models the unit group (Z/nZ)×, i.e. the automorphism group of
// the cyclic group Z/nZ and the Galois group of the n-th cyclotomic field.
//
// Decompose factors n into prime powers and attaches one tagged Factor per
// prime power, following the structure theorem:
//
//	odd p^k        → KindCyclic,   C_{p^(k-1)(p-1)}, generated by a primitive root
//	2^1            → KindTrivial,  C_1
//	2^2            → KindCyclic,   C_2, generated by 3
//	2^k, k ≥ 3     → KindTwoPower, C_2 × C_{2^(k-2)}, generated by -1 and 5
//
// The 2-power case is kept as an explicit variant because it alone decides
// whether the whole group is cyclic: (Z/nZ)× is cyclic iff n is 1, 2, 4,
// p^k or 2p^k for an odd prime p.
//
// A Group is immutable. Elements are canonical residues in [1, n) coprime to
// n, the identity is 1 mod n (so for n = 1 the only element is 0).
//
// Besides the factor-by-factor decomposition a Group reports its primary
// decomposition (prime-power cyclic orders, after Shanks) and its invariant
// factors d1 | d2 | … | dr; the largest invariant factor is the exponent,
// Carmichael's λ(n).
//
// Cost: Decompose is O(n log n) time and O(n) memory because it materializes
// the element list, and refuses moduli above MaxModulus with ErrTooLarge;
// Totient only factors n by trial division.
package units

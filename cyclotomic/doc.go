// Package cyclotomic is the computation entry point: given n it derives the
// Galois group of the n-th cyclotomic field, (Z/nZ)×, its subgroup lattice
// and its cycle graph, and optionally hands the cycle graph to a layout
// engine.
//
// Results are pure functions of n and the options; ComputeMany evaluates
// independent moduli concurrently and keeps the input order.
package cyclotomic

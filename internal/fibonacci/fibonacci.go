// Package fibonacci computes Fibonacci numbers two ways: a linear loop on
// arbitrary-precision integers, and the naive exponential recursion that
// exists only to generate CPU load.
package fibonacci

import "math/big"

// MaxRecursiveRank is the largest rank whose value fits in a uint64.
const MaxRecursiveRank = 93

// Fast returns F(n) with F(0)=0, F(1)=1. Ranks below zero yield 0.
func Fast(n int) *big.Int {
	if n <= 0 {
		return big.NewInt(0)
	}

	prev, fib := big.NewInt(0), big.NewInt(1)
	for i := 1; i < n; i++ {
		prev.Add(prev, fib)
		prev, fib = fib, prev
	}
	return fib
}

// Recursive returns F(n) by naive recursion in O(φⁿ) time. Ranks below zero
// yield 0; ranks above MaxRecursiveRank overflow (and would never finish).
func Recursive(n int) uint64 {
	if n <= 0 {
		return 0
	}
	if n == 1 {
		return 1
	}
	return Recursive(n-1) + Recursive(n-2)
}

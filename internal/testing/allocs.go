// Package testing provides allocation-counting helpers for borrowvec tests.
package testing

import (
	stdtesting "testing"
)

// AllocsPerCycle reports the average number of heap allocations made by
// one call of cycle. Warm-up calls run first, so allocations that only
// happen while storage is still growing are not counted.
func AllocsPerCycle(warmup, runs int, cycle func()) float64 {
	for i := 0; i < warmup; i++ {
		cycle()
	}
	return stdtesting.AllocsPerRun(runs, cycle)
}

// Values returns n distinct ints counting down from n, so the result is
// in reverse order.
func Values(n int) []int {
	vals := make([]int, n)
	for i := range vals {
		vals[i] = n - i
	}
	return vals
}

// Addrs returns the address of every element of vals.
func Addrs[T any](vals []T) []*T {
	ptrs := make([]*T, len(vals))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	return ptrs
}

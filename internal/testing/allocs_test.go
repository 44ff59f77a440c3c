package testing

import (
	stdtesting "testing"

	"github.com/stretchr/testify/require"
)

func TestValues(t *stdtesting.T) {
	require.Equal(t, []int{3, 2, 1}, Values(3))
	require.Empty(t, Values(0))
}

func TestAddrs(t *stdtesting.T) {
	vals := []string{"a", "b"}
	ptrs := Addrs(vals)
	require.Len(t, ptrs, 2)
	require.Same(t, &vals[0], ptrs[0])
	require.Same(t, &vals[1], ptrs[1])
}

func TestAllocsPerCycle(t *stdtesting.T) {
	var sink []int
	n := AllocsPerCycle(1, 10, func() {
		sink = make([]int, 64)
	})
	require.Equal(t, float64(1), n)
	require.Len(t, sink, 64)

	n = AllocsPerCycle(1, 10, func() {})
	require.Zero(t, n)
}

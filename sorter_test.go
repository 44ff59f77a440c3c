package borrowvec

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	bvtesting "github.com/scigolib/borrowvec/internal/testing"
)

func derefAll[T any](refs []*T) []T {
	out := make([]T, len(refs))
	for i, r := range refs {
		out[i] = *r
	}
	return out
}

func TestSorter_SortValues(t *testing.T) {
	s := NewOrderedSorter[int]()
	numbers := []int{3, 2, 1}

	g := s.SortValues(numbers)
	defer g.Release()

	want := slices.Clone(numbers)
	slices.Sort(want)
	require.Equal(t, want, derefAll(g.Get()))
	require.Equal(t, []int{3, 2, 1}, numbers)
	require.Same(t, &numbers[2], g.At(0))
}

func TestSorter_Sort(t *testing.T) {
	s := NewOrderedSorter[string]()
	words := []string{"pear", "apple", "fig"}

	g := s.Sort(slices.Values(bvtesting.Addrs(words)))
	require.Equal(t, []string{"apple", "fig", "pear"}, derefAll(g.Get()))
	g.Release()
}

func TestSorter_CustomOrder(t *testing.T) {
	s := NewSorter(func(x, y record) int {
		return strings.Compare(y.name, x.name)
	})
	recs := []record{{name: "a"}, {name: "c"}, {name: "b"}}

	g := s.SortValues(recs)
	defer g.Release()
	require.Equal(t, []string{"c", "b", "a"}, names(g.Get()))
}

func TestSorter_ReusesStorage(t *testing.T) {
	s := NewOrderedSorter[int]()
	vals := bvtesting.Values(50)

	for i := 0; i < 5; i++ {
		g := s.SortValues(vals)
		require.Equal(t, 1, *g.At(0))
		require.Equal(t, 50, *g.At(49))
		g.Release()
	}

	stats := s.Stats().Snapshot()
	require.Equal(t, uint64(5), stats.Scopes)
	require.Equal(t, uint64(1), stats.Grows)
}

func TestSorter_SecondSortWhileViewAlive(t *testing.T) {
	s := NewOrderedSorter[int]()
	vals := []int{2, 1}

	g := s.SortValues(vals)
	requireViolation(t, ErrCheckedOut, func() { s.SortValues(vals) })
	g.Release()

	g = s.SortValues(vals)
	g.Release()
}

func TestSorter_ReleasesOnPanic(t *testing.T) {
	calls := 0
	s := NewSorter(func(x, y int) int {
		calls++
		if calls == 1 {
			panic("bad compare")
		}
		return x - y
	})
	vals := []int{2, 1, 3}

	require.PanicsWithValue(t, "bad compare", func() { s.SortValues(vals) })

	g := s.SortValues(vals)
	defer g.Release()
	require.Equal(t, []int{1, 2, 3}, derefAll(g.Get()))
}

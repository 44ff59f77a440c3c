// Copyright (c) 2025 SciGo BorrowVec Library Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package borrowvec

import (
	"cmp"
	"iter"
)

// Sorter returns sorted views of caller data without allocating a new
// slice per call. It owns one holder; the view returned by Sort must be
// released before the next call.
//
// Example:
//
//	s := borrowvec.NewOrderedSorter[int]()
//	nums := []int{3, 2, 1}
//	g := s.SortValues(nums)
//	defer g.Release()
//	// *g.At(0) == 1
type Sorter[T any] struct {
	buf     *Empty[T]
	byValue func(x, y *T) int
}

// NewSorter creates a Sorter ordering values with compare.
func NewSorter[T any](compare func(x, y T) int, opts ...Option) *Sorter[T] {
	return &Sorter[T]{
		buf: New[T](opts...),
		byValue: func(x, y *T) int {
			return compare(*x, *y)
		},
	}
}

// NewOrderedSorter creates a Sorter using the natural order of T.
func NewOrderedSorter[T cmp.Ordered](opts ...Option) *Sorter[T] {
	return NewSorter(cmp.Compare[T], opts...)
}

// Sort collects the references produced by seq and sorts them by value.
// The caller must release the returned guard.
func (s *Sorter[T]) Sort(seq iter.Seq[*T]) Guard[T] {
	return s.sorted(func(g Guard[T]) {
		g.Extend(seq)
	})
}

// SortValues is Sort over the addresses of vals' elements. vals itself is
// left untouched.
func (s *Sorter[T]) SortValues(vals []T) Guard[T] {
	return s.sorted(func(g Guard[T]) {
		for i := range vals {
			g.Push(&vals[i])
		}
	})
}

// sorted fills a guard and sorts it. If fill or the comparison panics the
// guard is released before the panic propagates.
func (s *Sorter[T]) sorted(fill func(g Guard[T])) Guard[T] {
	g := s.buf.Begin()
	done := false
	defer func() {
		if !done {
			g.Release()
		}
	}()

	fill(g)
	g.SortFunc(s.byValue)
	done = true
	return g
}

// Stats returns the counters of the Sorter's holder.
func (s *Sorter[T]) Stats() *Stats {
	return s.buf.Stats()
}

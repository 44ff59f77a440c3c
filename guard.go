// Copyright (c) 2025 SciGo BorrowVec Library Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package borrowvec

import (
	"iter"

	"github.com/scigolib/borrowvec/internal/violation"
)

// Guard is the scoped view of a holder's storage, returned by Begin.
//
// A Guard is a small value; copies refer to the same scope. The pointers
// pushed through it must stay valid until Release, and slices returned by
// Get or Mut must not be used after Release.
//
// Every method panics with ErrReleased once the scope has ended.
type Guard[T any] struct {
	e     *Empty[T]
	epoch uint64
}

func (g Guard[T]) holder(op string) *Empty[T] {
	switch {
	case g.e == nil:
		fail(violation.New(violation.Guard, op, ErrReleased))
	case !g.e.out || g.e.epoch != g.epoch:
		fail(violation.StaleGuard(op, ErrReleased, g.epoch, g.e.epoch))
	}
	return g.e
}

// Get returns the current contents.
func (g Guard[T]) Get() []*T {
	return g.holder("get").live
}

// Mut returns the backing slice for in-place changes such as append,
// slices.Sort or reslicing. The pointer refers to the holder's own field:
// it must not be used after Release, or the idle holder would hold
// references again.
//
// After Mut, Release zeroes the whole backing array instead of only the
// prefix written through Push and Extend.
func (g Guard[T]) Mut() *[]*T {
	e := g.holder("mut")
	e.dirty = wholeArray
	return &e.live
}

// Len returns the number of references held.
func (g Guard[T]) Len() int {
	return len(g.holder("len").live)
}

// Cap returns the capacity of the backing array.
func (g Guard[T]) Cap() int {
	return cap(g.holder("cap").live)
}

// At returns the i-th reference.
func (g Guard[T]) At(i int) *T {
	return g.holder("at").live[i]
}

// Push appends refs in order.
func (g Guard[T]) Push(refs ...*T) {
	e := g.holder("push")
	pushRefs(&e.live, &e.dirty, refs)
}

// Extend appends every reference produced by seq.
func (g Guard[T]) Extend(seq iter.Seq[*T]) {
	e := g.holder("extend")
	extendRefs(&e.live, &e.dirty, seq)
}

// Truncate keeps the first n references.
func (g Guard[T]) Truncate(n int) {
	truncateRefs(&g.holder("truncate").live, n)
}

// SortFunc sorts the references in place with cmp.
func (g Guard[T]) SortFunc(cmp func(x, y *T) int) {
	sortRefs(g.holder("sort").live, cmp)
}

// Release truncates and erases the storage and hands it back to the
// holder. Releasing a guard twice panics with ErrReleased.
func (g Guard[T]) Release() {
	e := g.holder("release")
	e.endScope(g.epoch)
}

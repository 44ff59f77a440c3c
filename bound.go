// Copyright (c) 2025 SciGo BorrowVec Library Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package borrowvec

import (
	"iter"

	"github.com/scigolib/borrowvec/internal/violation"
)

// Bound is storage taken out of a holder for an open-ended period.
//
// Unlike a Guard it has no scope: it can be kept, passed around, and
// mutated until Clear converts it back into a holder. A Bound is not safe
// for concurrent use.
type Bound[T any] struct {
	buf      []*T
	startCap int
	dirty    int
	cleared  bool
	cfg      config
}

func (b *Bound[T]) check(op string) {
	if b.cleared {
		fail(violation.New(violation.Bound, op, ErrReleased))
	}
}

// Get returns the current contents.
func (b *Bound[T]) Get() []*T {
	b.check("get")
	return b.buf
}

// Mut returns the backing slice for in-place changes. The pointer must not
// be used after Clear. After Mut, Clear zeroes the whole backing array.
func (b *Bound[T]) Mut() *[]*T {
	b.check("mut")
	b.dirty = wholeArray
	return &b.buf
}

// Len returns the number of references held.
func (b *Bound[T]) Len() int {
	b.check("len")
	return len(b.buf)
}

// Cap returns the capacity of the backing array.
func (b *Bound[T]) Cap() int {
	b.check("cap")
	return cap(b.buf)
}

// At returns the i-th reference.
func (b *Bound[T]) At(i int) *T {
	b.check("at")
	return b.buf[i]
}

// Push appends refs in order.
func (b *Bound[T]) Push(refs ...*T) {
	b.check("push")
	pushRefs(&b.buf, &b.dirty, refs)
}

// Extend appends every reference produced by seq.
func (b *Bound[T]) Extend(seq iter.Seq[*T]) {
	b.check("extend")
	extendRefs(&b.buf, &b.dirty, seq)
}

// Truncate keeps the first n references.
func (b *Bound[T]) Truncate(n int) {
	b.check("truncate")
	truncateRefs(&b.buf, n)
}

// SortFunc sorts the references in place with cmp.
func (b *Bound[T]) SortFunc(cmp func(x, y *T) int) {
	b.check("sort")
	sortRefs(b.buf, cmp)
}

// Clear drops every reference, erases the storage and returns a new idle
// holder that owns it. The Bound is unusable afterwards.
//
// The returned holder keeps the configuration and Stats of the holder the
// Bound was taken from.
func (b *Bound[T]) Clear() *Empty[T] {
	b.check("clear")
	st := retire(b.buf[:0], b.startCap, b.dirty, &b.cfg)
	b.buf = nil
	b.cleared = true
	b.cfg.stats.Clears.Inc()
	return &Empty[T]{rest: st, cfg: b.cfg}
}

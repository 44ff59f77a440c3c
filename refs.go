// Copyright (c) 2025 SciGo BorrowVec Library Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package borrowvec

import (
	"fmt"
	"iter"
	"slices"
)

// wholeArray marks every slot of the backing array as possibly written,
// for when the caller had direct access to the slice through Mut.
const wholeArray = -1

// markDirty raises the dirty high-water mark to n.
func markDirty(dirty *int, n int) {
	if *dirty != wholeArray && n > *dirty {
		*dirty = n
	}
}

func pushRefs[T any](buf *[]*T, dirty *int, refs []*T) {
	*buf = append(*buf, refs...)
	markDirty(dirty, len(*buf))
}

func extendRefs[T any](buf *[]*T, dirty *int, seq iter.Seq[*T]) {
	for p := range seq {
		*buf = append(*buf, p)
	}
	markDirty(dirty, len(*buf))
}

// truncateRefs keeps the first n references and zeroes the dropped tail, so
// the dirty mark does not have to shrink.
func truncateRefs[T any](buf *[]*T, n int) {
	if n < 0 || n > len(*buf) {
		panic(fmt.Sprintf("borrowvec: truncate to %d out of range [0:%d]", n, len(*buf)))
	}
	clear((*buf)[n:])
	*buf = (*buf)[:n]
}

func sortRefs[T any](buf []*T, cmp func(x, y *T) int) {
	slices.SortFunc(buf, cmp)
}

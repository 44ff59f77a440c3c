// Package erase turns an emptied slice of pointers into storage that can no
// longer hand out any element.
//
// A Store is what an idle holder keeps between uses. It remembers only the
// allocation and its capacity. The slots written during the previous use are
// zeroed when the store is built, so nothing from that use stays reachable
// through it.
package erase

import (
	"github.com/pkg/errors"

	"github.com/scigolib/borrowvec/internal/violation"
)

// ErrNotEmpty is raised when a slice with live elements is handed to Erase.
var ErrNotEmpty = errors.New("cannot erase a non-empty slice")

// Store is an erased backing array for []*T.
//
// The zero value is a valid store with no allocation.
type Store[T any] struct {
	buf    []*T
	erased int
}

// Erase converts s into a Store. s must have zero length; a non-empty slice
// is a programming error and panics.
//
// dirty bounds the prefix of the backing array that may still hold
// pointers: slots [0, dirty) are zeroed and the rest are assumed zero
// already. A negative dirty, or one above cap(s), zeroes the whole array.
func Erase[T any](s []*T, dirty int) Store[T] {
	if len(s) != 0 {
		panic(errors.WithStack(violation.New(violation.Store, "erase", errors.Wrapf(ErrNotEmpty, "len=%d", len(s)))))
	}
	if dirty < 0 || dirty > cap(s) {
		dirty = cap(s)
	}
	clear(s[:dirty])
	return Store[T]{buf: s[:0], erased: dirty}
}

// Cap returns the capacity of the retained allocation.
func (s *Store[T]) Cap() int {
	return cap(s.buf)
}

// Erased returns how many slots were zeroed when the store was built.
func (s *Store[T]) Erased() int {
	return s.erased
}

// Attach moves the allocation out of the store as an empty slice. The store
// is left without an allocation.
func (s *Store[T]) Attach() []*T {
	buf := s.buf[:0]
	*s = Store[T]{}
	return buf
}

// Drop discards the allocation when its capacity exceeds maxCap. A maxCap
// of zero or less never drops. It reports whether the allocation was dropped.
func Drop[T any](s Store[T], maxCap int) (Store[T], bool) {
	if maxCap <= 0 || cap(s.buf) <= maxCap {
		return s, false
	}
	return Store[T]{erased: s.erased}, true
}

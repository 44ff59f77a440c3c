// Copyright (c) 2025 SciGo BorrowVec Library Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Package borrowvec provides reusable scratch storage for short-lived
// slices of pointers into caller data.
//
// Code that builds a []*T once per call or per loop iteration pays for a
// fresh allocation every time. An Empty holder keeps one backing array
// between uses instead. Each use checks the storage out, fills it with
// pointers that are valid for that use only, and hands it back. On the
// way back the slice is truncated and every slot is zeroed, so the only
// thing carried from one use to the next is the capacity.
//
// There are two ways to use the storage:
//
//   - Begin returns a Guard scoped to the current call. Release (normally
//     deferred) returns the storage to the holder. With wraps both.
//   - Take converts the holder into a Bound that can be kept as long as
//     needed. Clear turns it back into a holder.
//
// A holder has exactly one backing array and must not be shared between
// goroutines. Protocol violations (using a holder while a guard is alive,
// releasing twice, using storage after it was returned) panic immediately.
//
// Example:
//
//	var scratch = borrowvec.New[Row]()
//
//	func visible(rows []Row) int {
//	    g := scratch.Begin()
//	    defer g.Release()
//	    for i := range rows {
//	        if rows[i].Visible {
//	            g.Push(&rows[i])
//	        }
//	    }
//	    return g.Len()
//	}
package borrowvec

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/scigolib/borrowvec/internal/erase"
	"github.com/scigolib/borrowvec/internal/violation"
)

// Empty holds an erased backing array between uses.
//
// While idle it holds no element at all; only the capacity of its
// allocation is observable. New applies options; the zero value is an idle
// holder with no allocation, a private Stats and no logging.
type Empty[T any] struct {
	rest erase.Store[T]

	// live is the checked-out slice while a guard is alive.
	live     []*T
	startCap int
	// dirty is the high-water mark of slots written during the current
	// scope, or wholeArray after Mut.
	dirty    int
	out      bool
	consumed bool

	// epoch is bumped every time checked-out storage comes back. A guard is
	// valid only while its epoch matches.
	epoch uint64

	cfg config
}

// New creates an idle holder. Without WithInitialCapacity it has no allocation.
func New[T any](opts ...Option) *Empty[T] {
	cfg := newConfig(opts)
	e := &Empty[T]{cfg: cfg}
	if cfg.initialCap > 0 {
		e.rest = erase.Erase(make([]*T, 0, cfg.initialCap), 0)
	}
	cfg.stats.Capacity.Store(int64(e.rest.Cap()))
	return e
}

// Begin checks the storage out into a Guard for the current scope.
//
// The holder cannot be used again until the guard is released; doing so
// panics with ErrCheckedOut.
func (e *Empty[T]) Begin() Guard[T] {
	e.mustBeIdle("begin scope")
	e.ensureConfig()
	e.live = e.rest.Attach()
	e.startCap = cap(e.live)
	e.dirty = 0
	e.out = true
	return Guard[T]{e: e, epoch: e.epoch}
}

// With runs fn with a fresh guard and releases it afterwards, whether fn
// returns normally, returns an error, or panics. fn must not release the
// guard itself.
func (e *Empty[T]) With(fn func(g Guard[T]) error) error {
	g := e.Begin()
	defer e.endScope(g.epoch)
	return fn(g)
}

// Take converts the holder into a Bound. The holder is consumed: any later
// call on it panics with ErrConsumed.
func (e *Empty[T]) Take() *Bound[T] {
	e.mustBeIdle("take")
	e.ensureConfig()
	e.consumed = true
	buf := e.rest.Attach()
	e.cfg.stats.Binds.Inc()
	return &Bound[T]{
		buf:      buf,
		startCap: cap(buf),
		cfg:      e.cfg,
	}
}

// Cap returns the capacity of the idle allocation.
func (e *Empty[T]) Cap() int {
	e.mustBeIdle("cap")
	return e.rest.Cap()
}

// Stats returns the counters this holder reports into.
func (e *Empty[T]) Stats() *Stats {
	e.ensureConfig()
	return e.cfg.stats
}

// ensureConfig fills in the defaults New would have set, for zero-value holders.
func (e *Empty[T]) ensureConfig() {
	if e.cfg.stats == nil {
		e.cfg.stats = &Stats{}
	}
	if e.cfg.logger == nil {
		e.cfg.logger = log.NewNopLogger()
	}
}

func (e *Empty[T]) mustBeIdle(op string) {
	switch {
	case e.consumed:
		fail(violation.New(violation.Holder, op, ErrConsumed))
	case e.out:
		fail(violation.New(violation.Holder, op, ErrCheckedOut))
	}
}

// endScope returns the checked-out storage if the scope with the given
// epoch is still open.
func (e *Empty[T]) endScope(epoch uint64) {
	if !e.out || e.epoch != epoch {
		return
	}
	e.rest = retire(e.live[:0], e.startCap, e.dirty, &e.cfg)
	e.live = nil
	e.out = false
	e.epoch++
	e.cfg.stats.Scopes.Inc()
}

// retire erases buf and applies the retention bound. buf must already be
// truncated; dirty bounds the slots that may still hold pointers.
func retire[T any](buf []*T, startCap, dirty int, cfg *config) erase.Store[T] {
	st := erase.Erase(buf, dirty)
	if c := st.Cap(); c > startCap {
		cfg.stats.Grows.Inc()
		level.Debug(cfg.logger).Log("msg", "scratch storage grew", "from", startCap, "to", c)
	}

	st, dropped := erase.Drop(st, cfg.maxRetained)
	if dropped {
		cfg.stats.Drops.Inc()
		level.Debug(cfg.logger).Log("msg", "dropped oversized scratch storage", "cap", cap(buf), "max", cfg.maxRetained)
	}
	cfg.stats.Capacity.Store(int64(st.Cap()))
	return st
}

// Copyright (c) 2025 SciGo BorrowVec Library Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package borrowvec

import (
	"fmt"

	"go.uber.org/atomic"
)

// Stats counts storage transitions of one or more holders.
//
// A holder itself is single-goroutine, but Stats may be read from any
// goroutine (for example by a metrics scrape).
type Stats struct {
	Scopes atomic.Uint64 // guards released
	Binds  atomic.Uint64 // holders converted by Take
	Clears atomic.Uint64 // bounds cleared back into holders
	Grows  atomic.Uint64 // uses that ended with a larger allocation than they started with
	Drops  atomic.Uint64 // allocations discarded by WithMaxRetainedCapacity

	// Capacity is the capacity of the most recently retained allocation.
	Capacity atomic.Int64
}

// StatsSnapshot is a point-in-time copy of Stats.
type StatsSnapshot struct {
	Scopes   uint64
	Binds    uint64
	Clears   uint64
	Grows    uint64
	Drops    uint64
	Capacity int64
}

// Snapshot loads every counter.
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Scopes:   s.Scopes.Load(),
		Binds:    s.Binds.Load(),
		Clears:   s.Clears.Load(),
		Grows:    s.Grows.Load(),
		Drops:    s.Drops.Load(),
		Capacity: s.Capacity.Load(),
	}
}

// String formats the snapshot for logs and debugging.
func (s StatsSnapshot) String() string {
	return fmt.Sprintf("scopes=%d binds=%d clears=%d grows=%d drops=%d capacity=%d",
		s.Scopes, s.Binds, s.Clears, s.Grows, s.Drops, s.Capacity)
}

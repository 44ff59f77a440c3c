// Copyright (c) 2025 SciGo BorrowVec Library Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package borrowvec

import (
	"github.com/go-kit/log"
)

// Option configures a holder created by New.
//
// Example:
//
//	h := borrowvec.New[Row](
//	    borrowvec.WithInitialCapacity(64),
//	    borrowvec.WithMaxRetainedCapacity(4096),
//	)
type Option func(*config)

type config struct {
	initialCap  int
	maxRetained int
	logger      log.Logger
	stats       *Stats
}

func newConfig(opts []Option) config {
	cfg := config{
		logger: log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.stats == nil {
		cfg.stats = &Stats{}
	}
	return cfg
}

// WithInitialCapacity preallocates room for n references.
// Negative values are treated as zero.
func WithInitialCapacity(n int) Option {
	return func(c *config) {
		c.initialCap = max(n, 0)
	}
}

// WithMaxRetainedCapacity bounds the allocation a holder keeps between uses.
//
// When the storage comes back with a capacity above n, it is dropped and the
// next use starts from an empty slice. Zero (the default) keeps every
// allocation regardless of size.
func WithMaxRetainedCapacity(n int) Option {
	return func(c *config) {
		c.maxRetained = max(n, 0)
	}
}

// WithLogger sets the logger used for debug events about the storage
// (growth and dropped allocations). The default discards everything.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithStats makes the holder report into s instead of a private Stats.
// Several holders may share one Stats.
func WithStats(s *Stats) Option {
	return func(c *config) {
		c.stats = s
	}
}

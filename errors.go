// Copyright (c) 2025 SciGo BorrowVec Library Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package borrowvec

import (
	"github.com/pkg/errors"

	"github.com/scigolib/borrowvec/internal/violation"
)

// Ownership violations. They are raised as panics: each one means the
// calling code broke the holder/guard protocol, not that an operation
// failed for an environmental reason.
var (
	// ErrCheckedOut is raised when a holder is used while a guard taken from it is alive.
	ErrCheckedOut = errors.New("holder is checked out by a live guard")

	// ErrReleased is raised when a guard or bound is used after its storage went back.
	ErrReleased = errors.New("storage already released")

	// ErrConsumed is raised when a holder is used after Take.
	ErrConsumed = errors.New("holder was consumed by Take")
)

// fail panics with err and the caller's stack.
func fail(err *violation.Error) {
	panic(errors.WithStack(err))
}

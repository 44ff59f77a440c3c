// Package violation describes broken ownership invariants of scratch storage.
package violation

import "fmt"

// Subject names the piece of storage whose invariant was broken.
type Subject string

// Subjects.
const (
	Holder Subject = "holder"
	Guard  Subject = "guard"
	Bound  Subject = "bound"
	Store  Subject = "store"
)

// Error records an operation attempted on storage in the wrong state.
//
// For a guard that outlived its scope, GuardEpoch is the scope it was
// issued for and HolderEpoch the scope its holder is at now.
type Error struct {
	Subject Subject
	Op      string
	Cause   error

	Stale       bool
	GuardEpoch  uint64
	HolderEpoch uint64
}

// New creates an Error for subject.
func New(subject Subject, op string, cause error) *Error {
	return &Error{Subject: subject, Op: op, Cause: cause}
}

// StaleGuard creates an Error for a guard issued at guardEpoch used while
// its holder is at holderEpoch.
func StaleGuard(op string, cause error, guardEpoch, holderEpoch uint64) *Error {
	return &Error{
		Subject:     Guard,
		Op:          op,
		Cause:       cause,
		Stale:       true,
		GuardEpoch:  guardEpoch,
		HolderEpoch: holderEpoch,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Stale {
		return fmt.Sprintf("%s %s: %v (guard epoch %d, holder epoch %d)",
			e.Subject, e.Op, e.Cause, e.GuardEpoch, e.HolderEpoch)
	}
	return fmt.Sprintf("%s %s: %v", e.Subject, e.Op, e.Cause)
}

// Unwrap returns the sentinel that describes the broken invariant.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Package checked mirrors the rawmem operation surface with every documented
// precondition validated. Where rawmem trusts the caller and leaves
// violations undefined, this package reports them as errors instead.
//
// The intended split: tests and debug builds run against this package,
// production code uses rawmem directly. Both layers expose the same
// operation set and agree on all valid inputs.
//
// A checked descriptor remembers the real extent of the object it was
// derived from, captured at conversion time when the extent is knowable.
// That is the reference every bounds decision is made against; the declared
// region length stays advisory exactly as in the raw layer.
package checked

import "errors"

var (
	// ErrBoundsViolation reports arithmetic or an index that escapes the
	// valid extent of the originating object.
	ErrBoundsViolation = errors.New("bounds violation")

	// ErrOverlapViolation reports overlapping spans passed to an operation
	// that requires disjoint ones.
	ErrOverlapViolation = errors.New("overlap violation")
)

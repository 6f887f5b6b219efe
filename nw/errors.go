// SPDX-License-Identifier: MIT
// Package nw: sentinel error set.
// Every message is prefixed with "nw: ". Context is added at the failure site
// with fmt.Errorf("...: %w", ErrX); callers match with errors.Is.
//
// Two families exist:
//   - ErrInvalidInput: the caller handed in structurally invalid data.
//   - ErrInternalConsistency: a broken invariant inside fill, backtrace or
//     reconstruction. These are implementation bugs, never user errors, and
//     are always returned (no partial result, no silent repair).

package nw

import "errors"

var (
	// ErrInvalidInput indicates structurally invalid input, e.g. a sequence
	// that is not valid UTF-8 or a non-printable gap symbol.
	// Scores are never rejected: any integer triple is valid configuration.
	ErrInvalidInput = errors.New("nw: invalid input")

	// ErrInternalConsistency indicates a broken invariant (score regression,
	// no path to the terminal cell, invalid reconstruction step).
	ErrInternalConsistency = errors.New("nw: internal consistency violated")

	// ErrNoPath signals that no predecessor chain links the terminal cell to
	// the origin. Always reported together with ErrInternalConsistency.
	ErrNoPath = errors.New("nw: no path reaches the terminal cell")

	// ErrInvalidStep signals a path step that is not a unit Right, Down or
	// Diagonal move. Always reported together with ErrInternalConsistency.
	ErrInvalidStep = errors.New("nw: invalid path step")

	// ErrNilPair indicates that a nil *Pair was used.
	ErrNilPair = errors.New("nw: nil pair")
)

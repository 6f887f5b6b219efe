// SPDX-License-Identifier: MIT
// Package scorematrix: sentinel error set.
// Every public method returns one of these sentinels, wrapped with method and
// coordinate context via fmt.Errorf("...: %w"). Callers match with errors.Is.

package scorematrix

import "errors"

var (
	// ErrBadShape is returned when a requested sequence length is negative.
	ErrBadShape = errors.New("scorematrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set/Score MUST return this, not panic.
	ErrOutOfRange = errors.New("scorematrix: index out of range")

	// ErrUnset indicates a read of a cell whose score has not been settled yet.
	ErrUnset = errors.New("scorematrix: cell score unknown")

	// ErrScoreRegression signals an attempt to lower an already settled score.
	// The matrix only ever improves; a regression means the recurrence or the
	// tie-break produced an inconsistent value.
	ErrScoreRegression = errors.New("scorematrix: score regression")

	// ErrFrozen indicates a write after Freeze.
	ErrFrozen = errors.New("scorematrix: matrix is read-only")

	// ErrNilMatrix indicates that a nil *Matrix receiver was used.
	ErrNilMatrix = errors.New("scorematrix: nil receiver")
)

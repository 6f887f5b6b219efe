// SPDX-License-Identifier: MIT

// Package nw defines moves, candidates, paths and results for global alignment.
package nw

import (
	"github.com/katalvlaran/seqalign/scorematrix"
)

// Move is one transition through the score matrix.
//
// The numeric order of the constants IS the tie-break order: when two
// candidates score the same, the one with the smaller Move value wins.
//
//   - Diagonal — consume one symbol of A and one of B (match or mismatch).
//   - Down     — consume one symbol of A, gap in B.
//   - Right    — consume one symbol of B, gap in A.
type Move int

const (
	// Diagonal advances row and column by one.
	Diagonal Move = iota

	// Down advances the row by one.
	Down

	// Right advances the column by one.
	Right
)

// tieOrder lists moves from highest to lowest priority.
var tieOrder = [...]Move{Diagonal, Down, Right}

// String returns the move name.
func (mv Move) String() string {
	switch mv {
	case Diagonal:
		return "Diagonal"
	case Down:
		return "Down"
	case Right:
		return "Right"
	default:
		return "Move(?)"
	}
}

// delta returns the (row, col) offset of the move.
func (mv Move) delta() (int, int) {
	switch mv {
	case Diagonal:
		return 1, 1
	case Down:
		return 1, 0
	default:
		return 0, 1
	}
}

// Scoring is the linear scoring scheme.
//
// Fields:
//   - Match    — added for a Diagonal move over equal symbols.
//   - Mismatch — added for a Diagonal move over different symbols.
//   - Gap      — added for every Right or Down move.
//
// Any integers are accepted. A negative Match or a positive Gap is unusual
// but mathematically fine.
type Scoring struct {
	Match    int
	Mismatch int
	Gap      int
}

// DefaultScoring returns the classic 1 / -1 / -2 DNA scheme.
func DefaultScoring() Scoring {
	return Scoring{Match: DefaultMatch, Mismatch: DefaultMismatch, Gap: DefaultGap}
}

// Candidate is a move evaluated from a settled cell.
// Score is the tentative score of To: score(From) + cost(Move).
type Candidate struct {
	Move  Move
	From  scorematrix.Cell
	To    scorematrix.Cell
	Score int
}

// Path is an ordered walk of cells from the origin to the terminal cell.
type Path []scorematrix.Cell

// Alignment is the externally visible result: two gapped sequences of equal
// rune length and the optimal global score.
type Alignment struct {
	AlignedA string
	AlignedB string
	Score    int
}

// Result is an Alignment together with the artefacts that produced it.
// Matrix is frozen and Path runs origin → terminal; both are read-only.
type Result struct {
	Alignment

	Matrix *scorematrix.Matrix
	Path   Path
}

// RawMatrix returns a copy of the score table for external pretty-printing.
func (r *Result) RawMatrix() [][]scorematrix.Entry {
	return r.Matrix.Raw()
}

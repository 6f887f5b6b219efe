// SPDX-License-Identifier: MIT

package nw

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/seqalign/scorematrix"
)

// candidate evaluates a single forward move out of `from`.
// ok is false when the move would leave the matrix.
//
// The Diagonal cost compares the NEXT symbols, i.e. the ones the move
// consumes: a[from.Row] and b[from.Col] in 0-based rune indices. Comparing
// the symbols of the current cell instead is an off-by-one.
func (p *Pair) candidate(base int, from scorematrix.Cell, mv Move) (Candidate, bool) {
	dr, dc := mv.delta()
	to := scorematrix.Cell{Row: from.Row + dr, Col: from.Col + dc}
	if to.Row > len(p.a) || to.Col > len(p.b) {
		return Candidate{}, false
	}

	score := base + p.sc.Gap
	if mv == Diagonal {
		score = base + p.diagonalCost(from.Row, from.Col)
	}

	return Candidate{Move: mv, From: from, To: to, Score: score}, true
}

// Candidates returns the valid forward moves from a settled cell, ordered by
// descending tentative score. Ties keep the fixed order Diagonal > Down > Right.
//
// Validity:
//   - Right    iff col+1 <= lenB
//   - Down     iff row+1 <= lenA
//   - Diagonal iff both hold
//
// Errors:
//   - ErrInternalConsistency (wrapping scorematrix.ErrUnset / ErrOutOfRange)
//     if `from` is not a settled cell of m.
//
// Complexity: O(1).
func (p *Pair) Candidates(m *scorematrix.Matrix, from scorematrix.Cell) ([]Candidate, error) {
	if p == nil {
		return nil, ErrNilPair
	}
	base, err := m.Score(from.Row, from.Col)
	if err != nil {
		return nil, fmt.Errorf("candidates from %s: %w: %w", from, ErrInternalConsistency, err)
	}

	out := make([]Candidate, 0, len(tieOrder))
	for _, mv := range tieOrder {
		if c, ok := p.candidate(base, from, mv); ok {
			out = append(out, c)
		}
	}
	// Stable sort preserves tieOrder among equal scores.
	slices.SortStableFunc(out, func(x, y Candidate) int {
		return cmp.Compare(y.Score, x.Score)
	})

	return out, nil
}

// Fill builds and freezes the score matrix.
//
// Algorithm (iterative forward relaxation):
//  1. Allocate the matrix with the gap boundary row/column.
//  2. Visit cells in row-major order. Every predecessor of a cell
//     (up, left, up-left) precedes it in this order, so the cell is settled
//     before it is expanded.
//  3. For each candidate of the cell, in Candidates order, write the
//     destination when it is unknown or candidate.Score >= its current score.
//  4. Freeze and return.
//
// This is the bottom-up form of the recurrence
//
//	S[i][j] = max(S[i-1][j-1] + cost(a[i-1], b[j-1]),
//	              S[i-1][j]   + gap,
//	              S[i][j-1]   + gap)
//
// with no recursion and no state outside the returned matrix.
//
// Errors:
//   - ErrInternalConsistency — a write was refused by the matrix.
//
// Complexity: O(lenA·lenB) time and memory.
func (p *Pair) Fill() (*scorematrix.Matrix, error) {
	if p == nil {
		return nil, ErrNilPair
	}
	m, err := scorematrix.New(len(p.a), len(p.b), p.sc.Gap)
	if err != nil {
		return nil, fmt.Errorf("fill: %w: %w", ErrInternalConsistency, err)
	}

	var row, col int
	for row = 0; row < m.Rows(); row++ {
		for col = 0; col < m.Cols(); col++ {
			cands, err := p.Candidates(m, scorematrix.Cell{Row: row, Col: col})
			if err != nil {
				return nil, err
			}
			for _, c := range cands {
				if err = relax(m, c); err != nil {
					return nil, fmt.Errorf("fill %s via %s: %w: %w", c.To, c.Move, ErrInternalConsistency, err)
				}
			}
		}
	}
	m.Freeze()

	return m, nil
}

// relax writes c.Score into c.To when the cell is unknown or c.Score is not
// lower than the settled value.
func relax(m *scorematrix.Matrix, c Candidate) error {
	cur, err := m.At(c.To.Row, c.To.Col)
	if err != nil {
		return err
	}
	if cur.Known && c.Score < cur.Score {
		return nil
	}

	return m.Set(c.To.Row, c.To.Col, c.Score)
}

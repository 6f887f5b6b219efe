// SPDX-License-Identifier: MIT

package nw

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/seqalign/scorematrix"
)

// Backtrace recovers one optimal path through a filled matrix.
//
// Starting at the terminal cell (lenA, lenB), it steps to the first
// predecessor, in the order Diagonal, Down, Right, whose settled score plus
// the cost of the connecting move reproduces the current cell's score. It
// stops at the origin and returns the walk in forward order.
//
// Using the same priority as Candidates keeps the result deterministic:
// equal inputs always give the same path.
//
// Errors:
//   - ErrInternalConsistency + ErrNoPath — some cell has no predecessor that
//     reproduces its score (the matrix was not produced by Fill).
//   - ErrInternalConsistency — the matrix shape does not match the pair.
//
// Complexity: O(lenA+lenB).
func (p *Pair) Backtrace(m *scorematrix.Matrix) (Path, error) {
	if p == nil {
		return nil, ErrNilPair
	}
	if m == nil || m.Rows() != len(p.a)+1 || m.Cols() != len(p.b)+1 {
		return nil, fmt.Errorf("backtrace: matrix shape does not match sequences: %w", ErrInternalConsistency)
	}

	cur := m.Terminal()
	path := Path{cur}
	for cur != scorematrix.Origin {
		score, err := m.Score(cur.Row, cur.Col)
		if err != nil {
			return nil, fmt.Errorf("backtrace at %s: %w: %w", cur, ErrInternalConsistency, err)
		}
		prev, ok := p.predecessor(m, cur, score)
		if !ok {
			return nil, fmt.Errorf("backtrace stuck at %s: %w: %w", cur, ErrInternalConsistency, ErrNoPath)
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}

// predecessor returns the highest-priority cell whose forward candidate into
// `to` scores exactly `score`.
func (p *Pair) predecessor(m *scorematrix.Matrix, to scorematrix.Cell, score int) (scorematrix.Cell, bool) {
	for _, mv := range tieOrder {
		dr, dc := mv.delta()
		from := scorematrix.Cell{Row: to.Row - dr, Col: to.Col - dc}
		if from.Row < 0 || from.Col < 0 {
			continue
		}
		base, err := m.Score(from.Row, from.Col)
		if err != nil {
			continue
		}
		if c, ok := p.candidate(base, from, mv); ok && c.To == to && c.Score == score {
			return from, true
		}
	}

	return scorematrix.Cell{}, false
}

// StepMove classifies one step of a path.
// Returns ErrInvalidStep (with ErrInternalConsistency) for anything other
// than a unit Right, Down or Diagonal move.
func StepMove(prev, next scorematrix.Cell) (Move, error) {
	dr, dc := next.Row-prev.Row, next.Col-prev.Col
	switch {
	case dr == 1 && dc == 1:
		return Diagonal, nil
	case dr == 1 && dc == 0:
		return Down, nil
	case dr == 0 && dc == 1:
		return Right, nil
	default:
		return 0, fmt.Errorf("step %s→%s: %w: %w", prev, next, ErrInternalConsistency, ErrInvalidStep)
	}
}

// Validate checks that the path runs from the origin to (lenA, lenB) using
// only unit moves.
//
// Errors:
//   - ErrNoPath — the path is empty, does not start at the origin or does
//     not end at the terminal cell.
//   - ErrInvalidStep — some step is not a unit move.
//
// Both are reported together with ErrInternalConsistency.
func (pt Path) Validate(lenA, lenB int) error {
	terminal := scorematrix.Cell{Row: lenA, Col: lenB}
	if len(pt) == 0 {
		return fmt.Errorf("empty path: %w: %w", ErrInternalConsistency, ErrNoPath)
	}
	if pt[0] != scorematrix.Origin {
		return fmt.Errorf("path starts at %s: %w: %w", pt[0], ErrInternalConsistency, ErrNoPath)
	}
	if pt[len(pt)-1] != terminal {
		return fmt.Errorf("path ends at %s, want %s: %w: %w", pt[len(pt)-1], terminal, ErrInternalConsistency, ErrNoPath)
	}
	for i := 1; i < len(pt); i++ {
		if _, err := StepMove(pt[i-1], pt[i]); err != nil {
			return err
		}
	}

	return nil
}

// Moves returns the sequence of moves along the path.
func (pt Path) Moves() ([]Move, error) {
	if len(pt) == 0 {
		return nil, nil
	}
	out := make([]Move, 0, len(pt)-1)
	for i := 1; i < len(pt); i++ {
		mv, err := StepMove(pt[i-1], pt[i])
		if err != nil {
			return nil, err
		}
		out = append(out, mv)
	}

	return out, nil
}

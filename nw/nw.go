// SPDX-License-Identifier: MIT

package nw

import (
	"fmt"
)

// Align computes an optimal global alignment of seqA and seqB.
// It is a convenience wrapper over AlignScoring that drops the artefacts.
//
// Example:
//
//	al, err := nw.Align("ACGT", "ACGT", 1, -1, -2)
//	// al.AlignedA == "ACGT", al.AlignedB == "ACGT", al.Score == 4
func Align(seqA, seqB string, match, mismatch, gap int, opts ...Option) (Alignment, error) {
	res, err := AlignScoring(seqA, seqB, Scoring{Match: match, Mismatch: mismatch, Gap: gap}, opts...)
	if err != nil {
		return Alignment{}, err
	}

	return res.Alignment, nil
}

// AlignScoring runs the full pipeline and keeps the frozen matrix and path.
//
// Pipeline (each stage consumes only the previous stage's output):
//  1. NewPair     — decode and validate input.
//  2. Fill        — build the score matrix.
//  3. Backtrace   — one optimal origin → terminal path.
//  4. Reconstruct — two gapped sequences.
//
// The score is the terminal cell's settled value. Either a complete, valid
// Result is returned or an error; there is no partial result.
//
// Errors:
//   - ErrInvalidInput — see NewPair.
//   - ErrInternalConsistency — a broken invariant in stages 2–4.
//
// Complexity: O(|A|·|B|) time and memory.
func AlignScoring(seqA, seqB string, sc Scoring, opts ...Option) (*Result, error) {
	p, err := NewPair(seqA, seqB, sc, opts...)
	if err != nil {
		return nil, err
	}

	return p.Align()
}

// Align runs Fill, Backtrace and Reconstruct on a prepared pair.
func (p *Pair) Align() (*Result, error) {
	if p == nil {
		return nil, ErrNilPair
	}
	m, err := p.Fill()
	if err != nil {
		return nil, err
	}
	path, err := p.Backtrace(m)
	if err != nil {
		return nil, err
	}
	alignedA, alignedB, err := p.Reconstruct(path)
	if err != nil {
		return nil, err
	}
	t := m.Terminal()
	score, err := m.Score(t.Row, t.Col)
	if err != nil {
		return nil, fmt.Errorf("terminal score: %w: %w", ErrInternalConsistency, err)
	}

	return &Result{
		Alignment: Alignment{AlignedA: alignedA, AlignedB: alignedB, Score: score},
		Matrix:    m,
		Path:      path,
	}, nil
}

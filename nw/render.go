// SPDX-License-Identifier: MIT

package nw

import (
	"strings"
)

// Reconstruct walks a path and emits the two gapped sequences.
//
// Per step prev → next:
//   - Diagonal: a[next.Row-1] and b[next.Col-1] (match or mismatch alike)
//   - Down:     a[next.Row-1] and the gap symbol
//   - Right:    the gap symbol and b[next.Col-1]
//
// The path is validated first, so a path that misses the origin or the
// terminal cell, or contains a non-unit step, is rejected before any output
// is produced.
//
// Errors:
//   - ErrInternalConsistency with ErrNoPath or ErrInvalidStep.
//
// Complexity: O(len(path)).
func (p *Pair) Reconstruct(path Path) (alignedA, alignedB string, err error) {
	if p == nil {
		return "", "", ErrNilPair
	}
	if err = path.Validate(len(p.a), len(p.b)); err != nil {
		return "", "", err
	}

	gap := p.opts.gapSymbol
	var sa, sb strings.Builder
	sa.Grow(len(path))
	sb.Grow(len(path))
	for i := 1; i < len(path); i++ {
		next := path[i]
		mv, err := StepMove(path[i-1], next)
		if err != nil {
			return "", "", err
		}
		switch mv {
		case Diagonal:
			sa.WriteRune(p.a[next.Row-1])
			sb.WriteRune(p.b[next.Col-1])
		case Down:
			sa.WriteRune(p.a[next.Row-1])
			sb.WriteRune(gap)
		case Right:
			sa.WriteRune(gap)
			sb.WriteRune(p.b[next.Col-1])
		}
	}

	return sa.String(), sb.String(), nil
}

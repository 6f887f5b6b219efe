// SPDX-License-Identifier: MIT

package nw

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Pair is a prepared, immutable alignment problem: two symbol sequences, the
// scoring scheme and the resolved options. All phases (Fill, Backtrace,
// Reconstruct) are methods on Pair and never mutate it.
type Pair struct {
	a, b []rune
	sc   Scoring
	opts options
}

// NewPair decodes both sequences into symbols and resolves options.
// Stage 1 (Validate): both sequences must be valid UTF-8; the gap symbol
// must be printable and must not occur in either sequence.
// Stage 2 (Prepare): decode into rune slices.
//
// Empty sequences are valid.
//
// Errors:
//   - ErrInvalidInput — invalid UTF-8, non-printable gap symbol, or a
//     sequence that already contains the gap symbol.
func NewPair(seqA, seqB string, sc Scoring, opts ...Option) (*Pair, error) {
	o := gatherOptions(opts...)
	if !utf8.ValidString(seqA) {
		return nil, fmt.Errorf("sequence A is not valid UTF-8: %w", ErrInvalidInput)
	}
	if !utf8.ValidString(seqB) {
		return nil, fmt.Errorf("sequence B is not valid UTF-8: %w", ErrInvalidInput)
	}
	if !unicode.IsPrint(o.gapSymbol) {
		return nil, fmt.Errorf("gap symbol %U is not printable: %w", o.gapSymbol, ErrInvalidInput)
	}
	// A gap symbol inside the input would make the output ambiguous.
	if strings.ContainsRune(seqA, o.gapSymbol) {
		return nil, fmt.Errorf("sequence A contains gap symbol %q: %w", o.gapSymbol, ErrInvalidInput)
	}
	if strings.ContainsRune(seqB, o.gapSymbol) {
		return nil, fmt.Errorf("sequence B contains gap symbol %q: %w", o.gapSymbol, ErrInvalidInput)
	}

	return &Pair{a: []rune(seqA), b: []rune(seqB), sc: sc, opts: o}, nil
}

// A returns a copy of the symbols of sequence A.
func (p *Pair) A() []rune {
	return append([]rune(nil), p.a...)
}

// B returns a copy of the symbols of sequence B.
func (p *Pair) B() []rune {
	return append([]rune(nil), p.b...)
}

// Scoring returns the scoring scheme of the pair.
func (p *Pair) Scoring() Scoring {
	return p.sc
}

// GapSymbol returns the rune used for gaps in reconstructed output.
func (p *Pair) GapSymbol() rune {
	return p.opts.gapSymbol
}

// Same reports whether two symbols are equal under the pair's case policy.
// Display code uses it to mark matches the same way the score counts them.
func (p *Pair) Same(x, y rune) bool {
	if x == y {
		return true
	}
	if p.opts.foldCase {
		return unicode.ToLower(x) == unicode.ToLower(y)
	}

	return false
}

// diagonalCost is the cost of consuming a[i] and b[j] (0-based) together.
func (p *Pair) diagonalCost(i, j int) int {
	if p.Same(p.a[i], p.b[j]) {
		return p.sc.Match
	}

	return p.sc.Mismatch
}

// SPDX-License-Identifier: MIT

// Package nw: functional configuration for the alignment engine.
// This file defines:
//   - documented defaults (constants),
//   - Option / options (functional options with unexported state),
//   - gatherOptions helper that applies user options over defaults.
//
// Option values are validated when a Pair is built (NewPair), so a bad gap
// symbol coming from configuration surfaces as ErrInvalidInput instead of a
// panic.
package nw

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMatch is the reward for aligning two equal symbols.
	DefaultMatch = 1

	// DefaultMismatch is the penalty for aligning two different symbols.
	DefaultMismatch = -1

	// DefaultGap is the penalty for every inserted gap.
	DefaultGap = -2

	// DefaultGapSymbol is rendered where a sequence has no symbol.
	DefaultGapSymbol = '-'

	// DefaultFoldCase keeps symbol comparison case-sensitive.
	DefaultFoldCase = false
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	gapSymbol rune // DefaultGapSymbol
	foldCase  bool // DefaultFoldCase
}

// WithGapSymbol sets the rune emitted for gaps in the aligned output.
// The rune must be printable and absent from both sequences; NewPair
// returns ErrInvalidInput otherwise.
//
// Example:
//
//	al, _ := nw.Align("ACGT", "AGT", 1, -1, -2, nw.WithGapSymbol('.'))
//	// al.AlignedB == "A.GT"
func WithGapSymbol(r rune) Option {
	return func(o *options) { o.gapSymbol = r }
}

// WithFoldCase compares symbols with simple Unicode case folding, so 'a'
// matches 'A'. Output keeps the original case of each input.
func WithFoldCase() Option {
	return func(o *options) { o.foldCase = true }
}

// WithCaseSensitive restores exact symbol comparison (default).
func WithCaseSensitive() Option {
	return func(o *options) { o.foldCase = false }
}

// gatherOptions applies user options on top of the defaults.
// Nil options are skipped.
func gatherOptions(user ...Option) options {
	o := options{
		gapSymbol: DefaultGapSymbol,
		foldCase:  DefaultFoldCase,
	}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

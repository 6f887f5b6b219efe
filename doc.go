// SPDX-License-Identifier: MIT

// Package seqalign is a small toolkit for global pairwise sequence
// alignment: the Needleman–Wunsch score matrix, a deterministic backtrace,
// and reconstruction of the gapped output.
//
// 🚀 What is in the box?
//
//	• scorematrix — the DP table of optional integer scores, monotone writes
//	• nw          — scoring, fill, backtrace, reconstruction and Align
//	• display     — text rendering of matrices and alignments
//	• config      — scoring defaults from SEQALIGN_* environment variables
//	• cmd/seqalign — a cobra CLI over all of the above
//
// ✨ Why it is built this way:
//
//   - Iterative bottom-up fill: no recursion, no shared mutable state
//   - Fixed tie-break order Diagonal > Down > Right: same input, same output
//   - Broken invariants surface as errors (nw.ErrInternalConsistency),
//     never as partial results
//
// Quick example:
//
//	al, _ := nw.Align("ATCGT", "TGGTG", 1, -1, -2)
//	// ATCGT-
//	// -TGGTG   score -2
//
//	go get github.com/katalvlaran/seqalign
package seqalign

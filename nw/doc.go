// SPDX-License-Identifier: MIT

// Package nw computes global pairwise sequence alignments
// (Needleman–Wunsch) under a linear scoring scheme.
//
// 🚀 What is global alignment?
//
//	Two sequences are aligned end to end: every symbol of both inputs
//	appears in the output, and gaps are inserted so that related symbols
//	line up. Typical inputs are short nucleotide strings:
//
//	  ATCGT-        A-TCGT
//	  -TGGTG   or   TGGTG-   … whichever scores best.
//
// ✨ Pipeline:
//   - Fill        — iterative bottom-up DP over a scorematrix.Matrix
//   - Candidates  — the (up to) three forward moves of a cell, best first
//   - Backtrace   — one optimal path from the terminal cell to the origin
//   - Reconstruct — two gapped output strings
//
// Tie-break order (fixed, part of the contract):
//
//	Diagonal > Down > Right
//
// When two moves score the same, the earlier one wins, both when ordering
// candidates and when picking a predecessor during backtrace. Matches and
// mismatches are preferred over gaps, so results are deterministic.
//
// ⚙️ Usage:
//
//	al, err := nw.Align("ATCGT", "TGGTG", 1, -1, -2)
//	if err != nil {
//	  // ErrInvalidInput or ErrInternalConsistency
//	}
//	fmt.Println(al.AlignedA)
//	fmt.Println(al.AlignedB)
//	fmt.Println(al.Score)
//
//	// keep the matrix for display:
//	res, _ := nw.AlignScoring("ACGT", "AGT", nw.DefaultScoring())
//	raw := res.RawMatrix()
//
// Empty sequences are valid: ("", "") aligns to ("", "") with score 0, and
// ("AAA", "") aligns to ("AAA", "---") with score 3·gap.
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M)
package nw

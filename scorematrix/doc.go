// SPDX-License-Identifier: MIT

// Package scorematrix holds the dynamic-programming table used by global
// (Needleman–Wunsch) sequence alignment.
//
// 🚀 What is it?
//
//	A (lenA+1)×(lenB+1) grid of optional integers. Row i stands for the
//	first i symbols of sequence A, column j for the first j symbols of B.
//	Cell (i,j) holds the best score of any alignment of those two prefixes.
//
// ✨ Rules enforced:
//   - boundary: cell(i,0) = i*gap, cell(0,j) = j*gap (prefix against gaps)
//   - interior cells start unknown and are settled by the search phase
//   - monotone writes: a settled cell may be raised or rewritten with an
//     equal value, never lowered (ErrScoreRegression)
//   - Freeze turns the matrix read-only once search is done
//
// ⚙️ Usage:
//
//	m, _ := scorematrix.New(len(a), len(b), -2)
//	_ = m.Set(1, 1, 1)
//	s, _ := m.Score(1, 1)
//	m.Freeze()
//	rows := m.Raw() // copy for display
//
// Complexity: O(lenA·lenB) memory; every accessor is O(1).
package scorematrix

// SPDX-License-Identifier: MIT

// Package scorematrix: Matrix is a row-major table of optional integer scores,
// storing entries in a flat slice like the dense float matrices it derives from.
package scorematrix

import (
	"fmt"
	"strings"
)

// matrixErrorf wraps an underlying error with Matrix method context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is the (lenA+1)×(lenB+1) global-alignment score table.
// r is rows, c is columns, and data holds r*c entries in row-major order.
type Matrix struct {
	r, c   int     // number of rows and columns
	data   []Entry // flat backing storage, length == r*c
	frozen bool    // set by Freeze; rejects all further writes
}

// New creates the score table for sequences of length lenA and lenB.
// Stage 1 (Validate): ensure both lengths are >= 0.
// Stage 2 (Prepare): allocate (lenA+1)*(lenB+1) unknown entries.
// Stage 3 (Finalize): settle the boundary row and column:
//
//	cell(row,0) = row*gap
//	cell(0,col) = col*gap
//
// Interior cells stay unknown.
// Complexity: O(lenA*lenB) time and memory.
func New(lenA, lenB, gap int) (*Matrix, error) {
	if lenA < 0 || lenB < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", lenA, lenB, ErrBadShape)
	}
	m := &Matrix{r: lenA + 1, c: lenB + 1}
	m.data = make([]Entry, m.r*m.c)

	// Boundary condition: a prefix aligned entirely against gaps.
	var i, j int
	for i = 0; i < m.r; i++ {
		m.data[i*m.c] = Entry{Score: i * gap, Known: true}
	}
	for j = 1; j < m.c; j++ {
		m.data[j] = Entry{Score: j * gap, Known: true}
	}

	return m, nil
}

// Rows returns the number of rows (lenA+1).
func (m *Matrix) Rows() int {
	return m.r
}

// Cols returns the number of columns (lenB+1).
func (m *Matrix) Cols() int {
	return m.c
}

// Terminal returns the bottom-right cell (lenA, lenB).
func (m *Matrix) Terminal() Cell {
	return Cell{Row: m.r - 1, Col: m.c - 1}
}

// Frozen reports whether the matrix has been made read-only.
func (m *Matrix) Frozen() bool {
	return m.frozen
}

// Freeze makes the matrix read-only. Subsequent Set calls return ErrFrozen.
// Freeze is idempotent.
func (m *Matrix) Freeze() {
	m.frozen = true
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Matrix) indexOf(method string, row, col int) (int, error) {
	if m == nil {
		return 0, matrixErrorf(method, row, col, ErrNilMatrix)
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, matrixErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the entry at (row, col), known or not.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (Entry, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return Entry{}, err
	}

	return m.data[idx], nil
}

// Score retrieves the settled score at (row, col).
// Returns ErrUnset if the cell has not been written yet.
// Complexity: O(1).
func (m *Matrix) Score(row, col int) (int, error) {
	idx, err := m.indexOf("Score", row, col)
	if err != nil {
		return 0, err
	}
	if !m.data[idx].Known {
		return 0, matrixErrorf("Score", row, col, ErrUnset)
	}

	return m.data[idx].Score, nil
}

// Set assigns v at (row, col).
// Stage 1 (Validate): bounds check and frozen check.
// Stage 2 (Monotone guard): a known cell may only be rewritten with v >= current;
// a strictly lower v returns ErrScoreRegression and leaves the cell untouched.
// Stage 3 (Execute): store the entry as known.
// Complexity: O(1).
func (m *Matrix) Set(row, col, v int) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if m.frozen {
		return matrixErrorf("Set", row, col, ErrFrozen)
	}
	if cur := m.data[idx]; cur.Known && v < cur.Score {
		return fmt.Errorf("Matrix.Set(%d,%d): %d < %d: %w", row, col, v, cur.Score, ErrScoreRegression)
	}
	m.data[idx] = Entry{Score: v, Known: true}

	return nil
}

// Raw returns a deep copy of the table as rows of entries, for external
// pretty-printing. Complexity: O(r*c).
func (m *Matrix) Raw() [][]Entry {
	out := make([][]Entry, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]Entry, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns an independent, writable deep copy.
// Complexity: O(r*c) time and memory.
func (m *Matrix) Clone() *Matrix {
	copyData := make([]Entry, len(m.data))
	copy(copyData, m.data)

	return &Matrix{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Unknown entries are shown as ".".
func (m *Matrix) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString("[")
		for j = 0; j < m.c; j++ {
			sb.WriteString(m.data[i*m.c+j].String())
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// SPDX-License-Identifier: MIT

// Package scorematrix: value types shared by the matrix and its consumers.
package scorematrix

import "strconv"

// Cell is a (Row, Col) position in the score matrix.
// Row indexes prefixes of sequence A, Col indexes prefixes of sequence B.
// Equality is plain value equality on the pair.
type Cell struct {
	Row int // prefix length of A
	Col int // prefix length of B
}

// Origin is the empty-prefix/empty-prefix cell.
var Origin = Cell{}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return "(" + strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col) + ")"
}

// Entry is the optional integer stored per cell.
// Known=false means the score has not been settled yet; Score is then zero
// and carries no meaning.
type Entry struct {
	Score int
	Known bool
}

// String renders a known entry as its integer and an unknown one as ".".
func (e Entry) String() string {
	if !e.Known {
		return "."
	}

	return strconv.Itoa(e.Score)
}

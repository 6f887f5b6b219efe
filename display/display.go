// SPDX-License-Identifier: MIT

package display

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/seqalign/nw"
	"github.com/katalvlaran/seqalign/scorematrix"
)

// Sentinel is printed in front of both sequences for the empty prefix.
const Sentinel = "-"

// Match markers used by WriteAlignment.
const (
	markMatch    = '|'
	markMismatch = '.'
	markGap      = ' '
)

// ErrShapeMismatch indicates that the table does not fit the sequences.
var ErrShapeMismatch = errors.New("display: matrix shape does not match sequences")

// WriteMatrix renders a raw score table.
//
// Layout:
//
//	        0   1   2   …       column indices
//	        -   A   G   …       sentinel + symbols of B
//	0   -   0  -2  -4   …       row index, sentinel/symbol of A, scores
//	1   A  -2   1  -1   …
//
// Unknown entries print as ".". Columns are right-aligned.
//
// Errors:
//   - ErrShapeMismatch if len(rows) != len(a)+1 or a row length != len(b)+1.
//   - any write error from w.
func WriteMatrix(w io.Writer, rows [][]scorematrix.Entry, a, b []rune) error {
	if len(rows) != len(a)+1 {
		return fmt.Errorf("%d rows for %d symbols: %w", len(rows), len(a), ErrShapeMismatch)
	}
	for i, row := range rows {
		if len(row) != len(b)+1 {
			return fmt.Errorf("row %d has %d cells for %d symbols: %w", i, len(row), len(b), ErrShapeMismatch)
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	var sb strings.Builder

	// header: column indices
	sb.WriteString("\t\t")
	for j := 0; j <= len(b); j++ {
		sb.WriteString(strconv.Itoa(j))
		sb.WriteByte('\t')
	}
	sb.WriteByte('\n')

	// header: sentinel + symbols of B
	sb.WriteString("\t\t" + Sentinel + "\t")
	for _, r := range b {
		sb.WriteRune(r)
		sb.WriteByte('\t')
	}
	sb.WriteByte('\n')

	for i, row := range rows {
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte('\t')
		if i == 0 {
			sb.WriteString(Sentinel)
		} else {
			sb.WriteRune(a[i-1])
		}
		sb.WriteByte('\t')
		for _, e := range row {
			sb.WriteString(e.String())
			sb.WriteByte('\t')
		}
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(tw, sb.String()); err != nil {
		return err
	}

	return tw.Flush()
}

// WriteAlignment prints the aligned pair with a marker line between them
// ('|' match, '.' mismatch, ' ' gap) followed by the score.
//
//	ATCGT-
//	 |.||
//	-TGGTG
//	score: -2
//
// same decides whether a column is a match; pass (*nw.Pair).Same so the
// markers agree with the score. A nil same compares runes exactly.
func WriteAlignment(w io.Writer, al nw.Alignment, gap rune, same func(x, y rune) bool) error {
	ra, rb := []rune(al.AlignedA), []rune(al.AlignedB)
	if len(ra) != len(rb) {
		return fmt.Errorf("aligned lengths %d and %d differ: %w", len(ra), len(rb), ErrShapeMismatch)
	}
	if same == nil {
		same = func(x, y rune) bool { return x == y }
	}

	marks := make([]rune, len(ra))
	for k := range ra {
		switch {
		case ra[k] == gap || rb[k] == gap:
			marks[k] = markGap
		case same(ra[k], rb[k]):
			marks[k] = markMatch
		default:
			marks[k] = markMismatch
		}
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n%s\nscore: %d\n", al.AlignedA, string(marks), al.AlignedB, al.Score)

	return err
}

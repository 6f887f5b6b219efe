// SPDX-License-Identifier: MIT
package display_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/seqalign/display"
	"github.com/katalvlaran/seqalign/nw"
	"github.com/katalvlaran/seqalign/scorematrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteMatrix checks headers and rows cell by cell (spacing-agnostic).
func TestWriteMatrix(t *testing.T) {
	res, err := nw.AlignScoring("AC", "A", nw.DefaultScoring())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, display.WriteMatrix(&buf, res.RawMatrix(), []rune("AC"), []rune("A")))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, []string{"0", "1"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"-", "A"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"0", "-", "0", "-2"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"1", "A", "-2", "1"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"2", "C", "-4", "-1"}, strings.Fields(lines[4]))
}

// TestWriteMatrix_Unknown renders unsettled cells as ".".
func TestWriteMatrix_Unknown(t *testing.T) {
	m, err := scorematrix.New(1, 1, -2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, display.WriteMatrix(&buf, m.Raw(), []rune("G"), []rune("T")))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{"1", "G", "-2", "."}, strings.Fields(lines[3]))
}

// TestWriteMatrix_ShapeMismatch rejects a table that does not fit.
func TestWriteMatrix_ShapeMismatch(t *testing.T) {
	m, err := scorematrix.New(1, 1, -2)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = display.WriteMatrix(&buf, m.Raw(), []rune("GG"), []rune("T"))
	require.ErrorIs(t, err, display.ErrShapeMismatch)

	err = display.WriteMatrix(&buf, m.Raw(), []rune("G"), []rune("TT"))
	require.ErrorIs(t, err, display.ErrShapeMismatch)
	assert.Zero(t, buf.Len(), "nothing is written on error")
}

// TestWriteAlignment checks the marker line.
func TestWriteAlignment(t *testing.T) {
	var buf bytes.Buffer
	al := nw.Alignment{AlignedA: "ATCGT-", AlignedB: "-TGGTG", Score: -2}
	require.NoError(t, display.WriteAlignment(&buf, al, '-', nil))
	assert.Equal(t, "ATCGT-\n |.|| \n-TGGTG\nscore: -2\n", buf.String())

	err := display.WriteAlignment(&buf, nw.Alignment{AlignedA: "AB", AlignedB: "A"}, '-', nil)
	require.ErrorIs(t, err, display.ErrShapeMismatch)
}

// TestWriteAlignment_FoldCase marks case-folded columns as matches.
func TestWriteAlignment_FoldCase(t *testing.T) {
	p, err := nw.NewPair("acgt", "AGGT", nw.DefaultScoring(), nw.WithFoldCase())
	require.NoError(t, err)
	res, err := p.Align()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, display.WriteAlignment(&buf, res.Alignment, p.GapSymbol(), p.Same))
	assert.Equal(t, "acgt\n|.||\nAGGT\nscore: 2\n", buf.String())

	buf.Reset()
	require.NoError(t, display.WriteAlignment(&buf, res.Alignment, p.GapSymbol(), nil))
	assert.Equal(t, "acgt\n....\nAGGT\nscore: 2\n", buf.String(), "nil compares exactly")
}

// SPDX-License-Identifier: MIT
package fasta

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plain = `>seq1 first read
ACgt
TT

>seq2
nnNN
`

func TestReadAll(t *testing.T) {
	recs, err := ReadAll(strings.NewReader(plain))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, Record{ID: "seq1", Seq: []byte("ACGTTT")}, recs[0])
	assert.Equal(t, Record{ID: "seq2", Seq: []byte("NNNN")}, recs[1])
}

func TestReadAllEmptyRecord(t *testing.T) {
	recs, err := ReadAll(strings.NewReader("junk\n>empty\n>x\nA\n"))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "empty", recs[0].ID)
	assert.Empty(t, recs[0].Seq)
}

func TestReadAllNoRecords(t *testing.T) {
	_, err := ReadAll(strings.NewReader("ACGT\n"))
	require.ErrorIs(t, err, ErrNoRecords)
}

func TestReadFirstPlainAndGzip(t *testing.T) {
	dir := t.TempDir()

	plainPath := filepath.Join(dir, "a.fa")
	require.NoError(t, os.WriteFile(plainPath, []byte(plain), 0o600))

	gzPath := writeGzip(t, dir, plain)

	for _, p := range []string{plainPath, gzPath} {
		rec, err := ReadFirst(p)
		require.NoError(t, err, p)
		assert.Equal(t, "seq1", rec.ID)
		assert.Equal(t, "ACGTTT", string(rec.Seq))
	}
}

func TestReadFirstMissing(t *testing.T) {
	_, err := ReadFirst(filepath.Join(t.TempDir(), "nope.fa"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadFirstEmptyFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "empty.fa")
	require.NoError(t, os.WriteFile(p, nil, 0o600))
	_, err := ReadFirst(p)
	require.ErrorIs(t, err, ErrNoRecords)
}

func TestOpenReaderGzipClosesBoth(t *testing.T) {
	rc, err := openReader(writeGzip(t, t.TempDir(), plain))
	require.NoError(t, err)
	gf, ok := rc.(gzipFile)
	require.True(t, ok, "got %T", rc)

	require.NoError(t, rc.Close())
	require.ErrorIs(t, gf.f.Close(), os.ErrClosed, "file must already be closed")
}

func TestOpenReaderBadGzip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.fa.gz")
	require.NoError(t, os.WriteFile(p, []byte(plain), 0o600))

	_, err := openReader(p)
	require.ErrorIs(t, err, gzip.ErrHeader)
}

// writeGzip stores body as dir/a.fa.gz and returns the path.
func writeGzip(t *testing.T, dir, body string) string {
	t.Helper()
	p := filepath.Join(dir, "a.fa.gz")
	fh, err := os.Create(p)
	require.NoError(t, err)
	gw := gzip.NewWriter(fh)
	_, err = gw.Write([]byte(body))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, fh.Close())

	return p
}

// SPDX-License-Identifier: MIT

// Package fasta reads FASTA records for the command-line front end.
// Plain and gzip-compressed files are supported; "-" means stdin.
package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoRecords indicates that the input holds no FASTA header.
var ErrNoRecords = errors.New("fasta: no records")

// Record is one FASTA entry. Seq is upper-cased with line breaks removed.
type Record struct {
	ID  string
	Seq []byte
}

// ReadAll parses every record from r.
// Sequence lines before the first header are ignored, as are blank lines.
func ReadAll(r io.Reader) ([]Record, error) {
	var (
		out []Record
		cur *Record
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' { // new header
			id := ""
			if f := strings.Fields(string(line[1:])); len(f) > 0 {
				id = f[0]
			}
			out = append(out, Record{ID: id})
			cur = &out[len(out)-1]
			continue
		}
		if cur == nil {
			continue
		}
		cur.Seq = append(cur.Seq, bytes.ToUpper(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta: scan: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrNoRecords
	}
	return out, nil
}

// ReadFirst opens path and returns its first record.
func ReadFirst(path string) (Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return Record{}, err
	}
	defer rc.Close()

	recs, err := ReadAll(rc)
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", path, err)
	}
	return recs[0], nil
}

/* ---------------- small helpers ---------------- */

// gzipFile closes the decompressor and then the file under it.
type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g gzipFile) Close() error {
	return errors.Join(g.Reader.Close(), g.f.Close())
}

// openReader opens path for reading; "-" is stdin and a ".gz" suffix turns
// on decompression.
func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, errors.Join(err, f.Close())
	}

	return gzipFile{Reader: zr, f: f}, nil
}

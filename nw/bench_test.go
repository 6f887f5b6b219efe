// SPDX-License-Identifier: MIT
package nw_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/seqalign/nw"
)

// benchmarkAlign runs Align on random DNA of lengths n and m.
func benchmarkAlign(b *testing.B, n, m int) {
	rng := rand.New(rand.NewSource(7))
	seqA, seqB := randomDNA(rng, n), randomDNA(rng, m)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := nw.Align(seqA, seqB, 1, -1, -2); err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}

// BenchmarkAlign_Small benchmarks 20×20 inputs.
func BenchmarkAlign_Small(b *testing.B) { benchmarkAlign(b, 20, 20) }

// BenchmarkAlign_Medium benchmarks 200×200 inputs, the top of the intended range.
func BenchmarkAlign_Medium(b *testing.B) { benchmarkAlign(b, 200, 200) }

// BenchmarkFill isolates matrix construction.
func BenchmarkFill(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	p, err := nw.NewPair(randomDNA(rng, 150), randomDNA(rng, 150), nw.DefaultScoring())
	if err != nil {
		b.Fatalf("NewPair failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Fill(); err != nil {
			b.Fatalf("Fill failed: %v", err)
		}
	}
}

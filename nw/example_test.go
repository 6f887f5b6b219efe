// SPDX-License-Identifier: MIT
package nw_test

import (
	"fmt"

	"github.com/katalvlaran/seqalign/nw"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleAlign
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two short reads that differ by one leading and one trailing base.
//	  A = ATCGT
//	  B = TGGTG
//
// Scoring: match +1, mismatch -1, gap -2.
//
// Complexity: O(N·M) time, O(N·M) memory
func ExampleAlign() {
	al, err := nw.Align("ATCGT", "TGGTG", 1, -1, -2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(al.AlignedA)
	fmt.Println(al.AlignedB)
	fmt.Println("score:", al.Score)
	// Output:
	// ATCGT-
	// -TGGTG
	// score: -2
}

// ExampleAlign_emptySequence shows the all-gap boundary case.
func ExampleAlign_emptySequence() {
	al, _ := nw.Align("AAA", "", 1, -1, -2)
	fmt.Printf("%q %q %d\n", al.AlignedA, al.AlignedB, al.Score)
	// Output:
	// "AAA" "---" -6
}

// ExampleAlignScoring shows the diagnostic matrix kept on the result.
func ExampleAlignScoring() {
	res, err := nw.AlignScoring("ACGT", "AGT", nw.DefaultScoring())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(res.Matrix)
	fmt.Println(res.AlignedA, res.AlignedB, res.Score)
	// Output:
	// [0, -2, -4, -6]
	// [-2, 1, -1, -3]
	// [-4, -1, 0, -2]
	// [-6, -3, 0, -1]
	// [-8, -5, -2, 1]
	// ACGT A-GT 1
}

// ExamplePair_Candidates: the terminal cell has no forward moves left.
func ExamplePair_Candidates() {
	p, _ := nw.NewPair("A", "A", nw.DefaultScoring())
	m, _ := p.Fill()
	cands, _ := p.Candidates(m, m.Terminal())
	fmt.Println(len(cands))

	res, _ := p.Align()
	moves, _ := res.Path.Moves()
	fmt.Println(moves)
	// Output:
	// 0
	// [Diagonal]
}

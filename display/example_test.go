// SPDX-License-Identifier: MIT
package display_test

import (
	"os"

	"github.com/katalvlaran/seqalign/display"
	"github.com/katalvlaran/seqalign/nw"
)

// ExampleWriteAlignment prints the classic three-line view.
func ExampleWriteAlignment() {
	al, _ := nw.Align("ACGT", "AGT", 1, -1, -2)
	_ = display.WriteAlignment(os.Stdout, al, nw.DefaultGapSymbol, nil)
	// Output:
	// ACGT
	// | ||
	// A-GT
	// score: 1
}

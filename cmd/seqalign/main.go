// SPDX-License-Identifier: MIT

// Package main provides the seqalign CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Load .env file if present (ignore "file not found" errors)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: failed to load .env file: %v\n", err)
		}
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd wires the command tree. Running the root without a subcommand
// aligns the built-in demo pair.
func newRootCmd() *cobra.Command {
	f := &flags{}
	rootCmd := &cobra.Command{
		Use:   "seqalign",
		Short: "Global pairwise alignment of two sequences",
		Long: `Compute an optimal global (Needleman–Wunsch) alignment under a linear
scoring scheme: match reward, mismatch penalty and gap penalty.

Defaults come from SEQALIGN_* environment variables (or a .env file) and
can be overridden with flags. Without a subcommand the demo pair
ACGT / ACGT is aligned.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlign(cmd, f, demoA, demoB)
		},
	}
	f.register(rootCmd)

	rootCmd.AddCommand(alignCmd(f))
	rootCmd.AddCommand(fastaCmd(f))

	return rootCmd
}

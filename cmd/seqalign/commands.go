// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/seqalign/config"
	"github.com/katalvlaran/seqalign/display"
	"github.com/katalvlaran/seqalign/internal/fasta"
	"github.com/katalvlaran/seqalign/nw"
	"github.com/spf13/cobra"
)

// Demo pair aligned when no subcommand is given.
const (
	demoA = "ACGT"
	demoB = "ACGT"
)

// flags holds the persistent scoring flags shared by every command.
type flags struct {
	match, mismatch, gap int
	gapSymbol            string
	showMatrix           bool
	foldCase             bool
	verbose              bool
}

func (f *flags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.IntVar(&f.match, "match", nw.DefaultMatch, "score for aligned equal symbols")
	pf.IntVar(&f.mismatch, "mismatch", nw.DefaultMismatch, "score for aligned different symbols")
	pf.IntVar(&f.gap, "gap", nw.DefaultGap, "score for every gap")
	pf.StringVar(&f.gapSymbol, "gap-symbol", string(nw.DefaultGapSymbol), "character printed for gaps")
	pf.BoolVar(&f.showMatrix, "matrix", false, "print the score matrix")
	pf.BoolVarP(&f.foldCase, "ignore-case", "i", false, "compare symbols case-insensitively")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "show verbose output")
}

// settings merges environment configuration with explicitly set flags.
func (f *flags) settings(cmd *cobra.Command) (config.Settings, []nw.Option, error) {
	s, err := config.New()
	if err != nil {
		return config.Settings{}, nil, err
	}
	changed := cmd.Flags().Changed
	if changed("match") {
		s.Scoring.Match = f.match
	}
	if changed("mismatch") {
		s.Scoring.Mismatch = f.mismatch
	}
	if changed("gap") {
		s.Scoring.Gap = f.gap
	}
	if changed("gap-symbol") {
		if s.GapSymbol, err = config.ParseGapSymbol(f.gapSymbol); err != nil {
			return config.Settings{}, nil, err
		}
	}
	if changed("matrix") {
		s.ShowMatrix = f.showMatrix
	}

	opts := s.Options()
	if f.foldCase {
		opts = append(opts, nw.WithFoldCase())
	}
	return s, opts, nil
}

func alignCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "align [seqA] [seqB]",
		Short: "Align two sequences given on the command line",
		Long: `Align two sequences given as arguments. Either may be the empty
string ("") to align the other entirely against gaps.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlign(cmd, f, args[0], args[1])
		},
	}
}

func fastaCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "fasta [fileA] [fileB]",
		Short: "Align the first record of two FASTA files",
		Long: `Align the first record of each FASTA file. Files ending in .gz are
decompressed; "-" reads from stdin (usable for one of the two files).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			recA, err := fasta.ReadFirst(args[0])
			if err != nil {
				return err
			}
			recB, err := fasta.ReadFirst(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s vs %s\n", recA.ID, recB.ID)
			return runAlign(cmd, f, string(recA.Seq), string(recB.Seq))
		},
	}
}

// runAlign aligns seqA against seqB and prints the result (and optionally
// the score matrix) to the command's output.
func runAlign(cmd *cobra.Command, f *flags, seqA, seqB string) error {
	s, opts, err := f.settings(cmd)
	if err != nil {
		return err
	}
	p, err := nw.NewPair(seqA, seqB, s.Scoring, opts...)
	if err != nil {
		return err
	}
	log := newLogger(cmd.ErrOrStderr(), f.verbose)
	log.Debug("aligning",
		slog.Int("lenA", len(p.A())),
		slog.Int("lenB", len(p.B())),
		slog.Int("match", s.Scoring.Match),
		slog.Int("mismatch", s.Scoring.Mismatch),
		slog.Int("gap", s.Scoring.Gap),
		slog.String("gapSymbol", string(p.GapSymbol())),
	)
	res, err := p.Align()
	if err != nil {
		return err
	}
	log.Debug("aligned",
		slog.Int("rows", res.Matrix.Rows()),
		slog.Int("cols", res.Matrix.Cols()),
		slog.Int("pathLen", len(res.Path)),
	)

	out := cmd.OutOrStdout()
	if s.ShowMatrix {
		if err = display.WriteMatrix(out, res.RawMatrix(), p.A(), p.B()); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
	return display.WriteAlignment(out, res.Alignment, p.GapSymbol(), p.Same)
}

// newLogger returns a text logger on w; debug records are only emitted
// when verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/katalvlaran/seqalign/scoring"
	"github.com/katalvlaran/seqalign/swalign"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides, e.g. SWALIGN_GAP=-1.
const envPrefix = "SWALIGN"

// NewRootCmd returns the swalign command. Each call has its own Viper
// instance, so commands do not share settings.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "swalign <seq1> <seq2>",
		Short: "Smith-Waterman local alignment of two sequences",
		Long: `Find the best local alignment between two sequences.

"swalign" fills a Smith-Waterman score grid, walks back from its highest cell
and prints the aligned substrings with a similarity line ('*' marks identical
columns). Scoring is either a uniform match/mismatch pair or a nucleotide
table in which transitions (A<->G, C<->T) score better than transversions.

Example:
  swalign TGTTACGG GGTTGACTA
  swalign --scoring transition --matrix TGTTACGG GGTTGACTA
  SWALIGN_GAP=-1 swalign ACGT AGT`,
		Version:      "0.1.0",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("reading config %s: %w", cfgFile, err)
				}
			}
			cfg, err := NewConfig(v)
			if err != nil {
				return err
			}

			return run(cmd.OutOrStdout(), args[0], args[1], cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "path to a settings file (yaml, json or toml)")
	flags.String("scoring", ScoringUniform, `scoring policy: "uniform" or "transition"`)
	flags.Int("match", scoring.DefaultMatch, "score for identical symbols")
	flags.Int("mismatch", scoring.DefaultMismatch, "score for differing symbols (transversions under --scoring transition)")
	flags.Int("transition", scoring.DefaultTransition, "score for A<->G and C<->T under --scoring transition")
	flags.Int("gap", scoring.DefaultGap, "penalty per gap position")
	flags.String("trace", TraceRecompute, `traceback: "recompute" or "stored"`)
	flags.String("fill", FillRowMajor, `grid fill: "rowmajor" or "antidiagonal"`)
	flags.Int("workers", swalign.DefaultWorkers, "goroutines per anti-diagonal with --fill antidiagonal")
	flags.BoolP("matrix", "m", false, "print the score grid")
	flags.BoolP("path", "p", false, "print the traceback path")

	// Bind the parameters to viper
	for _, name := range []string{"scoring", "match", "mismatch", "transition", "gap", "trace", "fill", "workers", "matrix", "path"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// run aligns seq1 against seq2 and writes the report to w.
func run(w io.Writer, seq1, seq2 string, cfg Config) error {
	scheme, err := cfg.Scheme()
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	seq1, seq2 = strings.ToUpper(seq1), strings.ToUpper(seq2)
	aln, err := swalign.Align(seq1, seq2, scheme, opts...)
	if errors.Is(err, swalign.ErrNoLocalAlignment) {
		fmt.Fprintln(w, "no local alignment")
		return nil
	}
	if err != nil {
		return err
	}

	if cfg.Matrix {
		fmt.Fprint(w, aln.Grid)
		fmt.Fprintln(w)
	}
	if cfg.Path {
		fmt.Fprintln(w, aln.Path)
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Score:\t%d\n", aln.Max.Score)
	fmt.Fprintf(w, "Seq1:\t%s\n", aln.Result.Aligned1)
	fmt.Fprintf(w, "Seq2:\t%s\n", aln.Result.Aligned2)
	fmt.Fprintf(w, "\t%s\n", aln.Result.Similarity)

	return nil
}

// Package cmd provides CLI command implementations
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/masskit/massalign/pkg/align"
	"github.com/masskit/massalign/pkg/core"
)

var (
	// Shared alignment flags
	toleranceStr string
	alignTypeStr string
	maxSteps     int
	matrixName   string
	modsCSV      string
	gapOpen      int
	gapExtend    int

	// Batch command flags
	inputFile  string
	outputFile string
	threads    int
)

var rootCmd = &cobra.Command{
	Use:   "massalign",
	Short: "massalign - Mass-tolerant peptide sequence alignment",
	Long: `massalign aligns peptide sequences based on mass and homology.

Unlike a plain Needleman-Wunsch alignment, a single step may consume several
residues on either sequence, so stretches with the same mass but a different
sequence (isobaric sets) or the same residues in a different order (rotations)
are matched instead of penalized. Supports:
- Global, local and semi-global boundary regimes
- Absolute (Da) and relative (ppm) mass tolerances
- Modified peptides with named or numeric mass shifts
- Batch alignment of pair lists to CSV or SQLite`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(alignCmd)
	rootCmd.AddCommand(batchCmd)

	for _, c := range []*cobra.Command{alignCmd, batchCmd} {
		c.Flags().StringVar(&toleranceStr, "tolerance", "10ppm", "Mass tolerance, e.g. '10ppm' or '0.1da'")
		c.Flags().StringVar(&alignTypeStr, "type", "global", "Alignment type: global, local, global-a, global-b, global-left, global-right, extend-a, extend-b, either-global")
		c.Flags().IntVar(&maxSteps, "steps", 4, "Maximum residues one alignment step may consume per sequence")
		c.Flags().StringVar(&matrixName, "matrix", "blosum62", "Substitution matrix: blosum62 or identity")
		c.Flags().StringVar(&modsCSV, "mods", "", "Path to a custom modification CSV file (format: mod,massshift,aa)")
		c.Flags().IntVar(&gapOpen, "gap-open", -4, "Gap opening penalty")
		c.Flags().IntVar(&gapExtend, "gap-extend", -1, "Gap extension penalty")
	}

	batchCmd.Flags().StringVarP(&inputFile, "in", "i", "", "Input pair CSV file (required)")
	batchCmd.Flags().StringVarP(&outputFile, "out", "o", "", "Output SQLite database (default: CSV on stdout)")
	batchCmd.Flags().IntVar(&threads, "threads", 0, "Number of worker threads (0 = number of CPUs)")

	batchCmd.MarkFlagRequired("in")
}

// settings resolves the shared flags into alignment parameters.
func settings() (align.Scoring, align.AlignType, error) {
	sc := align.DefaultScoring()

	tol, err := align.ParseTolerance(toleranceStr)
	if err != nil {
		return sc, align.Global, err
	}
	sc.Tolerance = tol

	switch strings.ToLower(matrixName) {
	case "blosum62":
		sc.Matrix = align.BLOSUM62
	case "identity":
		sc.Matrix = align.IdentityAA
	default:
		return sc, align.Global, fmt.Errorf("unknown matrix '%s', must be blosum62 or identity", matrixName)
	}

	ty, err := align.ParseAlignType(alignTypeStr)
	if err != nil {
		return sc, align.Global, err
	}

	sc.GapStart = gapOpen
	sc.GapExtend = gapExtend

	return sc, ty, nil
}

// loadModDatabase builds the modification database: the built-in set, plus
// unimod_custom.csv from the working directory if present, plus --mods.
func loadModDatabase() *core.ModDatabase {
	modDB := core.DefaultModDatabase()

	paths := []string{}
	if _, err := os.Stat("unimod_custom.csv"); err == nil {
		paths = append(paths, "unimod_custom.csv")
	}
	if modsCSV != "" {
		paths = append(paths, modsCSV)
	}

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to open %s: %v\n", path, err)
			continue
		}
		if err := modDB.LoadFromCSV(f); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load %s: %v\n", path, err)
		}
		f.Close()
	}

	return modDB
}

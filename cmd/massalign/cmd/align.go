package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/masskit/massalign/pkg/align"
	"github.com/masskit/massalign/pkg/core"
)

var alignCmd = &cobra.Command{
	Use:   "align [seq_a] [seq_b]",
	Short: "Align two peptide sequences",
	Long: `Align two peptide sequences and print the result.

Modifications are written in brackets after the residue they sit on, either by
name or as a signed mass shift.

Examples:
  # Global alignment with default settings
  massalign align EVQLVESGG VQLVESGGA

  # Local alignment at 0.1 Da tolerance
  massalign align --type local --tolerance 0.1da EVQLVESGG VQLVESGGA

  # Modified peptide against its unmodified form
  massalign align "AC[Carbamidomethyl]DE" ACDE`,
	Args: cobra.ExactArgs(2),
	RunE: runAlign,
}

func runAlign(cmd *cobra.Command, args []string) error {
	scoring, ty, err := settings()
	if err != nil {
		return err
	}

	modDB := loadModDatabase()
	seqA, err := core.ParsePeptide(args[0], modDB)
	if err != nil {
		return fmt.Errorf("sequence a: %w", err)
	}
	seqB, err := core.ParsePeptide(args[1], modDB)
	if err != nil {
		return fmt.Errorf("sequence b: %w", err)
	}

	al, err := align.Align(seqA, seqB, core.MassCalculator{}, scoring, ty, maxSteps)
	if err != nil {
		return err
	}

	fmt.Println(al.Summary())

	stats := al.Stats()
	fmt.Printf("identical: %d/%d  mass similar: %d/%d  similar: %d/%d  gaps: %d\n",
		stats.Identical, stats.Length,
		stats.MassSimilar, stats.Length,
		stats.Similar, stats.Length,
		stats.Gaps)

	if d, err := al.MassDifference(); err == nil {
		fmt.Printf("mass difference: %.5f Da", d)
		if p, err := al.PPM(); err == nil {
			fmt.Printf(" (%.2f ppm)", p)
		}
		fmt.Println()
	}

	return nil
}

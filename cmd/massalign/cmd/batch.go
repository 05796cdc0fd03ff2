package cmd

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/spf13/cobra"

	"github.com/masskit/massalign/pkg/align"
	"github.com/masskit/massalign/pkg/core"
	"github.com/masskit/massalign/pkg/reader/pairs"
	"github.com/masskit/massalign/pkg/writer/sqlite"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Align a CSV list of peptide pairs",
	Long: `Align every pair of a CSV file (format: id,seq_a,seq_b) and write the
results as CSV to stdout, or to a SQLite database with --out.

Pairs are aligned concurrently; the output order matches the input order.

Examples:
  # Align a pair list to CSV on stdout
  massalign batch --in pairs.csv > results.csv

  # Align into a SQLite database with 8 workers
  massalign batch --in pairs.csv --out results.db --threads 8`,
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	scoring, ty, err := settings()
	if err != nil {
		return err
	}

	inFile, err := os.Open(inputFile)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer inFile.Close()

	reader := pairs.NewReader(inFile, loadModDatabase())
	var jobs []*pairs.Pair
	for reader.Next() {
		jobs = append(jobs, reader.Pair())
	}
	if err := reader.Err(); err != nil {
		return fmt.Errorf("error reading input file: %w", err)
	}

	results, err := alignAll(jobs, scoring, ty)
	if err != nil {
		return err
	}

	if outputFile != "" {
		return writeDatabase(jobs, results, ty)
	}
	return writeCSV(jobs, results)
}

// alignAll aligns every pair on a worker pool. Each alignment is independent,
// so workers share nothing but the job index channel; results are stored by
// index to keep the input order.
func alignAll(jobs []*pairs.Pair, scoring align.Scoring, ty align.AlignType) ([]*align.Alignment, error) {
	workers := threads
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	results := make([]*align.Alignment, len(jobs))
	errs := make([]error, len(jobs))
	idx := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idx {
				results[i], errs[i] = align.Align(
					jobs[i].SeqA, jobs[i].SeqB, core.MassCalculator{}, scoring, ty, maxSteps)
			}
		}()
	}
	for i := range jobs {
		idx <- i
	}
	close(idx)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("pair %s: %w", jobs[i].ID, err)
		}
	}
	return results, nil
}

func writeCSV(jobs []*pairs.Pair, results []*align.Alignment) error {
	fmt.Println("id,seq_a,seq_b,score,max_score,normalized,path,start_a,start_b,identical,mass_similar,similar,gaps,length,mass_difference,ppm")
	for i, al := range results {
		stats := al.Stats()
		massDiff, massPPM := "", ""
		if d, err := al.MassDifference(); err == nil {
			massDiff = fmt.Sprintf("%.6f", d)
		}
		if p, err := al.PPM(); err == nil {
			massPPM = fmt.Sprintf("%.3f", p)
		}
		fmt.Printf("%s,%s,%s,%d,%d,%.4f,%s,%d,%d,%d,%d,%d,%d,%d,%s,%s\n",
			jobs[i].ID, jobs[i].RawA, jobs[i].RawB,
			al.Score.Absolute, al.Score.Maximal, al.Score.Normalized,
			al.Short(), al.StartA, al.StartB,
			stats.Identical, stats.MassSimilar, stats.Similar, stats.Gaps, stats.Length,
			massDiff, massPPM)
	}
	return nil
}

func writeDatabase(jobs []*pairs.Pair, results []*align.Alignment, ty align.AlignType) error {
	description := fmt.Sprintf("tolerance=%s type=%s steps=%d matrix=%s",
		toleranceStr, ty, maxSteps, matrixName)

	writer, err := sqlite.NewWriter(outputFile, description)
	if err != nil {
		return fmt.Errorf("failed to create output database: %w", err)
	}

	for i, al := range results {
		if err := writer.WriteAlignment(jobs[i].ID, al); err != nil {
			writer.Close()
			return fmt.Errorf("failed to write pair %s: %w", jobs[i].ID, err)
		}
	}

	if err := writer.Finalize(); err != nil {
		return fmt.Errorf("failed to finalize database: %w", err)
	}

	fmt.Printf("Aligned %d pairs\n", len(results))
	fmt.Printf("Output: %s\n", outputFile)
	return nil
}

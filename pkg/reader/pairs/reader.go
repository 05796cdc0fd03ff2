// Package pairs provides a streaming reader for CSV files of peptide pairs
// to align, one pair per line in the format id,seq_a,seq_b.
package pairs

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/masskit/massalign/pkg/align"
	"github.com/masskit/massalign/pkg/core"
)

// Pair is one alignment job: an identifier and the two parsed sequences.
type Pair struct {
	ID   string
	SeqA align.Sequence
	SeqB align.Sequence
	RawA string
	RawB string
}

// Reader provides streaming access to a pair list. Peptide strings are parsed
// as they are read, so malformed lines surface through Err without loading
// the whole file.
type Reader struct {
	scanner     *bufio.Scanner
	modDB       *core.ModDatabase
	lineNum     int
	currentPair *Pair
	err         error
}

// NewReader creates a new pair reader
func NewReader(r io.Reader, modDB *core.ModDatabase) *Reader {
	if modDB == nil {
		modDB = core.DefaultModDatabase()
	}

	return &Reader{
		scanner: bufio.NewScanner(r),
		modDB:   modDB,
	}
}

// Next advances to the next pair. Returns false when no more pairs or error.
func (r *Reader) Next() bool {
	r.currentPair = nil

	for r.scanner.Scan() {
		r.lineNum++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}
		// Skip a header line
		if r.lineNum == 1 && strings.EqualFold(line, "id,seq_a,seq_b") {
			continue
		}

		pair, err := r.parseLine(line)
		if err != nil {
			r.err = fmt.Errorf("line %d: %w", r.lineNum, err)
			return false
		}
		r.currentPair = pair
		return true
	}

	if err := r.scanner.Err(); err != nil {
		r.err = fmt.Errorf("error reading pairs: %w", err)
	}
	return false
}

// Pair returns the current pair
func (r *Reader) Pair() *Pair {
	return r.currentPair
}

// Err returns any error encountered during reading
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) parseLine(line string) (*Pair, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid format, expected 3 comma-separated fields, got %d", len(parts))
	}

	id := strings.TrimSpace(parts[0])
	rawA := strings.TrimSpace(parts[1])
	rawB := strings.TrimSpace(parts[2])

	seqA, err := core.ParsePeptide(rawA, r.modDB)
	if err != nil {
		return nil, fmt.Errorf("sequence a: %w", err)
	}
	seqB, err := core.ParsePeptide(rawB, r.modDB)
	if err != nil {
		return nil, fmt.Errorf("sequence b: %w", err)
	}

	return &Pair{ID: id, SeqA: seqA, SeqB: seqB, RawA: rawA, RawB: rawB}, nil
}

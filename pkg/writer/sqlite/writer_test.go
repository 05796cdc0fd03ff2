package sqlite

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/masskit/massalign/pkg/align"
	"github.com/masskit/massalign/pkg/core"
)

func TestWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alignments.db")

	seqA, err := core.ParsePeptide("EVQLVESGG", nil)
	if err != nil {
		t.Fatalf("ParsePeptide: %v", err)
	}
	seqB, err := core.ParsePeptide("EVQLVESGG", nil)
	if err != nil {
		t.Fatalf("ParsePeptide: %v", err)
	}
	al, err := align.Align(seqA, seqB, core.MassCalculator{}, align.DefaultScoring(), align.Global, 4)
	if err != nil {
		t.Fatalf("Align: %v", err)
	}

	w, err := NewWriter(path, "tolerance=10ppm steps=4 type=global")
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w.WriteAlignment("p1", al); err != nil {
		t.Fatalf("WriteAlignment: %v", err)
	}
	if err := w.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("open result database: %v", err)
	}
	defer db.Close()

	var pairID, shortPath string
	var score, identical int
	row := db.QueryRow("SELECT PairId, Path, Score, Identical FROM AlignmentTable WHERE AlignmentId = 1")
	if err := row.Scan(&pairID, &shortPath, &score, &identical); err != nil {
		t.Fatalf("scan alignment row: %v", err)
	}
	if pairID != "p1" {
		t.Errorf("PairId = %q, want %q", pairID, "p1")
	}
	if shortPath != "9=" {
		t.Errorf("Path = %q, want %q", shortPath, "9=")
	}
	if identical != 9 {
		t.Errorf("Identical = %d, want 9", identical)
	}

	var count int
	if err := db.QueryRow("SELECT Alignments FROM RunTable").Scan(&count); err != nil {
		t.Fatalf("scan run row: %v", err)
	}
	if count != 1 {
		t.Errorf("Alignments = %d, want 1", count)
	}
}

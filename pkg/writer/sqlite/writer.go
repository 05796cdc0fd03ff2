// Package sqlite provides SQLite database writing for alignment results
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/masskit/massalign/pkg/align"
	"github.com/masskit/massalign/pkg/core"
	_ "github.com/mattn/go-sqlite3"
)

// Date format for RunTable (ISO 8601)
const runDateFormat = "2006-01-02"

// Writer handles writing alignments to SQLite database files
type Writer struct {
	db          *sql.DB
	outputPath  string
	description string
	stmt        *sql.Stmt
	alignmentID int
}

// NewWriter creates a new SQLite writer. The description is stored in the
// RunTable at Finalize and should record the alignment settings of the run.
func NewWriter(outputPath, description string) (*Writer, error) {
	db, err := sql.Open("sqlite3", outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	w := &Writer{
		db:          db,
		outputPath:  outputPath,
		description: description,
		alignmentID: 1,
	}

	if err := w.createTables(); err != nil {
		db.Close()
		return nil, err
	}

	if err := w.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}

	return w, nil
}

// createTables creates the required database schema
func (w *Writer) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS AlignmentTable (
		AlignmentId INTEGER PRIMARY KEY,
		PairId TEXT,
		SeqA TEXT,
		SeqB TEXT,
		AlignType TEXT,
		Score INTEGER,
		MaxScore INTEGER,
		NormalizedScore DOUBLE,
		Path TEXT,
		StartA INTEGER,
		StartB INTEGER,
		Identical INTEGER,
		MassSimilar INTEGER,
		Similar INTEGER,
		Gaps INTEGER,
		Length INTEGER,
		MassDifference DOUBLE,
		MassErrorPPM DOUBLE
	);

	CREATE TABLE IF NOT EXISTS RunTable (
		version INTEGER NOT NULL DEFAULT 0,
		CreationDate TEXT,
		Description TEXT,
		Alignments INTEGER
	);
	`

	_, err := w.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return nil
}

// prepareStatements prepares SQL statements for batch insertion
func (w *Writer) prepareStatements() error {
	var err error

	w.stmt, err = w.db.Prepare(`
		INSERT INTO AlignmentTable (
			AlignmentId, PairId, SeqA, SeqB, AlignType,
			Score, MaxScore, NormalizedScore, Path, StartA, StartB,
			Identical, MassSimilar, Similar, Gaps, Length,
			MassDifference, MassErrorPPM
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare alignment statement: %w", err)
	}

	return nil
}

// WriteAlignment writes a single alignment to the database
func (w *Writer) WriteAlignment(pairID string, al *align.Alignment) error {
	stats := al.Stats()

	// Mass columns stay NULL when the oracle cannot mass the matched slices.
	var massDiff, massPPM interface{}
	if d, err := al.MassDifference(); err == nil {
		massDiff = d
	}
	if p, err := al.PPM(); err == nil {
		massPPM = p
	}

	_, err := w.stmt.Exec(
		w.alignmentID,                  // AlignmentId
		pairID,                         // PairId
		core.FormatPeptide(al.SeqA),    // SeqA
		core.FormatPeptide(al.SeqB),    // SeqB
		al.Type.String(),               // AlignType
		al.Score.Absolute,              // Score
		al.Score.Maximal,               // MaxScore
		al.Score.Normalized,            // NormalizedScore
		al.Short(),                     // Path
		al.StartA,                      // StartA
		al.StartB,                      // StartB
		stats.Identical,                // Identical
		stats.MassSimilar,              // MassSimilar
		stats.Similar,                  // Similar
		stats.Gaps,                     // Gaps
		stats.Length,                   // Length
		massDiff,                       // MassDifference
		massPPM,                        // MassErrorPPM
	)
	if err != nil {
		return fmt.Errorf("failed to insert alignment: %w", err)
	}

	w.alignmentID++
	return nil
}

// Finalize writes the run table and closes the database
func (w *Writer) Finalize() error {
	_, err := w.db.Exec(`
		INSERT INTO RunTable (version, CreationDate, Description, Alignments)
		VALUES (?, ?, ?, ?)
	`, 1, time.Now().Format(runDateFormat), w.description, w.alignmentID-1)
	if err != nil {
		return fmt.Errorf("failed to insert run header: %w", err)
	}

	if w.stmt != nil {
		w.stmt.Close()
	}

	if err := w.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}

// Close closes the database connection (alias for Finalize)
func (w *Writer) Close() error {
	return w.Finalize()
}

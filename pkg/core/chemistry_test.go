package core

import (
	"math"
	"testing"

	"github.com/masskit/massalign/pkg/align"
)

func mustParse(t *testing.T, s string) align.Sequence {
	t.Helper()
	seq, err := ParsePeptide(s, DefaultModDatabase())
	if err != nil {
		t.Fatalf("ParsePeptide(%q): %v", s, err)
	}
	return seq
}

func TestWindowMass(t *testing.T) {
	var calc MassCalculator
	tests := []struct {
		name          string
		peptide       string
		start, length int
		want          []float64
		tolerance     float64
	}{
		{
			name:    "single residue",
			peptide: "G",
			length:  1,
			want:    []float64{57.02146},
		},
		{
			name:    "dipeptide window",
			peptide: "AG",
			length:  2,
			want:    []float64{128.05858},
		},
		{
			name:    "interior window",
			peptide: "KAGK",
			start:   1,
			length:  2,
			want:    []float64{128.05858},
		},
		{
			name:    "zero length window",
			peptide: "AG",
			start:   1,
			length:  0,
			want:    []float64{0},
		},
		{
			name:    "ambiguous residue",
			peptide: "B",
			length:  1,
			want:    []float64{114.04293, 115.02694},
		},
		{
			name:    "modified residue",
			peptide: "C[Carbamidomethyl]",
			length:  1,
			want:    []float64{160.03065},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.WindowMass(mustParse(t, tt.peptide), tt.start, tt.length)
			if err != nil {
				t.Fatalf("WindowMass() error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("WindowMass() has %d candidates, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-4 {
					t.Errorf("WindowMass()[%d] = %.5f, want %.5f", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWindowMassUnknownResidue(t *testing.T) {
	var calc MassCalculator
	seq := align.Sequence{{Code: 'X'}}
	if _, err := calc.WindowMass(seq, 0, 1); err == nil {
		t.Error("WindowMass() accepted a residue without a mass")
	}
}

func TestNeutralMass(t *testing.T) {
	var calc MassCalculator
	tests := []struct {
		peptide string
		want    float64
	}{
		{"G", 75.03203},
		{"AAA", 231.12191},
		{"SAMPLER", 802.40075},
	}
	for _, tt := range tests {
		t.Run(tt.peptide, func(t *testing.T) {
			got, err := calc.NeutralMass(mustParse(t, tt.peptide))
			if err != nil {
				t.Fatalf("NeutralMass() error: %v", err)
			}
			if len(got) != 1 {
				t.Fatalf("NeutralMass() has %d candidates, want 1", len(got))
			}
			if math.Abs(got[0]-tt.want) > 1e-3 {
				t.Errorf("NeutralMass() = %.5f, want %.5f", got[0], tt.want)
			}
		})
	}
}

func TestMZ(t *testing.T) {
	tests := []struct {
		name   string
		mass   float64
		charge int
		want   float64
	}{
		{"charge 1", 231.12191, 1, 232.129},
		{"charge 2", 231.12191, 2, 116.568},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MZ(tt.mass, tt.charge); math.Abs(got-tt.want) > 1e-3 {
				t.Errorf("MZ() = %.3f, want %.3f", got, tt.want)
			}
		})
	}
}

func TestIsobaricResidues(t *testing.T) {
	// L and I share a composition; Q equals G plus A. The aligner relies on
	// these identities resolving within a ppm tolerance.
	l := Residues['L'].Mass()
	i := Residues['I'].Mass()
	if l != i {
		t.Errorf("L mass %.6f != I mass %.6f", l, i)
	}
	q := Residues['Q'].Mass()
	ga := Residues['G'].Mass() + Residues['A'].Mass()
	if math.Abs(q-ga) > 1e-9 {
		t.Errorf("Q mass %.6f != G+A mass %.6f", q, ga)
	}
}

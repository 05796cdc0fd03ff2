package core

import (
	"math"
	"testing"
)

func TestParsePeptide(t *testing.T) {
	mods := DefaultModDatabase()
	tests := []struct {
		name    string
		in      string
		codes   string
		modAt   int
		modMass float64
	}{
		{"plain", "ACDE", "ACDE", -1, 0},
		{"named modification", "AC[Carbamidomethyl]DE", "ACDE", 1, 57.021464},
		{"numeric modification", "AC[+57.021464]DE", "ACDE", 1, 57.021464},
		{"negative shift", "PEPQ[-17.026549]", "PEPQ", 3, -17.026549},
		{"terminal modification", "ACDE[Amidated]", "ACDE", 3, -0.984016},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := ParsePeptide(tt.in, mods)
			if err != nil {
				t.Fatalf("ParsePeptide(%q): %v", tt.in, err)
			}
			if got := seq.Codes(); got != tt.codes {
				t.Fatalf("codes = %q, want %q", got, tt.codes)
			}
			for i, r := range seq {
				want := 0.0
				if i == tt.modAt {
					want = tt.modMass
				}
				if math.Abs(r.Mod-want) > 1e-9 {
					t.Errorf("residue %d shift = %g, want %g", i, r.Mod, want)
				}
			}
		})
	}
}

func TestParsePeptideErrors(t *testing.T) {
	mods := DefaultModDatabase()
	tests := []struct {
		name string
		in   string
	}{
		{"lowercase residue", "acde"},
		{"leading modification", "[Oxidation]ACDE"},
		{"unclosed bracket", "AC[OxidationDE"},
		{"unknown modification", "AC[NotAMod]DE"},
		{"empty modification", "AC[]DE"},
		{"stray character", "AC DE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParsePeptide(tt.in, mods); err == nil {
				t.Errorf("ParsePeptide(%q) accepted invalid input", tt.in)
			}
		})
	}
}

func TestFormatPeptide(t *testing.T) {
	seq, err := ParsePeptide("AC[+57.021464]DE", DefaultModDatabase())
	if err != nil {
		t.Fatalf("ParsePeptide: %v", err)
	}
	if got, want := FormatPeptide(seq), "AC[+57.021464]DE"; got != want {
		t.Errorf("FormatPeptide() = %q, want %q", got, want)
	}
}

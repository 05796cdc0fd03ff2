// Package core provides the chemistry layer behind the aligner: elemental
// residue compositions, modification definitions and peptide parsing.
package core

import (
	"fmt"

	"github.com/masskit/massalign/pkg/align"
)

// Atomic masses (monoisotopic)
const (
	MassH = 1.0078250321
	MassC = 12.0000000000
	MassN = 14.0030740052
	MassO = 15.9949146221
	MassS = 31.9720706900
	MassP = 30.9737615100

	// Proton mass for charge calculations
	ProtonMass = 1.00727646688
)

// Composition stores the elemental composition of a residue.
type Composition struct {
	C, H, N, O, S int
}

// Mass returns the monoisotopic mass of the composition.
func (c Composition) Mass() float64 {
	return float64(c.C)*MassC +
		float64(c.H)*MassH +
		float64(c.N)*MassN +
		float64(c.O)*MassO +
		float64(c.S)*MassS
}

// Residues maps amino acid one-letter codes to the elemental composition of
// the residue (the amino acid minus water).
var Residues = map[byte]Composition{
	'A': {C: 3, H: 5, N: 1, O: 1},
	'R': {C: 6, H: 12, N: 4, O: 1},
	'N': {C: 4, H: 6, N: 2, O: 2},
	'D': {C: 4, H: 5, N: 1, O: 3},
	'C': {C: 3, H: 5, N: 1, O: 1, S: 1},
	'E': {C: 5, H: 7, N: 1, O: 3},
	'Q': {C: 5, H: 8, N: 2, O: 2},
	'G': {C: 2, H: 3, N: 1, O: 1},
	'H': {C: 6, H: 7, N: 3, O: 1},
	'I': {C: 6, H: 11, N: 1, O: 1},
	'L': {C: 6, H: 11, N: 1, O: 1},
	'K': {C: 6, H: 12, N: 2, O: 1},
	'M': {C: 5, H: 9, N: 1, O: 1, S: 1},
	'F': {C: 9, H: 9, N: 1, O: 1},
	'P': {C: 5, H: 7, N: 1, O: 1},
	'S': {C: 3, H: 5, N: 1, O: 2},
	'T': {C: 4, H: 7, N: 1, O: 2},
	'W': {C: 11, H: 10, N: 2, O: 1},
	'Y': {C: 9, H: 9, N: 1, O: 2},
	'V': {C: 5, H: 9, N: 1, O: 1},
}

// Ambiguous maps the ambiguous one-letter codes to the concrete residues they
// stand for. Each candidate contributes its own mass, so a window containing
// an ambiguous code has several candidate masses.
var Ambiguous = map[byte][]byte{
	'B': {'N', 'D'},
	'Z': {'Q', 'E'},
	'J': {'L', 'I'},
}

// residueMasses holds the candidate masses per code, concrete and ambiguous.
var residueMasses = buildResidueMasses()

func buildResidueMasses() map[byte][]float64 {
	out := make(map[byte][]float64, len(Residues)+len(Ambiguous))
	for code, comp := range Residues {
		out[code] = []float64{comp.Mass()}
	}
	for code, cands := range Ambiguous {
		masses := make([]float64, len(cands))
		for i, c := range cands {
			masses[i] = Residues[c].Mass()
		}
		out[code] = masses
	}
	return out
}

// ResidueMasses returns the candidate masses of a residue code, or false for
// a code without a defined mass.
func ResidueMasses(code byte) ([]float64, bool) {
	m, ok := residueMasses[code]
	return m, ok
}

// MassCalculator computes window masses from the built-in residue table plus
// per-residue modification shifts. It is stateless, so one value may serve
// any number of concurrent alignments.
type MassCalculator struct{}

// WindowMass returns the candidate masses of seq[start : start+length]: the
// cross product of every residue's candidates, each shifted by that residue's
// modification. A zero-length window has mass set {0}.
func (MassCalculator) WindowMass(seq align.Sequence, start, length int) (align.MassSet, error) {
	masses := align.MassSet{0}
	for _, r := range seq[start : start+length] {
		cands, ok := residueMasses[r.Code]
		if !ok {
			return nil, fmt.Errorf("no mass defined for residue %q", string(r.Code))
		}
		if len(cands) == 1 {
			for i := range masses {
				masses[i] += cands[0] + r.Mod
			}
			continue
		}
		next := make(align.MassSet, 0, len(masses)*len(cands))
		for _, m := range masses {
			for _, c := range cands {
				next = append(next, m+c+r.Mod)
			}
		}
		masses = next
	}
	return masses, nil
}

// NeutralMass returns the candidate neutral monoisotopic masses of a full
// peptide, i.e. the residue masses plus one water.
func (c MassCalculator) NeutralMass(seq align.Sequence) (align.MassSet, error) {
	water := 2*MassH + MassO
	masses, err := c.WindowMass(seq, 0, len(seq))
	if err != nil {
		return nil, err
	}
	for i := range masses {
		masses[i] += water
	}
	return masses, nil
}

// MZ converts a neutral mass to m/z for the given charge state.
func MZ(mass float64, charge int) float64 {
	return (mass + float64(charge)*ProtonMass) / float64(charge)
}

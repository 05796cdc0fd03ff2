package align

// Scoring bundles the tunable scoring parameters of an alignment. With the
// defaults, rotations outscore generic isobaric matches of the same width and
// exact matches outscore both.
type Scoring struct {
	// MassMismatch is added to the matrix score of a 1-vs-1 step whose
	// residues are identical but whose masses differ, e.g. when one of them
	// carries a modification. It must be negative.
	MassMismatch int
	// BaseSpecial is the base score of any multi-residue mass match, on top
	// of the per-residue rotation or isobaric bonus.
	BaseSpecial int
	// Rotated is the per-residue bonus of a rotation step; the full local
	// score is BaseSpecial + Rotated*len.
	Rotated int
	// Isobaric is the per-residue bonus of an isobaric step. A multi-residue
	// isobaric step scores BaseSpecial + Isobaric*(lenA+lenB)/2; a 1-vs-1
	// isobaric step scores Isobaric alone.
	Isobaric int
	// GapStart is the extra cost of opening a gap (affine gaps). The total
	// cost of a gap of n residues is GapStart + n*GapExtend.
	GapStart int
	// GapExtend is the cost of each residue in a gap.
	GapExtend int
	// Matrix is the substitution matrix; every residue code occurring in
	// either sequence must be covered and the diagonal entries of those
	// codes must be positive.
	Matrix *Matrix
	// Tolerance decides mass equivalence of two windows.
	Tolerance Tolerance
}

// DefaultScoring returns the default parameters: BLOSUM62, 10 ppm tolerance,
// gap open -4, gap extend -1.
func DefaultScoring() Scoring {
	return Scoring{
		MassMismatch: -1,
		BaseSpecial:  1,
		Rotated:      3,
		Isobaric:     2,
		GapStart:     -4,
		GapExtend:    -1,
		Matrix:       BLOSUM62,
		Tolerance:    PPM(10),
	}
}

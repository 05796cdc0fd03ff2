// Package align implements mass-tolerant alignment of peptide sequences.
//
// The aligner generalizes Needleman-Wunsch / Smith-Waterman dynamic
// programming to variable-width steps: a single alignment step may consume up
// to a configurable number of residues on either sequence, so that stretches
// with the same mass but a different sequence (isobaric sets) or the same
// residues in a different order (rotations) are matched as one step instead
// of being penalized as a run of mismatches.
//
// The package does not compute masses itself; it consumes a MassOracle, and
// scoring is driven entirely by the configuration passed to Align.
package align

// Residue is a single position in a sequence: a one-letter identity code plus
// an optional modification mass shift in Dalton (0 for an unmodified
// residue). Two residues are the same element only when both fields match.
type Residue struct {
	Code byte
	Mod  float64
}

// Sequence is an ordered list of residues. It is treated as immutable for the
// duration of an alignment call.
type Sequence []Residue

// MassSet holds the candidate masses (in Dalton) of a window of residues.
// Ambiguous residues or modifications may yield more than one candidate; a
// well-formed set is never empty.
type MassSet []float64

// MassOracle computes the candidate masses of a contiguous window of a
// sequence. The window starts at index start and spans length residues; a
// zero-length window has mass set {0}.
//
// Implementations must be deterministic for fixed inputs and must never
// return an empty set.
type MassOracle interface {
	WindowMass(seq Sequence, start, length int) (MassSet, error)
}

// Codes returns the identity codes of the sequence as a string, ignoring
// modifications.
func (s Sequence) Codes() string {
	buf := make([]byte, len(s))
	for i, r := range s {
		buf[i] = r.Code
	}
	return string(buf)
}

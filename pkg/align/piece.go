package align

// MatchType classifies a single alignment step. The order of the constants is
// the preference order used to break score ties in the matrix fill: later
// (more informative) types win.
type MatchType uint8

const (
	// Gap consumes residues on one sequence only.
	Gap MatchType = iota
	// Mismatch is a 1-vs-1 step with different identity and different mass.
	Mismatch
	// FullIdentity is a 1-vs-1 step with identical identity and equivalent mass.
	FullIdentity
	// IdentityMassMismatch is a 1-vs-1 step with identical identity but a
	// mass difference, e.g. a modification on one of the two residues.
	IdentityMassMismatch
	// Isobaric is a step whose two windows have an equivalent mass but hold
	// different residues.
	Isobaric
	// Rotation is a multi-residue step whose two windows hold the same
	// residues in a different order.
	Rotation
)

func (m MatchType) String() string {
	switch m {
	case Gap:
		return "gap"
	case Mismatch:
		return "mismatch"
	case FullIdentity:
		return "identity"
	case IdentityMassMismatch:
		return "identity/mass mismatch"
	case Isobaric:
		return "isobaric"
	case Rotation:
		return "rotation"
	}
	return "unknown"
}

// Piece is one atomic step of an alignment: how many residues were consumed
// on each sequence, how the step is classified, its local score contribution
// and the cumulative score of the path up to and including this step.
//
// StepA and StepB are never both zero in a returned path, never both above 1
// unless the step is Isobaric or Rotation, and a zero step on one side always
// pairs with a step of exactly 1 on the other (no double or multi-residue
// gaps).
type Piece struct {
	Score int
	Local int
	Type  MatchType
	StepA int
	StepB int
}

func newPiece(score, local int, ty MatchType, stepA, stepB int) Piece {
	return Piece{Score: score, Local: local, Type: ty, StepA: stepA, StepB: stepB}
}

package align

import "errors"

// Errors reported by Align before or during the matrix fill. All of them are
// deterministic: a given bad input always fails the same way, and no partial
// alignment is ever returned.
var (
	// ErrInvalidTolerance is returned for a negative mass tolerance.
	ErrInvalidTolerance = errors.New("negative mass tolerance")

	// ErrInvalidAlphabet is returned when a residue code in either sequence
	// has no entry in the scoring matrix.
	ErrInvalidAlphabet = errors.New("residue not covered by scoring matrix")

	// ErrEmptyMassSet is returned when the mass oracle violates its contract
	// and reports an empty mass set for a window.
	ErrEmptyMassSet = errors.New("mass oracle returned an empty mass set")

	// ErrSequenceTooLarge is returned when a sequence exceeds the maximum
	// addressable length.
	ErrSequenceTooLarge = errors.New("sequence too large")

	// ErrInvalidSteps is returned when the maximal step size is below 1.
	ErrInvalidSteps = errors.New("maximal step size must be at least 1")
)

package align

import "fmt"

// Matrix is a substitution matrix over single-letter residue codes. Lookups
// are O(1) through a 256-entry index table, so the matrix works for any
// alphabet of byte codes, not just the standard amino acids.
type Matrix struct {
	alphabet string
	index    [256]int16 // -1 for codes outside the alphabet
	scores   []int8     // len(alphabet) x len(alphabet), row major
}

// NewMatrix builds a matrix from an alphabet and a square score table in the
// same order. Alignments expect the diagonal (self-substitution) entries of
// every code that actually occurs in a sequence to be positive; that is a
// configuration contract, not something enforced here.
func NewMatrix(alphabet string, scores [][]int8) (*Matrix, error) {
	n := len(alphabet)
	if n == 0 {
		return nil, fmt.Errorf("empty matrix alphabet")
	}
	if len(scores) != n {
		return nil, fmt.Errorf("matrix has %d rows, alphabet has %d codes", len(scores), n)
	}
	m := &Matrix{alphabet: alphabet, scores: make([]int8, n*n)}
	for i := range m.index {
		m.index[i] = -1
	}
	for i := 0; i < n; i++ {
		if len(scores[i]) != n {
			return nil, fmt.Errorf("matrix row %d has %d entries, alphabet has %d codes", i, len(scores[i]), n)
		}
		m.index[alphabet[i]] = int16(i)
		copy(m.scores[i*n:], scores[i])
	}
	return m, nil
}

// Identity builds an identity matrix over the given alphabet: match on the
// diagonal, mismatch everywhere else.
func Identity(alphabet string, match, mismatch int8) (*Matrix, error) {
	n := len(alphabet)
	scores := make([][]int8, n)
	for i := range scores {
		scores[i] = make([]int8, n)
		for j := range scores[i] {
			if i == j {
				scores[i][j] = match
			} else {
				scores[i][j] = mismatch
			}
		}
	}
	return NewMatrix(alphabet, scores)
}

// Contains reports whether the code has an entry in the matrix.
func (m *Matrix) Contains(c byte) bool { return m.index[c] >= 0 }

// Score returns the substitution score for an ordered pair of codes. Both
// codes must be contained in the matrix; Align validates this before the
// fill.
func (m *Matrix) Score(a, b byte) int {
	return int(m.scores[int(m.index[a])*len(m.alphabet)+int(m.index[b])])
}

// Alphabet returns the codes covered by this matrix, in matrix order.
func (m *Matrix) Alphabet() string { return m.alphabet }

const blosumAlphabet = "ARNDCQEGHILKMFPSTWYVBZX"

// BLOSUM62 is the standard NCBI BLOSUM62 matrix over the alphabet
// ARNDCQEGHILKMFPSTWYVBZX.
var BLOSUM62 = mustMatrix(blosumAlphabet, [][]int8{
	{4, -1, -2, -2, 0, -1, -1, 0, -2, -1, -1, -1, -1, -2, -1, 1, 0, -3, -2, 0, -2, -1, 0},
	{-1, 5, 0, -2, -3, 1, 0, -2, 0, -3, -2, 2, -1, -3, -2, -1, -1, -3, -2, -3, -1, 0, -1},
	{-2, 0, 6, 1, -3, 0, 0, 0, 1, -3, -3, 0, -2, -3, -2, 1, 0, -4, -2, -3, 3, 0, -1},
	{-2, -2, 1, 6, -3, 0, 2, -1, -1, -3, -4, -1, -3, -3, -1, 0, -1, -4, -3, -3, 4, 1, -1},
	{0, -3, -3, -3, 9, -3, -4, -3, -3, -1, -1, -3, -1, -2, -3, -1, -1, -2, -2, -1, -3, -3, -2},
	{-1, 1, 0, 0, -3, 5, 2, -2, 0, -3, -2, 1, 0, -3, -1, 0, -1, -2, -1, -2, 0, 3, -1},
	{-1, 0, 0, 2, -4, 2, 5, -2, 0, -3, -3, 1, -2, -3, -1, 0, -1, -3, -2, -2, 1, 4, -1},
	{0, -2, 0, -1, -3, -2, -2, 6, -2, -4, -4, -2, -3, -3, -2, 0, -2, -2, -3, -3, -1, -2, -1},
	{-2, 0, 1, -1, -3, 0, 0, -2, 8, -3, -3, -1, -2, -1, -2, -1, -2, -2, 2, -3, 0, 0, -1},
	{-1, -3, -3, -3, -1, -3, -3, -4, -3, 4, 2, -3, 1, 0, -3, -2, -1, -3, -1, 3, -3, -3, -1},
	{-1, -2, -3, -4, -1, -2, -3, -4, -3, 2, 4, -2, 2, 0, -3, -2, -1, -2, -1, 1, -4, -3, -1},
	{-1, 2, 0, -1, -3, 1, 1, -2, -1, -3, -2, 5, -1, -3, -1, 0, -1, -3, -2, -2, 0, 1, -1},
	{-1, -1, -2, -3, -1, 0, -2, -3, -2, 1, 2, -1, 5, 0, -2, -1, -1, -1, -1, 1, -3, -1, -1},
	{-2, -3, -3, -3, -2, -3, -3, -3, -1, 0, 0, -3, 0, 6, -4, -2, -2, 1, 3, -1, -3, -3, -1},
	{-1, -2, -2, -1, -3, -1, -1, -2, -2, -3, -3, -1, -2, -4, 7, -1, -1, -4, -3, -2, -2, -1, -2},
	{1, -1, 1, 0, -1, 0, 0, 0, -1, -2, -2, 0, -1, -2, -1, 4, 1, -3, -2, -2, 0, 0, 0},
	{0, -1, 0, -1, -1, -1, -1, -2, -2, -1, -1, -1, -1, -2, -1, 1, 5, -2, -2, 0, -1, -1, 0},
	{-3, -3, -4, -4, -2, -2, -3, -2, -2, -3, -2, -3, -1, 1, -4, -3, -2, 11, 2, -3, -4, -3, -2},
	{-2, -2, -2, -3, -2, -1, -2, -3, 2, -1, -1, -2, -1, 3, -3, -2, -2, 2, 7, -1, -3, -2, -1},
	{0, -3, -3, -3, -1, -2, -2, -3, -3, 3, 1, -2, 1, -1, -2, -2, 0, -3, -1, 4, -3, -2, -1},
	{-2, -1, 3, 4, -3, 0, 1, -1, 0, -3, -4, 0, -3, -3, -2, 0, -1, -4, -3, -3, 4, 1, -1},
	{-1, 0, 0, 1, -3, 3, 4, -2, 0, -3, -3, 1, -1, -3, -1, 0, -1, -3, -2, -2, 1, 4, -1},
	{0, -1, -1, -1, -2, -1, -1, -1, -1, -1, -1, -1, -1, -1, -2, 0, 0, -2, -1, -1, -1, -1, -1},
})

// IdentityAA is an identity matrix over the BLOSUM alphabet: 9 for a match,
// -5 for a mismatch.
var IdentityAA = mustIdentity(blosumAlphabet, 9, -5)

func mustMatrix(alphabet string, scores [][]int8) *Matrix {
	m, err := NewMatrix(alphabet, scores)
	if err != nil {
		panic(err)
	}
	return m
}

func mustIdentity(alphabet string, match, mismatch int8) *Matrix {
	m, err := Identity(alphabet, match, mismatch)
	if err != nil {
		panic(err)
	}
	return m
}

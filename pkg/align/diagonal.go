package align

import "fmt"

// diagonalCache precomputes the mass set of every window of length 1..steps
// ending at every position of one sequence, so the matrix fill never asks the
// oracle for the same window twice. The rows are ragged (position i holds
// min(i+1, steps) entries), stored in one flat slice with per-row offsets.
//
// A window of length L ending at inclusive index i covers residues
// [i-L+1, i]; all slicing below derives from that definition.
type diagonalCache struct {
	steps   int
	offsets []int
	sets    []MassSet
}

func newDiagonalCache(seq Sequence, oracle MassOracle, steps int) (*diagonalCache, error) {
	c := &diagonalCache{steps: steps, offsets: make([]int, len(seq))}
	total := 0
	for i := range seq {
		c.offsets[i] = total
		total += min(i+1, steps)
	}
	c.sets = make([]MassSet, total)
	for i := range seq {
		for l := 1; l <= min(i+1, steps); l++ {
			set, err := oracle.WindowMass(seq, i-l+1, l)
			if err != nil {
				return nil, fmt.Errorf("window mass of [%d..%d]: %w", i-l+1, i, err)
			}
			if len(set) == 0 {
				return nil, fmt.Errorf("%w: window [%d..%d]", ErrEmptyMassSet, i-l+1, i)
			}
			c.sets[c.offsets[i]+l-1] = set
		}
	}
	return c, nil
}

// window returns the cached mass set of the window of the given length
// ending at inclusive position end. The fill loops guarantee
// 1 <= length <= min(end+1, steps).
func (c *diagonalCache) window(end, length int) MassSet {
	return c.sets[c.offsets[end]+length-1]
}

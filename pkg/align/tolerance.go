package align

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Tolerance decides whether two mass sets are close enough to be treated as
// equivalent. It is either an absolute window in Dalton or a relative window
// in parts per million. The zero value is an absolute tolerance of 0 Da
// (exact equality up to floating point).
type Tolerance struct {
	value    float64
	relative bool
}

// Absolute returns a tolerance of delta Dalton.
func Absolute(delta float64) Tolerance {
	return Tolerance{value: delta}
}

// PPM returns a relative tolerance of the given parts per million.
func PPM(ppm float64) Tolerance {
	return Tolerance{value: ppm, relative: true}
}

// Validate reports ErrInvalidTolerance for a negative or NaN tolerance.
func (t Tolerance) Validate() error {
	if t.value < 0 || math.IsNaN(t.value) {
		return fmt.Errorf("%w: %v", ErrInvalidTolerance, t.value)
	}
	return nil
}

// Within reports whether any candidate in a is equivalent to any candidate in
// b. In ppm mode the window scales with the candidate from a that is being
// compared.
func (t Tolerance) Within(a, b MassSet) bool {
	for _, ma := range a {
		limit := t.value
		if t.relative {
			limit = math.Abs(ma) * t.value * 1e-6
		}
		for _, mb := range b {
			if math.Abs(ma-mb) <= limit {
				return true
			}
		}
	}
	return false
}

func (t Tolerance) String() string {
	if t.relative {
		return fmt.Sprintf("%gppm", t.value)
	}
	return fmt.Sprintf("%gda", t.value)
}

// ParseTolerance parses a tolerance string such as "10ppm" or "0.1da".
func ParseTolerance(s string) (Tolerance, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasSuffix(str, "ppm"):
		v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(str, "ppm")), 64)
		if err != nil {
			return Tolerance{}, fmt.Errorf("invalid tolerance %q: %w", s, err)
		}
		t := PPM(v)
		return t, t.Validate()
	case strings.HasSuffix(str, "da"):
		v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(str, "da")), 64)
		if err != nil {
			return Tolerance{}, fmt.Errorf("invalid tolerance %q: %w", s, err)
		}
		t := Absolute(v)
		return t, t.Validate()
	}
	return Tolerance{}, fmt.Errorf("invalid tolerance %q: expected a number followed by 'ppm' or 'da'", s)
}

package align

import (
	"math"
	"testing"
)

func TestDiagonalCacheWindows(t *testing.T) {
	s := seq("QVQEVS")
	const steps = 4
	c, err := newDiagonalCache(s, testMasses, steps)
	if err != nil {
		t.Fatalf("newDiagonalCache: %v", err)
	}
	for end := 0; end < len(s); end++ {
		for l := 1; l <= min(end+1, steps); l++ {
			want, err := testMasses.WindowMass(s, end-l+1, l)
			if err != nil {
				t.Fatalf("WindowMass: %v", err)
			}
			got := c.window(end, l)
			if len(got) != len(want) {
				t.Fatalf("window(%d, %d) has %d candidates, want %d", end, l, len(got), len(want))
			}
			for i := range got {
				if math.Abs(got[i]-want[i]) > 1e-12 {
					t.Errorf("window(%d, %d)[%d] = %g, want %g", end, l, i, got[i], want[i])
				}
			}
		}
	}
}

func TestDiagonalCacheAmbiguous(t *testing.T) {
	c, err := newDiagonalCache(seq("AB"), testMasses, 2)
	if err != nil {
		t.Fatalf("newDiagonalCache: %v", err)
	}
	if got := c.window(1, 2); len(got) != 2 {
		t.Errorf("ambiguous window has %d candidates, want 2", len(got))
	}
}

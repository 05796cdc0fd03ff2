package align

import "testing"

func TestBlosum62Values(t *testing.T) {
	tests := []struct {
		a, b byte
		want int
	}{
		{'A', 'A', 4},
		{'W', 'W', 11},
		{'L', 'I', 2},
		{'C', 'C', 9},
		{'G', 'A', 0},
		{'N', 'D', 1},
		{'Q', 'E', 2},
		{'W', 'V', -3},
	}
	for _, tt := range tests {
		if got := BLOSUM62.Score(tt.a, tt.b); got != tt.want {
			t.Errorf("Score(%c, %c) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestBlosum62Symmetry(t *testing.T) {
	alpha := BLOSUM62.Alphabet()
	for i := 0; i < len(alpha); i++ {
		for j := i + 1; j < len(alpha); j++ {
			ab := BLOSUM62.Score(alpha[i], alpha[j])
			ba := BLOSUM62.Score(alpha[j], alpha[i])
			if ab != ba {
				t.Errorf("Score(%c, %c) = %d but Score(%c, %c) = %d",
					alpha[i], alpha[j], ab, alpha[j], alpha[i], ba)
			}
		}
	}
}

func TestMatrixContains(t *testing.T) {
	if !BLOSUM62.Contains('A') {
		t.Error("Contains('A') = false")
	}
	if BLOSUM62.Contains('1') {
		t.Error("Contains('1') = true")
	}
	if BLOSUM62.Contains('a') {
		t.Error("Contains('a') = true, codes are case sensitive")
	}
}

func TestIdentityMatrix(t *testing.T) {
	m, err := Identity("AB", 9, -5)
	if err != nil {
		t.Fatalf("Identity: %v", err)
	}
	if got := m.Score('A', 'A'); got != 9 {
		t.Errorf("Score(A, A) = %d, want 9", got)
	}
	if got := m.Score('A', 'B'); got != -5 {
		t.Errorf("Score(A, B) = %d, want -5", got)
	}
}

func TestNewMatrixValidation(t *testing.T) {
	if _, err := NewMatrix("", nil); err == nil {
		t.Error("empty alphabet accepted")
	}
	if _, err := NewMatrix("AB", [][]int8{{1, 2}}); err == nil {
		t.Error("wrong row count accepted")
	}
	if _, err := NewMatrix("AB", [][]int8{{1, 2}, {1}}); err == nil {
		t.Error("ragged row accepted")
	}
}

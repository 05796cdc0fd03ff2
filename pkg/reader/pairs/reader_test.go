package pairs

import (
	"strings"
	"testing"
)

func TestReaderStreamsPairs(t *testing.T) {
	input := `id,seq_a,seq_b
p1,ACDE,ACDE
p2,AC[Carbamidomethyl]DE,ACDE

p3,EVQLVESGG,VQLVESGGA
`
	r := NewReader(strings.NewReader(input), nil)

	var ids []string
	for r.Next() {
		p := r.Pair()
		ids = append(ids, p.ID)
		if len(p.SeqA) == 0 || len(p.SeqB) == 0 {
			t.Errorf("pair %s has an empty sequence", p.ID)
		}
	}
	if err := r.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	if got, want := strings.Join(ids, " "), "p1 p2 p3"; got != want {
		t.Errorf("read pairs %q, want %q", got, want)
	}
}

func TestReaderParsesModifications(t *testing.T) {
	r := NewReader(strings.NewReader("p1,AC[Carbamidomethyl]DE,ACDE\n"), nil)
	if !r.Next() {
		t.Fatalf("Next() = false, Err() = %v", r.Err())
	}
	p := r.Pair()
	if p.SeqA[1].Mod == 0 {
		t.Error("modification was not attached to the second residue")
	}
	if p.RawA != "AC[Carbamidomethyl]DE" {
		t.Errorf("RawA = %q", p.RawA)
	}
}

func TestReaderErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing field", "p1,ACDE\n"},
		{"bad sequence", "p1,AC1DE,ACDE\n"},
		{"unknown modification", "p1,AC[NotAMod]DE,ACDE\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(strings.NewReader(tt.input), nil)
			if r.Next() {
				t.Fatal("Next() = true for malformed input")
			}
			if r.Err() == nil {
				t.Error("Err() = nil, want parse error")
			}
		})
	}
}

package align

import "testing"

func TestParseAlignType(t *testing.T) {
	tests := []struct {
		in   string
		want AlignType
	}{
		{"global", Global},
		{"local", Local},
		{"global-a", GlobalA},
		{"global-b", GlobalB},
		{"global-left", GlobalLeft},
		{"global-right", GlobalRight},
		{"extend-a", ExtendA},
		{"extend-b", ExtendB},
		{"either-global", EitherGlobal},
		{" Global ", Global},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAlignType(tt.in)
			if err != nil {
				t.Fatalf("ParseAlignType(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseAlignType(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
	if _, err := ParseAlignType("sideways"); err == nil {
		t.Error("unknown type accepted")
	}
}

func TestSidePredicates(t *testing.T) {
	tests := []struct {
		side             Side
		globalA, globalB bool
	}{
		{SideNone, false, false},
		{SideA, true, false},
		{SideB, false, true},
		{SideBoth, true, true},
		{SideEither, false, false},
	}
	for _, tt := range tests {
		if got := tt.side.GlobalA(); got != tt.globalA {
			t.Errorf("%v.GlobalA() = %v, want %v", tt.side, got, tt.globalA)
		}
		if got := tt.side.GlobalB(); got != tt.globalB {
			t.Errorf("%v.GlobalB() = %v, want %v", tt.side, got, tt.globalB)
		}
		if got, want := tt.side.Global(), tt.side != SideNone; got != want {
			t.Errorf("%v.Global() = %v, want %v", tt.side, got, want)
		}
	}
}

package align

import (
	"errors"
	"testing"
)

func TestToleranceWithin(t *testing.T) {
	tests := []struct {
		name string
		tol  Tolerance
		a, b MassSet
		want bool
	}{
		{"exact absolute", Absolute(0.5), MassSet{100.0}, MassSet{100.4}, true},
		{"outside absolute", Absolute(0.5), MassSet{100.0}, MassSet{100.6}, false},
		{"boundary absolute", Absolute(0.5), MassSet{100.0}, MassSet{100.5}, true},
		{"ppm close", PPM(10), MassSet{1000.0}, MassSet{1000.005}, true},
		{"ppm far", PPM(10), MassSet{1000.0}, MassSet{1000.02}, false},
		{"any candidate pair", Absolute(0.1), MassSet{100.0, 200.0}, MassSet{300.0, 200.05}, true},
		{"no candidate pair", Absolute(0.1), MassSet{100.0, 200.0}, MassSet{300.0, 400.0}, false},
		{"zero tolerance equal", Absolute(0), MassSet{100.0}, MassSet{100.0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tol.Within(tt.a, tt.b); got != tt.want {
				t.Errorf("Within(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestToleranceValidate(t *testing.T) {
	if err := PPM(10).Validate(); err != nil {
		t.Errorf("PPM(10).Validate() = %v", err)
	}
	if err := Absolute(-0.1).Validate(); !errors.Is(err, ErrInvalidTolerance) {
		t.Errorf("Absolute(-0.1).Validate() = %v, want %v", err, ErrInvalidTolerance)
	}
}

func TestParseTolerance(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"10ppm", "10ppm", true},
		{"0.1da", "0.1da", true},
		{"5 PPM", "5ppm", true},
		{"0.5 Da", "0.5da", true},
		{"-1ppm", "", false},
		{"10", "", false},
		{"ppm", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			tol, err := ParseTolerance(tt.in)
			if tt.ok != (err == nil) {
				t.Fatalf("ParseTolerance(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
			}
			if tt.ok && tol.String() != tt.want {
				t.Errorf("ParseTolerance(%q) = %v, want %v", tt.in, tol, tt.want)
			}
		})
	}
}

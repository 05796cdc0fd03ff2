package align

import (
	"fmt"
	"strings"
)

// Side describes the boundary rules for one end (start or end) of an
// alignment: which of the two sequences must be fully consumed up to that
// boundary.
type Side uint8

const (
	// SideNone leaves both sequences free at this boundary (local).
	SideNone Side = iota
	// SideA requires sequence A to reach this boundary.
	SideA
	// SideB requires sequence B to reach this boundary.
	SideB
	// SideBoth requires both sequences to reach this boundary (global).
	SideBoth
	// SideEither requires at least one of the two sequences to reach this
	// boundary, whichever scores better.
	SideEither
)

// GlobalA reports whether sequence A is pinned to this boundary. SideEither
// pins neither sequence individually.
func (s Side) GlobalA() bool { return s == SideA || s == SideBoth }

// GlobalB reports whether sequence B is pinned to this boundary.
func (s Side) GlobalB() bool { return s == SideB || s == SideBoth }

// Global reports whether this boundary constrains any sequence at all.
func (s Side) Global() bool { return s != SideNone }

func (s Side) String() string {
	switch s {
	case SideNone:
		return "local"
	case SideA:
		return "global A"
	case SideB:
		return "global B"
	case SideBoth:
		return "global"
	case SideEither:
		return "either global"
	}
	return "unknown"
}

// AlignType is the boundary regime of an alignment: the rules for the left
// (start) side and the right (end) side. It is immutable for one call.
type AlignType struct {
	Left  Side
	Right Side
}

// The named boundary regimes.
var (
	// Global links both sequences fully to each other (Needleman-Wunsch).
	Global = AlignType{SideBoth, SideBoth}
	// Local finds the best-scoring patch of both sequences (Smith-Waterman).
	Local = AlignType{SideNone, SideNone}
	// GlobalA fully consumes sequence A; B may have trailing ends.
	GlobalA = AlignType{SideA, SideA}
	// GlobalB fully consumes sequence B; A may have trailing ends.
	GlobalB = AlignType{SideB, SideB}
	// GlobalLeft pins both sequences at the start only.
	GlobalLeft = AlignType{SideBoth, SideNone}
	// GlobalRight pins both sequences at the end only.
	GlobalRight = AlignType{SideNone, SideBoth}
	// ExtendA extends sequence A with sequence B.
	ExtendA = AlignType{SideB, SideA}
	// ExtendB extends sequence B with sequence A.
	ExtendB = AlignType{SideA, SideB}
	// EitherGlobal requires one of the sequences, whichever fits best, to be
	// fully consumed on each side.
	EitherGlobal = AlignType{SideEither, SideEither}
)

func (t AlignType) String() string {
	if t.Left == t.Right {
		return t.Left.String()
	}
	return fmt.Sprintf("%s left, %s right", t.Left, t.Right)
}

// ParseAlignType parses a boundary regime name as used on the command line:
// global, local, global-a, global-b, global-left, global-right, extend-a,
// extend-b or either-global.
func ParseAlignType(s string) (AlignType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "global":
		return Global, nil
	case "local":
		return Local, nil
	case "global-a":
		return GlobalA, nil
	case "global-b":
		return GlobalB, nil
	case "global-left":
		return GlobalLeft, nil
	case "global-right":
		return GlobalRight, nil
	case "extend-a":
		return ExtendA, nil
	case "extend-b":
		return ExtendB, nil
	case "either-global":
		return EitherGlobal, nil
	}
	return AlignType{}, fmt.Errorf("unknown alignment type %q", s)
}

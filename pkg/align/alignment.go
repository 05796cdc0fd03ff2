package align

import (
	"fmt"
	"math"
	"strings"
)

// Score summarizes the scoring of a finished alignment. Maximal is the
// average of the scores the two aligned slices would reach against
// themselves, rounded down; Normalized is Absolute/Maximal (0 for an empty
// alignment).
type Score struct {
	Absolute   int
	Maximal    int
	Normalized float64
}

// Alignment is the result of one Align call. It is immutable once returned
// and independent of the internal matrix state, so it stays valid after the
// call's working memory is gone.
type Alignment struct {
	SeqA, SeqB     Sequence
	Path           []Piece
	StartA, StartB int
	Score          Score
	Type           AlignType
	Steps          int

	oracle MassOracle
}

// LenA is the total number of residues the path consumes on sequence A.
func (al *Alignment) LenA() int {
	n := 0
	for _, p := range al.Path {
		n += p.StepA
	}
	return n
}

// LenB is the total number of residues the path consumes on sequence B.
func (al *Alignment) LenB() int {
	n := 0
	for _, p := range al.Path {
		n += p.StepB
	}
	return n
}

// Short renders the path as a compact CIGAR-like string: I for an insertion,
// D for a deletion, = for a match, X for a mismatch, each prefixed with its
// run length, plus {len}r or {lenA}:{lenB}r for rotations and {len}i or
// {lenA}:{lenB}i for isobaric steps.
func (al *Alignment) Short() string {
	var sb strings.Builder
	posA, posB := al.StartA, al.StartB
	var runClass byte
	runLen := 0
	flush := func() {
		if runLen > 0 {
			fmt.Fprintf(&sb, "%d%c", runLen, runClass)
			runLen = 0
		}
	}
	for _, p := range al.Path {
		var special byte
		switch p.Type {
		case Isobaric:
			special = 'i'
		case Rotation:
			special = 'r'
		}
		if special != 0 {
			flush()
			if p.StepA == p.StepB {
				fmt.Fprintf(&sb, "%d%c", p.StepA, special)
			} else {
				fmt.Fprintf(&sb, "%d:%d%c", p.StepA, p.StepB, special)
			}
		} else {
			var class byte
			switch {
			case p.StepA == 0 && p.StepB == 1:
				class = 'I'
			case p.StepA == 1 && p.StepB == 0:
				class = 'D'
			case al.SeqA[posA] == al.SeqB[posB]:
				class = '='
			default:
				class = 'X'
			}
			if class != runClass {
				flush()
				runClass = class
			}
			runLen++
		}
		posA += p.StepA
		posB += p.StepB
	}
	flush()
	return sb.String()
}

// Stats are the derived counts of an alignment. Each count sums
// max(stepA, stepB) of the pieces in its category, except Gaps which counts
// gap pieces as occurrences. Length is the longer of the two consumed slice
// lengths; divide any count by it for a fraction.
type Stats struct {
	// Identical counts positions with identical residue identity
	// (FullIdentity and IdentityMassMismatch pieces).
	Identical int
	// MassSimilar counts positions with an equivalent mass (FullIdentity,
	// Isobaric and Rotation pieces).
	MassSimilar int
	// Similar counts 1-vs-1 positions with a non-negative local score.
	Similar int
	// Gaps counts gap pieces.
	Gaps int
	// Length is max(LenA, LenB).
	Length int
}

// Stats computes the derived counts for this alignment.
func (al *Alignment) Stats() Stats {
	var s Stats
	for _, p := range al.Path {
		step := max(p.StepA, p.StepB)
		switch p.Type {
		case FullIdentity:
			s.Identical += step
			s.MassSimilar += step
		case IdentityMassMismatch:
			s.Identical += step
		case Isobaric, Rotation:
			s.MassSimilar += step
		case Gap:
			s.Gaps++
		}
		switch p.Type {
		case FullIdentity, IdentityMassMismatch, Mismatch:
			if p.Local >= 0 {
				s.Similar += step
			}
		}
	}
	s.Length = max(al.LenA(), al.LenB())
	return s
}

// MassDifference returns the smallest-magnitude mass delta (a minus b, in
// Dalton) across all candidate mass combinations of the two matched slices.
// When a sequence is aligned globally on both sides its full mass is used;
// otherwise only the aligned slice counts.
func (al *Alignment) MassDifference() (float64, error) {
	ma, mb, err := al.matchedMasses()
	if err != nil {
		return 0, err
	}
	best := math.Inf(1)
	for _, a := range ma {
		for _, b := range mb {
			if d := a - b; math.Abs(d) < math.Abs(best) {
				best = d
			}
		}
	}
	return best, nil
}

// PPM returns the smallest mass error in parts per million across all
// candidate mass combinations of the two matched slices.
func (al *Alignment) PPM() (float64, error) {
	ma, mb, err := al.matchedMasses()
	if err != nil {
		return 0, err
	}
	best := math.Inf(1)
	for _, a := range ma {
		for _, b := range mb {
			d := math.Abs(a - b)
			var ppm float64
			switch {
			case d == 0:
				ppm = 0
			case a == 0:
				ppm = math.Inf(1)
			default:
				ppm = d / math.Abs(a) * 1e6
			}
			if ppm < best {
				best = ppm
			}
		}
	}
	return best, nil
}

func (al *Alignment) matchedMasses() (MassSet, MassSet, error) {
	ma, err := al.sideMasses(al.SeqA, al.StartA, al.LenA(),
		al.Type.Left.GlobalA() && al.Type.Right.GlobalA())
	if err != nil {
		return nil, nil, fmt.Errorf("sequence a: %w", err)
	}
	mb, err := al.sideMasses(al.SeqB, al.StartB, al.LenB(),
		al.Type.Left.GlobalB() && al.Type.Right.GlobalB())
	if err != nil {
		return nil, nil, fmt.Errorf("sequence b: %w", err)
	}
	return ma, mb, nil
}

func (al *Alignment) sideMasses(seq Sequence, start, length int, whole bool) (MassSet, error) {
	if whole {
		start, length = 0, len(seq)
	}
	set, err := al.oracle.WindowMass(seq, start, length)
	if err != nil {
		return nil, err
	}
	if len(set) == 0 {
		return nil, ErrEmptyMassSet
	}
	return set, nil
}

// Aligned renders the two sequences on top of each other: '-' for gaps and
// '·' padding where a special step consumes fewer residues on one side.
func (al *Alignment) Aligned() (string, string) {
	var la, lb strings.Builder
	posA, posB := al.StartA, al.StartB
	for _, p := range al.Path {
		width := max(p.StepA, p.StepB)
		writeAlignedSide(&la, al.SeqA, posA, p.StepA, width)
		writeAlignedSide(&lb, al.SeqB, posB, p.StepB, width)
		posA += p.StepA
		posB += p.StepB
	}
	return la.String(), lb.String()
}

func writeAlignedSide(sb *strings.Builder, seq Sequence, pos, step, width int) {
	for i := 0; i < step; i++ {
		sb.WriteByte(seq[pos+i].Code)
	}
	for i := step; i < width; i++ {
		if step == 0 {
			sb.WriteByte('-')
		} else {
			sb.WriteString("·")
		}
	}
}

// Summary renders the alignment for terminal output.
func (al *Alignment) Summary() string {
	a, b := al.Aligned()
	return fmt.Sprintf("score: %d (%.3f normalized)\npath: %s\nstart: (%d, %d)\naligned:\n%s\n%s",
		al.Score.Absolute, al.Score.Normalized, al.Short(), al.StartA, al.StartB, a, b)
}

// finalScore derives the score summary from a finished path.
func finalScore(seqA, seqB Sequence, startA, startB int, path []Piece, sc Scoring) Score {
	lenA, lenB := 0, 0
	for _, p := range path {
		lenA += p.StepA
		lenB += p.StepB
	}
	sum := 0
	for _, r := range seqA[startA : startA+lenA] {
		sum += sc.Matrix.Score(r.Code, r.Code)
	}
	for _, r := range seqB[startB : startB+lenB] {
		sum += sc.Matrix.Score(r.Code, r.Code)
	}
	maximal := sum / 2
	absolute := 0
	if len(path) > 0 {
		absolute = path[len(path)-1].Score
	}
	s := Score{Absolute: absolute, Maximal: maximal}
	if maximal != 0 {
		s.Normalized = float64(absolute) / float64(maximal)
	}
	return s
}

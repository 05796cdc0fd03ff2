package align

import (
	"fmt"
	"math"
)

// maxSequenceLen keeps the flat table index arithmetic in range on every
// platform.
const maxSequenceLen = math.MaxInt32

// Align aligns two sequences based on mass and homology. The oracle provides
// window masses, scoring carries the substitution matrix, tolerance and
// penalty knobs, ty selects the boundary regime and steps bounds how many
// residues a single alignment step may consume on either sequence.
//
// The call is pure and synchronous: it owns no shared state, so independent
// calls may run concurrently without coordination. Either a complete
// Alignment is returned or an error; there is no partial result.
func Align(seqA, seqB Sequence, oracle MassOracle, scoring Scoring, ty AlignType, steps int) (*Alignment, error) {
	if steps < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSteps, steps)
	}
	if len(seqA) > maxSequenceLen || len(seqB) > maxSequenceLen {
		return nil, fmt.Errorf("%w: %d x %d", ErrSequenceTooLarge, len(seqA), len(seqB))
	}
	if err := scoring.Tolerance.Validate(); err != nil {
		return nil, err
	}
	if scoring.Matrix == nil {
		return nil, fmt.Errorf("%w: no scoring matrix configured", ErrInvalidAlphabet)
	}
	if oracle == nil {
		return nil, fmt.Errorf("align: no mass oracle configured")
	}
	for _, seq := range []Sequence{seqA, seqB} {
		for i, r := range seq {
			if !scoring.Matrix.Contains(r.Code) {
				return nil, fmt.Errorf("%w: %q at index %d", ErrInvalidAlphabet, string(r.Code), i)
			}
		}
	}

	cacheA, err := newDiagonalCache(seqA, oracle, steps)
	if err != nil {
		return nil, fmt.Errorf("sequence a: %w", err)
	}
	cacheB, err := newDiagonalCache(seqB, oracle, steps)
	if err != nil {
		return nil, fmt.Errorf("sequence b: %w", err)
	}

	t := newTable(len(seqA), len(seqB))
	if ty.Left.GlobalA() {
		t.globalStart(true, scoring)
	}
	if ty.Left.GlobalB() {
		t.globalStart(false, scoring)
	}

	// Highest-scoring cell seen anywhere, the endpoint candidate for local
	// and hybrid regimes.
	high := cellRef{}

	for ia := 1; ia <= len(seqA); ia++ {
		for ib := 1; ib <= len(seqB); ib++ {
			var best Piece
			found := false
			for la := 0; la <= min(ia, steps); la++ {
				for lb := 0; lb <= min(ib, steps); lb++ {
					// No double gaps and no multi-residue single-sided
					// gaps: a zero step on one side pairs with exactly 1
					// on the other.
					if la == 0 && lb != 1 || la != 1 && lb == 0 {
						continue
					}
					prev := t.get(ia-la, ib-lb)
					var p Piece
					ok := true
					switch {
					case la == 0 || lb == 0:
						p = gapPiece(prev, scoring, la, lb)
					case la == 1 && lb == 1:
						p = scorePair(seqA[ia-1], cacheA.window(ia-1, 1),
							seqB[ib-1], cacheB.window(ib-1, 1), scoring, prev.Score)
					default:
						p, ok = scoreWindow(seqA[ia-la:ia], cacheA.window(ia-1, la),
							seqB[ib-lb:ib], cacheB.window(ib-1, lb), scoring, prev.Score)
					}
					if ok && (!found || better(p, best)) {
						best = p
						found = true
					}
				}
			}
			switch {
			case found:
				if best.Score >= high.score {
					high = cellRef{best.Score, ia, ib}
				}
				// Local starts floor the table at zero, Smith-Waterman
				// style; only positive prefixes are worth extending.
				if ty.Left.Global() || best.Score > 0 {
					t.set(ia, ib, best)
				}
			case ty.Left.Global():
				// Force a 1-vs-1 comparison so the table stays fully
				// populated for global traceback.
				prev := t.get(ia-1, ib-1)
				t.set(ia, ib, scorePair(seqA[ia-1], cacheA.window(ia-1, 1),
					seqB[ib-1], cacheB.window(ib-1, 1), scoring, prev.Score))
			}
		}
	}

	startA, startB, path := t.tracePath(ty, high)
	return &Alignment{
		SeqA:   seqA,
		SeqB:   seqB,
		Path:   path,
		StartA: startA,
		StartB: startB,
		Score:  finalScore(seqA, seqB, startA, startB, path, scoring),
		Type:   ty,
		Steps:  steps,
		oracle: oracle,
	}, nil
}

// better decides whether candidate p should replace the current best piece of
// a cell. Higher cumulative score wins; ties prefer the smallest combined
// step, then the smallest step on sequence A, then the more informative match
// type, making the choice independent of enumeration order.
func better(p, best Piece) bool {
	if p.Score != best.Score {
		return p.Score > best.Score
	}
	if ps, bs := p.StepA+p.StepB, best.StepA+best.StepB; ps != bs {
		return ps < bs
	}
	if p.StepA != best.StepA {
		return p.StepA < best.StepA
	}
	return p.Type > best.Type
}

// gapPiece scores a single-residue gap with affine costs: opening a gap pays
// GapStart on top of GapExtend, continuing a gap in the same direction pays
// GapExtend only.
func gapPiece(prev Piece, sc Scoring, la, lb int) Piece {
	firstStep := prev.StepA == 0 && prev.StepB == 0
	sameDirection := prev.StepA == 0 && la == 0 || prev.StepB == 0 && lb == 0
	local := sc.GapExtend
	if firstStep || !sameDirection {
		local += sc.GapStart
	}
	return newPiece(prev.Score+local, local, Gap, la, lb)
}

// scorePair scores a 1-vs-1 step from residue identity and mass equivalence.
func scorePair(a Residue, ma MassSet, b Residue, mb MassSet, sc Scoring, base int) Piece {
	identical := a.Code == b.Code
	within := sc.Tolerance.Within(ma, mb)
	switch {
	case identical && within:
		local := sc.Matrix.Score(a.Code, b.Code)
		return newPiece(base+local, local, FullIdentity, 1, 1)
	case identical:
		local := sc.Matrix.Score(a.Code, b.Code) + sc.MassMismatch
		return newPiece(base+local, local, IdentityMassMismatch, 1, 1)
	case within:
		return newPiece(base+sc.Isobaric, sc.Isobaric, Isobaric, 1, 1)
	default:
		local := sc.Matrix.Score(a.Code, b.Code)
		return newPiece(base+local, local, Mismatch, 1, 1)
	}
}

// scoreWindow scores a multi-residue step (at least one window longer than
// one residue). Windows that are not mass-equivalent yield no candidate at
// all; equivalent ones are classified as a rotation when window B is a
// permutation of window A and as generic isobaric otherwise.
func scoreWindow(wa []Residue, ma MassSet, wb []Residue, mb MassSet, sc Scoring, base int) (Piece, bool) {
	if !sc.Tolerance.Within(ma, mb) {
		return Piece{}, false
	}
	if len(wa) == len(wb) && isPermutation(wa, wb) {
		local := sc.BaseSpecial + sc.Rotated*len(wa)
		return newPiece(base+local, local, Rotation, len(wa), len(wb)), true
	}
	local := sc.BaseSpecial + sc.Isobaric*(len(wa)+len(wb))/2
	return newPiece(base+local, local, Isobaric, len(wa), len(wb)), true
}

// isPermutation reports whether b holds exactly the residues of a in some
// order, via greedy consumption. Windows are at most steps residues long, so
// the quadratic scan stays cheap.
func isPermutation(a, b []Residue) bool {
	used := make([]bool, len(b))
	for _, ra := range a {
		found := false
		for i, rb := range b {
			if !used[i] && rb == ra {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// table is the DP state: (lenA+1) x (lenB+1) pieces in one flat slice, each
// cell holding the best-scoring explanation of the prefixes ending there.
type table struct {
	cells []Piece
	a, b  int
}

func newTable(a, b int) *table {
	return &table{cells: make([]Piece, (a+1)*(b+1)), a: a, b: b}
}

func (t *table) get(i, j int) Piece    { return t.cells[i*(t.b+1)+j] }
func (t *table) set(i, j int, p Piece) { t.cells[i*(t.b+1)+j] = p }

// globalStart fills row or column zero with the affine gap ladder used when
// the corresponding sequence start is pinned: the first step pays
// GapStart+GapExtend, every further step GapExtend only.
func (t *table) globalStart(isA bool, sc Scoring) {
	n := t.b
	if isA {
		n = t.a
	}
	for i := 1; i <= n; i++ {
		local := sc.GapExtend
		if i == 1 {
			local += sc.GapStart
		}
		p := newPiece(sc.GapStart+i*sc.GapExtend, local, Gap, 0, 1)
		if isA {
			p.StepA, p.StepB = 1, 0
			t.set(i, 0, p)
		} else {
			t.set(0, i, p)
		}
	}
}

package align

// cellRef points at one table cell together with its score.
type cellRef struct {
	score int
	a, b  int
}

// tracePath walks the filled table back from the end cell determined by the
// boundary regime, collecting the pieces of the best path and returning the
// start indices on both sequences with the path in forward order.
func (t *table) tracePath(ty AlignType, high cellRef) (startA, startB int, path []Piece) {
	cur := t.findEnd(ty, high)
	for ty.Left.Global() || !(cur.a == 0 && cur.b == 0) {
		v := t.get(cur.a, cur.b)
		// A zero step marks "not yet started"; for a free start a negative
		// prefix is not worth including either.
		if v.StepA == 0 && v.StepB == 0 || !ty.Left.Global() && v.Score < 0 {
			break
		}
		cur.a -= v.StepA
		cur.b -= v.StepB
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return cur.a, cur.b, path
}

// findEnd determines the end cell of the alignment: the corner when both
// sequence ends are pinned, the best cell of the last row or column when one
// of them is, the better of those two scans when either may end, and the
// globally highest cell otherwise (local).
func (t *table) findEnd(ty AlignType, high cellRef) cellRef {
	switch {
	case ty.Right.GlobalA() && ty.Right.GlobalB():
		return cellRef{t.get(t.a, t.b).Score, t.a, t.b}
	case ty.Right.GlobalB():
		return t.bestInColumn()
	case ty.Right.GlobalA():
		return t.bestInRow()
	case ty.Right.Global():
		col, row := t.bestInColumn(), t.bestInRow()
		if col.score >= row.score {
			return col
		}
		return row
	}
	return high
}

// bestInColumn scans the last column (sequence B fully consumed).
func (t *table) bestInColumn() cellRef {
	best := cellRef{t.get(0, t.b).Score, 0, t.b}
	for i := 1; i <= t.a; i++ {
		if s := t.get(i, t.b).Score; s >= best.score {
			best = cellRef{s, i, t.b}
		}
	}
	return best
}

// bestInRow scans the last row (sequence A fully consumed).
func (t *table) bestInRow() cellRef {
	best := cellRef{t.get(t.a, 0).Score, t.a, 0}
	for j := 1; j <= t.b; j++ {
		if s := t.get(t.a, j).Score; s >= best.score {
			best = cellRef{s, t.a, j}
		}
	}
	return best
}

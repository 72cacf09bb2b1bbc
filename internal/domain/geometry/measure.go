package geometry

import "math"

// measure returns the feet between two pixel points counted in grid spaces,
// or straight-line feet on a gridless scene.
func measure(g Grid, x1, y1, x2, y2 float64) float64 {
	if g.Type == GridGridless {
		return math.Hypot(x2-x1, y2-y1) / g.Size * g.Distance
	}

	nx := math.Ceil(math.Abs(x2-x1) / g.Size)
	ny := math.Ceil(math.Abs(y2-y1) / g.Size)
	nd := math.Min(nx, ny)
	ns := math.Abs(nx - ny)

	var spaces float64
	switch g.Diagonals {
	case Diagonals555:
		spaces = nd + ns
	default:
		nd10 := math.Floor(nd / 2)
		spaces = nd10*2 + (nd - nd10) + ns
	}
	return spaces * g.Distance
}

func distance(a, b *Token) float64 {
	if isSharingSquare(a, b) {
		return 0
	}

	g := a.grid()

	x1, x2 := a.Bounds.Left(), b.Bounds.Left()
	switch {
	case a.isLeftOf(b):
		x1 += a.Bounds.W - g.Size
	case a.isRightOf(b):
		x2 += b.Bounds.W - g.Size
	default:
		x2 = x1
	}

	y1, y2 := a.Bounds.Top(), b.Bounds.Top()
	switch {
	case a.isAbove(b):
		y1 += a.Bounds.H - g.Size
	case a.isBelow(b):
		y2 += b.Bounds.H - g.Size
	default:
		y2 = y1
	}

	z1, z2 := a.floor(), b.floor()
	switch {
	case a.isAboveCeiling(b):
		z2 = b.ceiling() - g.Size
	case a.isBelowFloor(b):
		z1 = a.ceiling() - g.Size
	default:
		z2 = z1
	}

	horizontal := measure(g, x1, y1, x2, y2)
	if z1 == z2 {
		return horizontal
	}

	vertical := measure(g, 0, z1, 0, z2)
	d := math.Round(math.Sqrt(horizontal*horizontal+vertical*vertical)*10) / 10
	if g.Type == GridGridless {
		return d
	}
	return math.Floor(d/g.Distance) * g.Distance
}

func isSharingSquare(a, b *Token) bool {
	sharing := func(f, s *Token) bool {
		return f.Bounds.Intersects(s.Bounds) && !f.isAboveCeiling(s) && !f.isBelowFloor(s)
	}
	return sharing(a, b) || sharing(b, a)
}

// isAdjacent grows a by one pixel, or by a full cell in diagonal reach mode,
// and checks both footprint and vertical overlap against b.
func isAdjacent(a, b *Token, diagonalReach bool) bool {
	g := a.grid()
	floor, ceiling := a.floor(), a.ceiling()

	var enlarged Rect
	if diagonalReach {
		enlarged = a.Bounds.Expand(g.Size + 1)
		floor -= g.Size
		ceiling += g.Size
	} else {
		enlarged = a.Bounds.Expand(1)
	}

	if !enlarged.Intersects(b.Bounds) {
		return false
	}

	bFloor, bCeiling := b.floor(), b.ceiling()
	return (bFloor <= ceiling && ceiling <= bCeiling) ||
		(bFloor <= floor && floor <= bCeiling) ||
		(ceiling >= bCeiling && bCeiling >= floor)
}

func isWithinRange(a, b *Token, minFeet, maxFeet float64, reach bool) bool {
	if math.IsNaN(minFeet) {
		minFeet = 0
	}
	if math.IsNaN(maxFeet) {
		maxFeet = math.Inf(1)
	}

	// 10ft reach threatens the second diagonal even though 5105 measures it at 15ft
	if reach && maxFeet == 10 && isAdjacent(a, b, true) && (minFeet == 0 || !isAdjacent(a, b, false)) {
		return true
	}

	d := distance(a, b)
	return (minFeet == 0 && d == 0) || (minFeet < d && d <= maxFeet)
}

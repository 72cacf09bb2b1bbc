package geometry

// Rect is an axis-aligned box in scene pixels.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects is strict: boxes that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Expand grows the box by d on every side
func (r Rect) Expand(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// SegmentCrosses reports whether the open segment (x1,y1)-(x2,y2) passes
// through the interior of r. Grazing an edge or a corner does not count.
func (r Rect) SegmentCrosses(x1, y1, x2, y2 float64) bool {
	dx, dy := x2-x1, y2-y1
	t0, t1 := 0.0, 1.0

	clip := func(p, q float64) bool {
		if p == 0 {
			return q > 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return false
			}
			t1 = min(t1, t)
		}
		return true
	}

	if !clip(-dx, x1-r.Left()) || !clip(dx, r.Right()-x1) ||
		!clip(-dy, y1-r.Top()) || !clip(dy, r.Bottom()-y1) {
		return false
	}
	return t0 < t1
}

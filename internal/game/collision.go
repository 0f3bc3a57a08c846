package game

import "math"

// CircleCircle reports whether two circles overlap. Touching circles do not.
func CircleCircle(a, b Circle) bool {
	return distance(a.X, a.Y, b.X, b.Y) < float64(a.R+b.R)
}

// CircleRect reports whether a circle overlaps a box, using the point of the
// box closest to the circle center.
func CircleRect(c Circle, r Rect) bool {
	cx := clamp(c.X, r.X, r.Right())
	cy := clamp(c.Y, r.Y, r.Bottom())
	return distance(cx, cy, c.X, c.Y) < float64(c.R)
}

// Enclosed reports whether inner lies entirely within outer.
func Enclosed(inner, outer Rect) bool {
	return inner.X >= outer.X && inner.Right() <= outer.Right() &&
		inner.Y >= outer.Y && inner.Bottom() <= outer.Bottom()
}

func distance(x1, y1, x2, y2 int) float64 {
	return math.Hypot(float64(x1-x2), float64(y1-y2))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

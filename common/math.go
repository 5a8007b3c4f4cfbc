package common

import "math"

// Clamp limits v to the closed range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ClampInt limits v to the closed range [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Dist2 returns the squared distance between two points.
// Collision checks compare it against a squared radius to skip the sqrt.
func Dist2(ax, ay, bx, by float64) float64 {
	dx := ax - bx
	dy := ay - by
	return dx*dx + dy*dy
}

// Overlaps reports whether two circles touch.
func Overlaps(ax, ay, ar, bx, by, br float64) bool {
	r := ar + br
	return Dist2(ax, ay, bx, by) <= r*r
}

// Normalize scales (x, y) to unit length.
// A zero-length vector stays zero instead of producing NaN.
func Normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 || math.IsNaN(l) {
		return 0, 0
	}
	return x / l, y / l
}

// LimitLength scales (x, y) down to unit length when it is longer than 1.
func LimitLength(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l > 1 {
		return x / l, y / l
	}
	return x, y
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

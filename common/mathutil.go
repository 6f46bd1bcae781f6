package common

import "math"

// Source is anything that yields uniform values in [0, 1).
// *SeededRNG and *math/rand.Rand both satisfy it.
type Source interface {
	Float64() float64
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// RandRange returns a value drawn uniformly from [min, max).
func RandRange(src Source, min, max float64) float64 {
	return src.Float64()*(max-min) + min
}

// DistSq returns the squared distance between two points.
// Collision tests compare it against a squared radius sum, so no sqrt is needed.
func DistSq(ax, ay, bx, by float64) float64 {
	dx := ax - bx
	dy := ay - by
	return dx*dx + dy*dy
}

// Overlaps reports whether two circles intersect.
func Overlaps(ax, ay, ar, bx, by, br float64) bool {
	r := ar + br
	return DistSq(ax, ay, bx, by) < r*r
}

// WrapHue folds a hue back into [0, 360).
func WrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

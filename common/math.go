package common

import "math"

// Logical screen size. The maze image is authored at this resolution, so at
// zoom 1 with no pan one world pixel maps to one screen pixel.
const (
	BaseWidth  = 1980
	BaseHeight = 1080
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ApproxEqual reports whether a and b differ by at most eps.
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

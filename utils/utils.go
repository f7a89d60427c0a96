package utils

import (
	"math"
)

// Tolerance (relative) within which a derived sample count is treated as a
// whole number. Anything further out is a configuration error.
const sampleTolerance = 1e-6

func Deg(rads float64) float64 {
	return rads / (math.Pi / 180)
}

// Finite returns true if every value is neither NaN nor infinite.
func Finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// Samples returns the number of sample periods which fit into the given
// duration, and whether that number is finite, positive and (almost exactly)
// whole. The count is not rounded when ok is false.
func Samples(duration, period float64) (n float64, ok bool) {
	n = duration / period
	if !Finite(n) || n <= 0 {
		return n, false
	}

	r := math.Round(n)
	if r < 1 || math.Abs(n-r) > sampleTolerance*r {
		return n, false
	}

	return r, true
}

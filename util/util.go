package util

import (
	"golang.org/x/exp/constraints"
)

// Clamp pins v to the inclusive range [lo, hi].
func Clamp[A constraints.Ordered](v A, lo A, hi A) A {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

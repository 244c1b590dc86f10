package utils

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Mod returns a modulo n, always in [0,n) for a positive n.
func Mod[A constraints.Integer](a A, n A) A {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// ModFloat is the floating point equivalent of Mod.
func ModFloat(a, n float64) float64 {
	m := math.Mod(a, n)
	if m < 0 {
		m += n
	}
	return m
}

func Abs[A constraints.Signed](a A) A {
	if a < 0 {
		return -a
	}
	return a
}

package theory

import "math"

var (
	// PythagoreanComma is the gap between twelve pure fifths and seven octaves.
	PythagoreanComma = RatioToCents(531441.0 / 524288.0)

	// SyntonicComma is the gap between four pure fifths and a pure major third plus two octaves.
	SyntonicComma = RatioToCents(81.0 / 80.0)
)

// RatioToCents converts a frequency ratio to cents.
func RatioToCents(ratio float64) float64 {
	return 1200 * math.Log2(ratio)
}

// CentsToRatio converts cents to a frequency ratio.
func CentsToRatio(cents float64) float64 {
	return math.Pow(2, cents/1200)
}

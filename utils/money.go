package utils

import "math"

// Round2 rounds to the 2-decimal scale used by price and total columns.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to the 1-decimal scale used by rating points.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// IsOneDecimal reports whether v carries at most one decimal place.
func IsOneDecimal(v float64) bool {
	return math.Abs(v-Round1(v)) < 1e-9
}

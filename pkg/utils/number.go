package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// Percentage returns part/whole expressed as a percentage. A zero whole
// yields 0 rather than NaN.
func Percentage(part, whole int) float64 {
	if whole == 0 {
		return 0
	}

	return (float64(part) / float64(whole)) * 100
}

package utils

import "math"

// FormatFloat rounds f to the given number of decimal places.
// NaN and infinities are returned as is.
func FormatFloat(f float64, round int32) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	scale := math.Pow(10, float64(round))
	return math.Round(f*scale) / scale
}

func Clamp(v, lower, upper float64) float64 {
	return math.Max(lower, math.Min(upper, v))
}

package stats

import "math"

// Diffs returns the successive differences of xs: out[i] = xs[i+1] - xs[i].
// A slice shorter than two elements yields nil.
func Diffs(xs []float64) []float64 {
	if len(xs) < 2 {
		return nil
	}
	out := make([]float64, len(xs)-1)
	for i := 1; i < len(xs); i++ {
		out[i-1] = xs[i] - xs[i-1]
	}
	return out
}

// MeanOf calculates the arithmetic mean of xs; 0 for an empty slice.
func MeanOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range xs {
		sum += v
	}
	return sum / float64(len(xs))
}

// MinOf returns the minimum of xs; NaN for an empty slice.
func MinOf(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	min := xs[0]
	for _, v := range xs[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// MaxOf returns the maximum of xs; NaN for an empty slice.
func MaxOf(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	max := xs[0]
	for _, v := range xs[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// CountNegative returns how many elements of xs are strictly negative.
func CountNegative(xs []float64) int {
	count := 0
	for _, v := range xs {
		if v < 0 {
			count++
		}
	}
	return count
}

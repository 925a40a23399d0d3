package core

import "math"

// ClampInt limits value to the inclusive range [min, max].
func ClampInt(value, min, max int) int {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// IsFinitePositive reports whether v is a positive, finite number.
func IsFinitePositive(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// MeanSquare returns the mean squared value of buf.
// An empty buffer has zero energy.
func MeanSquare(buf []float64) float64 {
	if len(buf) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range buf {
		sum += v * v
	}

	return sum / float64(len(buf))
}

// MaxAbs returns the largest absolute value in buf, or 0 for an empty buffer.
func MaxAbs(buf []float64) float64 {
	maxAbs := 0.0
	for _, v := range buf {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	return maxAbs
}

// NextPowerOf2 returns the next power of 2 >= n.
func NextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}

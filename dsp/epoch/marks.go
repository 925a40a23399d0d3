package epoch

// Marks is an ordered, strictly increasing sequence of pitch-mark sample
// indices on the original signal timeline.
type Marks []int

// Intervals returns the sample distances between consecutive marks.
// Fewer than two marks yield an empty slice.
func (m Marks) Intervals() []int {
	if len(m) < 2 {
		return []int{}
	}

	out := make([]int, len(m)-1)
	for i := 1; i < len(m); i++ {
		out[i-1] = m[i] - m[i-1]
	}

	return out
}

// Valid reports whether the marks are strictly increasing and non-negative.
func (m Marks) Valid() bool {
	for i, v := range m {
		if v < 0 {
			return false
		}
		if i > 0 && v <= m[i-1] {
			return false
		}
	}

	return true
}

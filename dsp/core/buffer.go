package core

// CopyOf returns a freshly allocated copy of src.
// An empty input yields an empty, non-nil slice.
func CopyOf(src []float64) []float64 {
	out := make([]float64, len(src))
	copy(out, src)

	return out
}

package psola

// maxEdgeFade bounds the linear fade applied to the very start and end of
// the synthesized buffer.
const maxEdgeFade = 100

// OverlapAdd places each frame at its synthesis instant, sums overlapping
// content, and normalizes every sample by its overlap count.
//
// Each frame starts at instant - len(samples)/2; content falling outside the
// output range is dropped. Samples covered by n frames are divided by n, so
// overlap regions keep unit gain instead of accumulating energy; samples
// covered by no frame stay zero. A short linear fade at both buffer edges
// removes boundary discontinuities. Output length is entirely
// caller-controlled.
func OverlapAdd(frames []Frame, instants Instants, outputLength int) []float64 {
	if outputLength < 0 {
		outputLength = 0
	}

	out := make([]float64, outputLength)
	counts := make([]int, outputLength)

	n := min(len(frames), len(instants))

	for i := range n {
		samples := frames[i].Samples
		start := instants[i] - len(samples)/2

		for k, v := range samples {
			idx := start + k
			if idx < 0 || idx >= outputLength {
				continue
			}

			out[idx] += v
			counts[idx]++
		}
	}

	for i, c := range counts {
		if c > 1 {
			out[i] /= float64(c)
		}
	}

	applyEdgeFades(out)

	return out
}

// applyEdgeFades ramps the first and last samples linearly to zero at the
// buffer boundaries. The fade shrinks for very small buffers.
func applyEdgeFades(buf []float64) {
	fade := min(maxEdgeFade, len(buf)/2)
	if fade < 1 {
		return
	}

	n := len(buf)
	for i := range fade {
		g := float64(i) / float64(fade)
		buf[i] *= g
		buf[n-1-i] *= g
	}
}

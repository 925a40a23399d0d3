package psola

import (
	"github.com/cwbudde/algo-psola/dsp/epoch"
	"github.com/cwbudde/algo-psola/dsp/window"
)

// Frame is one pitch-synchronous analysis frame: a Hann-tapered copy of
// roughly two local periods of signal, centered on its originating mark.
// Center stays in original-timeline coordinates.
type Frame struct {
	Center  int
	Samples []float64
}

// ExtractFrames cuts one analysis frame per pitch mark.
//
// The frame length is twice the local period, where the local period averages
// the distances to the neighboring marks (boundary marks use their single
// neighbor). Frames that would extend past the buffer are clipped, not
// rejected; the Hann taper is sized to the clipped length. Fewer than two
// marks carry no period information and yield no frames.
func ExtractFrames(sig []float64, marks epoch.Marks) []Frame {
	if len(marks) < 2 || len(sig) == 0 {
		return []Frame{}
	}

	frames := make([]Frame, 0, len(marks))

	for i, m := range marks {
		length := 2 * localPeriod(marks, i)

		start := m - length/2
		end := start + length

		if start < 0 {
			start = 0
		}
		if end > len(sig) {
			end = len(sig)
		}
		if end <= start {
			frames = append(frames, Frame{Center: m, Samples: []float64{}})
			continue
		}

		samples := make([]float64, end-start)
		copy(samples, sig[start:end])
		window.Apply(window.TypeHann, samples)

		frames = append(frames, Frame{Center: m, Samples: samples})
	}

	return frames
}

// localPeriod returns the pitch period at mark index i, averaging the
// distances to the previous and next mark where both exist.
func localPeriod(marks epoch.Marks, i int) int {
	switch {
	case i == 0:
		return marks[1] - marks[0]
	case i == len(marks)-1:
		return marks[i] - marks[i-1]
	default:
		return (marks[i+1] - marks[i-1]) / 2
	}
}

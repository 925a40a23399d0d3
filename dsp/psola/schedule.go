package psola

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-psola/dsp/core"
	"github.com/cwbudde/algo-psola/dsp/epoch"
)

// Instants is an ordered, strictly increasing sequence of synthesis-instant
// sample indices on the output timeline, one per input pitch mark.
type Instants []int

// ScheduleInstants maps pitch marks to synthesis instants for the given
// pitch ratio (target f0 divided by original f0).
//
// The first instant coincides with the first mark; every following mark
// interval is divided by the ratio and rounded. Raising pitch compresses the
// spacing, lowering it stretches it. Rounding error accumulates additively
// and is not renormalized; over realistic mark counts it stays well below a
// perceptible offset.
func ScheduleInstants(marks epoch.Marks, pitchRatio float64) (Instants, error) {
	if !core.IsFinitePositive(pitchRatio) {
		return nil, fmt.Errorf("%w: %f", ErrInvalidPitchRatio, pitchRatio)
	}

	out := make(Instants, len(marks))
	if len(marks) == 0 {
		return out, nil
	}

	out[0] = marks[0]

	for i := 1; i < len(marks); i++ {
		interval := marks[i] - marks[i-1]

		newInterval := int(math.Round(float64(interval) / pitchRatio))
		if newInterval < 1 {
			newInterval = 1
		}

		out[i] = out[i-1] + newInterval
	}

	return out, nil
}

package epoch

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"

	"github.com/cwbudde/algo-psola/dsp/core"
)

// autocorrWorkspace holds the FFT plan and scratch buffers for one Detect
// call. The plan is sized for the full analysis window; shorter tail windows
// reuse it with zero padding.
type autocorrWorkspace struct {
	fftSize int
	plan    *algofft.Plan[complex128]

	in     []complex128
	freq   []complex128
	time   []complex128
	raw    []float64
	prefix []float64
	scores []float64
}

func newAutocorrWorkspace(windowSize int) (*autocorrWorkspace, error) {
	// Linear (non-circular) autocorrelation needs at least 2x zero padding.
	fftSize := core.NextPowerOf2(2 * windowSize)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("epoch: failed to create FFT plan: %w", err)
	}

	return &autocorrWorkspace{
		fftSize: fftSize,
		plan:    plan,
		in:      make([]complex128, fftSize),
		freq:    make([]complex128, fftSize),
		time:    make([]complex128, fftSize),
		raw:     make([]float64, windowSize),
		prefix:  make([]float64, windowSize+1),
		scores:  make([]float64, windowSize),
	}, nil
}

// rawAutocorrelation computes r[lag] = sum_i win[i]*win[i+lag] for all lags
// in [0, len(win)) via the Wiener-Khinchin relation: the inverse transform of
// the power spectrum.
func (ws *autocorrWorkspace) rawAutocorrelation(win []float64) ([]float64, error) {
	w := len(win)
	if 2*w > ws.fftSize {
		return nil, fmt.Errorf("epoch: window of %d samples exceeds FFT plan size %d", w, ws.fftSize)
	}

	for i := range ws.in {
		ws.in[i] = 0
	}
	for i, v := range win {
		ws.in[i] = complex(v, 0)
	}

	if err := ws.plan.Forward(ws.freq, ws.in); err != nil {
		return nil, fmt.Errorf("epoch: forward FFT failed: %w", err)
	}

	for i, c := range ws.freq {
		re := real(c)
		im := imag(c)
		ws.freq[i] = complex(re*re+im*im, 0)
	}

	if err := ws.plan.Inverse(ws.time, ws.freq); err != nil {
		return nil, fmt.Errorf("epoch: inverse FFT failed: %w", err)
	}

	out := ws.raw[:w]
	for lag := range out {
		out[lag] = real(ws.time[lag])
	}

	return out, nil
}

// prefixSquares returns p where p[i] = sum of win[k]^2 for k < i.
func (ws *autocorrWorkspace) prefixSquares(win []float64) []float64 {
	p := ws.prefix[:len(win)+1]
	p[0] = 0

	for i, v := range win {
		p[i+1] = p[i] + v*v
	}

	return p
}

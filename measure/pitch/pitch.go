// Package pitch estimates the fundamental frequency of an already-captured
// mono buffer from its power spectrum.
//
// This is a measurement aid for validating pitch transforms, not a real-time
// tracker: the whole buffer contributes to a single estimate.
package pitch

import (
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-psola/dsp/core"
	"github.com/cwbudde/algo-psola/dsp/window"
)

const (
	defaultMinFreq = 50.0
	defaultMaxFreq = 1000.0
)

// Config holds f0 estimation parameters.
type Config struct {
	SampleRate float64
	FFTSize    int     // 0 selects the next power of two >= buffer length
	MinFreq    float64 // search range lower bound in Hz, 0 selects 50
	MaxFreq    float64 // search range upper bound in Hz, 0 selects 1000
	WindowType window.Type
}

// Result holds an f0 estimate.
type Result struct {
	Frequency float64 // interpolated peak frequency in Hz, 0 when none found
	Bin       int     // raw peak bin index
	Level     float64 // power at the peak bin
}

// EstimateF0 returns the strongest spectral peak inside the search range,
// refined by parabolic interpolation between neighboring bins.
//
// Degenerate input (empty or all-zero buffers, ranges outside the spectrum)
// yields a zero Result rather than an error.
func EstimateF0(signal []float64, cfg Config) Result {
	n := len(signal)
	if n == 0 {
		return Result{}
	}

	fftSize := cfg.FFTSize
	if fftSize < n {
		fftSize = core.NextPowerOf2(n)
	}

	if cfg.SampleRate <= 0 {
		cfg.SampleRate = float64(fftSize)
	}

	winType := cfg.WindowType
	if winType == 0 {
		winType = window.TypeHann
	}

	coeffs := window.Generate(winType, n)

	in := make([]complex128, fftSize)
	for i, v := range signal {
		in[i] = complex(v*coeffs[i], 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}
	}

	spec := make([]complex128, fftSize)
	if err := plan.Forward(spec, in); err != nil {
		return Result{}
	}

	binCount := fftSize/2 + 1
	power := powerSpectrum(spec[:binCount])

	minFreq := cfg.MinFreq
	if minFreq <= 0 {
		minFreq = defaultMinFreq
	}

	maxFreq := cfg.MaxFreq
	if maxFreq <= 0 {
		maxFreq = defaultMaxFreq
	}

	binHz := cfg.SampleRate / float64(fftSize)

	lo := core.ClampInt(int(math.Ceil(minFreq/binHz)), 1, binCount-1)
	hi := core.ClampInt(int(math.Floor(maxFreq/binHz)), lo, binCount-1)

	peak := lo
	for k := lo + 1; k <= hi; k++ {
		if power[k] > power[peak] {
			peak = k
		}
	}

	if power[peak] <= 0 {
		return Result{}
	}

	return Result{
		Frequency: (float64(peak) + peakOffset(power, peak)) * binHz,
		Bin:       peak,
		Level:     power[peak],
	}
}

// powerSpectrum returns |X[k]|^2 per bin.
func powerSpectrum(spec []complex128) []float64 {
	re := make([]float64, len(spec))
	im := make([]float64, len(spec))

	for i, c := range spec {
		re[i] = real(c)
		im[i] = imag(c)
	}

	out := make([]float64, len(spec))
	vecmath.Power(out, re, im)

	return out
}

// peakOffset refines the peak bin position by fitting a parabola through the
// peak and its neighbors. Returns a fractional bin offset in (-0.5, 0.5).
func peakOffset(power []float64, k int) float64 {
	if k <= 0 || k >= len(power)-1 {
		return 0
	}

	denom := power[k-1] - 2*power[k] + power[k+1]
	if denom >= 0 {
		return 0
	}

	return 0.5 * (power[k-1] - power[k+1]) / denom
}

package epoch

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-psola/dsp/core"
)

// Defaults cover adult-voice fundamentals; the voice-training use case shifts
// pitch within roughly this band.
const (
	DefaultMinFrequency    = 80.0
	DefaultMaxFrequency    = 500.0
	DefaultWindowSize      = 1024
	DefaultEnergyThreshold = 1e-3

	minWindowSize = 32

	// A secondary autocorrelation peak within this fraction of the best
	// score is treated as equivalent; the shortest such period wins.
	// This suppresses subharmonic (octave-down) errors.
	octaveTolerance = 0.02
)

// Detector locates pitch marks in already-captured mono buffers.
//
// A Detector is immutable after construction and safe for concurrent use;
// every Detect call allocates its own working state.
type Detector struct {
	sampleRate      float64
	minHz           float64
	maxHz           float64
	windowSize      int
	energyThreshold float64
}

// Option configures a Detector.
type Option func(*Detector)

// WithSearchRange sets the fundamental-frequency search range in Hz.
func WithSearchRange(minHz, maxHz float64) Option {
	return func(d *Detector) {
		d.minHz = minHz
		d.maxHz = maxHz
	}
}

// WithWindowSize sets the autocorrelation analysis window length in samples.
func WithWindowSize(n int) Option {
	return func(d *Detector) {
		d.windowSize = n
	}
}

// WithEnergyThreshold sets the mean-square level below which a buffer is
// treated as silence.
func WithEnergyThreshold(v float64) Option {
	return func(d *Detector) {
		d.energyThreshold = v
	}
}

// NewDetector creates a pitch-mark detector for the given sample rate.
func NewDetector(sampleRate float64, opts ...Option) (*Detector, error) {
	d := &Detector{
		sampleRate:      sampleRate,
		minHz:           DefaultMinFrequency,
		maxHz:           DefaultMaxFrequency,
		windowSize:      DefaultWindowSize,
		energyThreshold: DefaultEnergyThreshold,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}

	if !core.IsFinitePositive(d.sampleRate) {
		return nil, fmt.Errorf("%w: %f", ErrInvalidSampleRate, d.sampleRate)
	}
	if !core.IsFinitePositive(d.minHz) || !core.IsFinitePositive(d.maxHz) || d.minHz >= d.maxHz {
		return nil, fmt.Errorf("%w: minHz=%f maxHz=%f", ErrInvalidSearchRange, d.minHz, d.maxHz)
	}
	if d.windowSize < minWindowSize {
		return nil, fmt.Errorf("%w: %d (minimum %d)", ErrInvalidWindowSize, d.windowSize, minWindowSize)
	}
	if d.energyThreshold < 0 || math.IsNaN(d.energyThreshold) || math.IsInf(d.energyThreshold, 0) {
		return nil, fmt.Errorf("%w: %f", ErrInvalidEnergyThreshold, d.energyThreshold)
	}

	return d, nil
}

// SampleRate returns the configured sample rate in Hz.
func (d *Detector) SampleRate() float64 { return d.sampleRate }

// SearchRange returns the configured fundamental search range in Hz.
func (d *Detector) SearchRange() (minHz, maxHz float64) { return d.minHz, d.maxHz }

// WindowSize returns the autocorrelation window length in samples.
func (d *Detector) WindowSize() int { return d.windowSize }

// EnergyThreshold returns the silence gate level.
func (d *Detector) EnergyThreshold() float64 { return d.energyThreshold }

// Detect returns the ordered pitch marks of sig.
//
// Silence (mean-square energy below the threshold) and buffers too short for
// the search range return an empty mark list, and tracking stops as soon as
// the signal under the analysis window loses periodicity or energy, so a
// voiced segment followed by a pause yields marks only inside the voiced
// part. Callers should treat fewer than two marks as "no voiced pitch".
func (d *Detector) Detect(sig []float64) (Marks, error) {
	n := len(sig)
	if n == 0 {
		return Marks{}, nil
	}

	if core.MeanSquare(sig) < d.energyThreshold {
		return Marks{}, nil
	}

	minLag := int(d.sampleRate / d.maxHz)
	if minLag < 2 {
		minLag = 2
	}

	maxLag := int(math.Ceil(d.sampleRate / d.minHz))
	if maxLag > n-1 {
		maxLag = n - 1
	}

	if maxLag <= minLag {
		return Marks{}, nil
	}

	ws, err := newAutocorrWorkspace(min(d.windowSize, n))
	if err != nil {
		return nil, err
	}

	period, ok := d.localPeriod(ws, sig, 0, minLag, maxLag)
	if !ok {
		return Marks{}, nil
	}

	marks := Marks{peakIndex(sig, 0, period)}

	for {
		m := marks[len(marks)-1]

		// The remaining tail must hold two full periods at the longest
		// searchable lag; shorter windows starve the autocorrelation of
		// overlap and yield unreliable periods.
		if n-m < 2*maxLag {
			break
		}

		period, ok = d.localPeriod(ws, sig, m, minLag, maxLag)
		if !ok {
			break
		}

		predicted := m + period
		if predicted >= n {
			break
		}

		// Re-anchor on the strongest waveform peak near the prediction
		// so small period errors do not accumulate across the buffer.
		radius := max(period/5, 1)
		next := peakIndex(sig, predicted-radius, predicted+radius+1)
		if next <= m {
			next = predicted
		}
		if next >= n {
			break
		}

		marks = append(marks, next)
	}

	return marks, nil
}

// localPeriod estimates the fundamental period at pos via normalized
// autocorrelation over the configured lag range. It reports false when the
// window is too short for the range or carries no voiced periodicity.
func (d *Detector) localPeriod(ws *autocorrWorkspace, sig []float64, pos, minLag, maxLag int) (int, bool) {
	end := min(pos+d.windowSize, len(sig))
	win := sig[pos:end]

	w := len(win)
	if w <= minLag+1 {
		return 0, false
	}

	// Every candidate lag must leave at least half the window overlapping.
	hi := min(maxLag, w/2)
	if hi <= minLag {
		return 0, false
	}

	raw, err := ws.rawAutocorrelation(win)
	if err != nil {
		return 0, false
	}

	// Prefix sums of squared samples for per-lag normalization.
	prefix := ws.prefixSquares(win)

	scores := ws.scores[:hi+1]
	for lag := minLag; lag <= hi; lag++ {
		head := prefix[w-lag]
		tail := prefix[w] - prefix[lag]

		den := math.Sqrt(head * tail)

		// The lagged segment must clear the energy gate on its own, or a
		// lone decaying pulse correlates perfectly with its own tail.
		if den <= 0 || tail < d.energyThreshold*float64(w-lag) {
			scores[lag] = 0
			continue
		}

		scores[lag] = raw[lag] / den
	}

	bestLag := minLag
	bestScore := scores[minLag]

	for lag := minLag + 1; lag <= hi; lag++ {
		if scores[lag] > bestScore {
			bestScore = scores[lag]
			bestLag = lag
		}
	}

	// No positive correlation at any lag means the window is not voiced.
	if bestScore <= 0 {
		return 0, false
	}

	// Among local maxima of comparable strength, the shortest period is the
	// fundamental; the global maximum may sit on a subharmonic.
	for lag := minLag + 1; lag < hi; lag++ {
		s := scores[lag]
		if s <= scores[lag-1] || s <= scores[lag+1] {
			continue
		}

		if s >= bestScore*(1-octaveTolerance) {
			return lag, true
		}
	}

	return bestLag, true
}

// peakIndex returns the index of the largest sample value in [lo, hi),
// clipped to the signal bounds.
func peakIndex(sig []float64, lo, hi int) int {
	lo = core.ClampInt(lo, 0, len(sig)-1)
	hi = core.ClampInt(hi, lo+1, len(sig))

	best := lo
	for i := lo + 1; i < hi; i++ {
		if sig[i] > sig[best] {
			best = i
		}
	}

	return best
}

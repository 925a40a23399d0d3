package psola

import (
	"fmt"

	"github.com/cwbudde/algo-psola/dsp/core"
	"github.com/cwbudde/algo-psola/dsp/epoch"
)

// Engine orchestrates the TD-PSOLA pipeline for one sample rate.
//
// An Engine is immutable after construction and safe for concurrent use;
// each ShiftPitch call allocates its own marks, frames, instants, and
// accumulators.
type Engine struct {
	sampleRate float64
	det        *epoch.Detector
}

// Option configures an Engine.
type Option func(*config)

type config struct {
	detectorOpts []epoch.Option
}

// WithSearchRange overrides the pitch search range in Hz (default 80-500).
func WithSearchRange(minHz, maxHz float64) Option {
	return func(c *config) {
		c.detectorOpts = append(c.detectorOpts, epoch.WithSearchRange(minHz, maxHz))
	}
}

// WithWindowSize overrides the epoch analysis window length in samples.
func WithWindowSize(n int) Option {
	return func(c *config) {
		c.detectorOpts = append(c.detectorOpts, epoch.WithWindowSize(n))
	}
}

// WithEnergyThreshold overrides the silence gate level.
func WithEnergyThreshold(v float64) Option {
	return func(c *config) {
		c.detectorOpts = append(c.detectorOpts, epoch.WithEnergyThreshold(v))
	}
}

// NewEngine creates a pitch-shifting engine for the given sample rate.
func NewEngine(sampleRate float64, opts ...Option) (*Engine, error) {
	var cfg config

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	det, err := epoch.NewDetector(sampleRate, cfg.detectorOpts...)
	if err != nil {
		return nil, fmt.Errorf("psola: %w", err)
	}

	return &Engine{sampleRate: sampleRate, det: det}, nil
}

// SampleRate returns the engine sample rate in Hz.
func (e *Engine) SampleRate() float64 { return e.sampleRate }

// Detector returns the underlying pitch-mark detector. Callers that need to
// distinguish a real shift from the unvoiced no-op can run it directly and
// inspect the mark count.
func (e *Engine) Detector() *epoch.Detector { return e.det }

// ShiftPitch returns sig with its fundamental frequency scaled by pitchRatio.
// Duration stays close to the input for ratios near or above 1.0; ratios well
// below 1.0 stretch the synthesis schedule and the output grows accordingly,
// since each analysis frame still maps to one synthesis instant.
//
// Silence and unvoiced input (fewer than two pitch marks) return an
// unmodified copy of the input; only invalid parameters produce errors. The
// ratio is unrestricted above zero, but values far from 1.0 increase
// artifacts.
func (e *Engine) ShiftPitch(sig []float64, pitchRatio float64) ([]float64, error) {
	if !core.IsFinitePositive(pitchRatio) {
		return nil, fmt.Errorf("%w: %f", ErrInvalidPitchRatio, pitchRatio)
	}

	if len(sig) == 0 {
		return []float64{}, nil
	}

	marks, err := e.det.Detect(sig)
	if err != nil {
		return nil, fmt.Errorf("psola: %w", err)
	}

	if len(marks) <= 1 {
		return core.CopyOf(sig), nil
	}

	frames := ExtractFrames(sig, marks)

	instants, err := ScheduleInstants(marks, pitchRatio)
	if err != nil {
		return nil, err
	}

	// Never truncate the last placed frame, even when the schedule runs past
	// the input length.
	last := frames[len(frames)-1]
	tail := instants[len(instants)-1] + len(last.Samples) - len(last.Samples)/2

	outputLength := max(len(sig), tail)

	return OverlapAdd(frames, instants, outputLength), nil
}

// ShiftPitchHz shifts a voice with known base frequency by deltaHz, as a
// convenience over ratio handling: a +50 Hz shift on a 150 Hz voice equals
// ShiftPitch with ratio 200/150.
func (e *Engine) ShiftPitchHz(sig []float64, baseHz, deltaHz float64) ([]float64, error) {
	if !core.IsFinitePositive(baseHz) {
		return nil, fmt.Errorf("%w: %f", ErrInvalidBaseFrequency, baseHz)
	}

	target := baseHz + deltaHz
	if !core.IsFinitePositive(target) {
		return nil, fmt.Errorf("%w: %f", ErrInvalidTargetFrequency, target)
	}

	return e.ShiftPitch(sig, target/baseHz)
}

package epoch

import "errors"

// Errors returned by detector construction and analysis.
var (
	ErrInvalidSampleRate      = errors.New("epoch: sample rate must be positive and finite")
	ErrInvalidSearchRange     = errors.New("epoch: search range requires 0 < minHz < maxHz")
	ErrInvalidWindowSize      = errors.New("epoch: analysis window size too small")
	ErrInvalidEnergyThreshold = errors.New("epoch: energy threshold must be >= 0 and finite")
)

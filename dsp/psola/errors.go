package psola

import "errors"

// Errors returned by parameter validation. Signal-content edge cases
// (silence, unvoiced input, short buffers) never produce errors.
var (
	ErrInvalidPitchRatio      = errors.New("psola: pitch ratio must be positive and finite")
	ErrInvalidBaseFrequency   = errors.New("psola: base frequency must be positive and finite")
	ErrInvalidTargetFrequency = errors.New("psola: target frequency must be positive and finite")
)

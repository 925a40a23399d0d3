// Package psola shifts the fundamental frequency of a voice buffer while
// preserving its duration and formant structure, using time-domain
// pitch-synchronous overlap-add (TD-PSOLA).
//
// The pipeline has four stages, each usable on its own:
//
//   - epoch.Detector locates pitch marks (see the epoch package)
//   - ExtractFrames cuts one Hann-tapered analysis frame per mark
//   - ScheduleInstants respaces the marks on the output timeline by the
//     pitch ratio; the frame content is never resampled, which is what
//     preserves formants
//   - OverlapAdd places frames at the synthesis instants and normalizes by
//     overlap count
//
// Engine wires the stages together behind a single ShiftPitch call.
package psola

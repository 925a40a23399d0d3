// Package epoch locates pitch-synchronous marks (estimated glottal-closure
// instants) in a voiced signal.
//
// Detection runs short-window normalized autocorrelation restricted to a
// fundamental-frequency search range, advances mark to mark by the detected
// local period, and re-anchors each predicted mark on the nearest waveform
// peak to resist drift. Silence and unvoiced input yield an empty mark list,
// never an error.
package epoch

// Package wavetable builds anti-aliased, mipmapped wavetables for
// band-limited oscillators.
//
// Playing one waveform table at arbitrary pitches aliases as soon as
// harmonics cross the Nyquist limit. The package precomputes 24 copies
// of the waveform, each truncated to the harmonics a logarithmic band
// of playback frequencies can carry cleanly, so an oscillator picks the
// table for its current pitch and interpolates between samples (and, at
// band boundaries, between tables).
//
// Waveforms come from a HarmonicProfile, either closed-form (Sine, Saw,
// Square, Triangle), a preset spectrum, or a measured one:
//
//	m, err := wavetable.CreateForHarmonicProfile(wavetable.Saw{}, 1.0, 2048, 44100)
//
// or from one recorded cycle:
//
//	m, err := wavetable.CreateFromAudioData(cycle, 1.0, 2048, 44100)
//
// Each table carries 4 guard samples mirrored circularly on both sides,
// so interpolators may read up to 4 samples past either end without
// bounds checks.
package wavetable

package wavetable

import "github.com/cwbudde/algo-approx"

// NoteToFrequency converts a MIDI note number to its frequency in Hz,
// for consumers that pick a mipmap band per note.
func NoteToFrequency(note int) float32 {
	const a4Freq = 440.0
	const a4Note = 69
	const ln2 = 0.69314718055994530942
	exponent := float32(note-a4Note) / 12.0
	return a4Freq * approx.FastExp(exponent*ln2)
}

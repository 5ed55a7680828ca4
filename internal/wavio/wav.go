// Package wavio reads and writes the WAV files surrounding the
// wavetable builder. Input validation lives here so the core packages
// can assume well-formed sample data.
package wavio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/wav"
	"github.com/go-audio/audio"
)

// Bounds on a single-cycle input waveform.
const (
	MinFrames = 4
	MaxFrames = 65536
)

// ReadMonoCycle reads one cycle of a waveform from a WAV file. The
// file must hold exactly one channel and an even frame count between
// MinFrames and MaxFrames. Returns the samples and the file's sample
// rate.
func ReadMonoCycle(path string) ([]float32, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("invalid wav file: %s", path)
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, err
	}
	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, 0, fmt.Errorf("invalid wav buffer: %s", path)
	}

	if buf.Format.NumChannels != 1 {
		return nil, 0, fmt.Errorf("%s: sound data does not contain exactly 1 channel (got %d)",
			path, buf.Format.NumChannels)
	}

	frames := len(buf.Data)
	if frames < MinFrames {
		return nil, 0, fmt.Errorf("%s: sound data is too small (%d frames, need >= %d)",
			path, frames, MinFrames)
	}
	if frames > MaxFrames {
		return nil, 0, fmt.Errorf("%s: sound data is too large (%d frames, max %d)",
			path, frames, MaxFrames)
	}
	if frames&1 != 0 {
		return nil, 0, fmt.Errorf("%s: sound data must have an even size (got %d frames)",
			path, frames)
	}

	out := make([]float32, frames)
	copy(out, buf.Data)
	return out, buf.Format.SampleRate, nil
}

// WriteMono writes mono float samples as a 16-bit WAV, creating parent
// directories as needed.
func WriteMono(path string, data []float32, sampleRate int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	defer enc.Close()

	buf := &audio.Float32Buffer{
		Format: &audio.Format{
			SampleRate:  sampleRate,
			NumChannels: 1,
		},
		Data:           data,
		SourceBitDepth: 16,
	}
	return enc.Write(buf)
}

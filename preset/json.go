// Package preset loads harmonic spectra described in JSON files, so a
// wavetable can be built from a hand-written additive recipe instead
// of an analytic shape or a recorded cycle.
package preset

import (
	"encoding/json"
	"fmt"
	"math/cmplx"
	"os"

	"github.com/cwbudde/algo-wavetable/wavetable"
)

// File is the JSON schema for harmonic preset files.
type File struct {
	Name      string     `json:"name"`
	Harmonics []Harmonic `json:"harmonics"`
}

// Harmonic is one partial of the described spectrum. Phase is in
// radians; amplitudes of entries sharing an index accumulate.
type Harmonic struct {
	Index     int     `json:"index"`
	Amplitude float64 `json:"amplitude"`
	Phase     float64 `json:"phase"`
}

// LoadJSON reads a preset file and returns its spectrum as a profile
// usable with the wavetable factories.
func LoadJSON(path string) (wavetable.HarmonicProfile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	p, err := Profile(&f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Profile converts a parsed preset into a harmonic profile.
func Profile(f *File) (wavetable.HarmonicProfile, error) {
	if f == nil || len(f.Harmonics) == 0 {
		return nil, fmt.Errorf("preset has no harmonics")
	}

	maxIndex := 0
	for _, h := range f.Harmonics {
		if h.Index < 1 {
			return nil, fmt.Errorf("harmonic index %d (expected >= 1)", h.Index)
		}
		if h.Amplitude < 0 {
			return nil, fmt.Errorf("harmonic %d: amplitude must be >= 0", h.Index)
		}
		if h.Index > maxIndex {
			maxIndex = h.Index
		}
	}

	spec := make([]complex128, maxIndex+1)
	for _, h := range f.Harmonics {
		spec[h.Index] += cmplx.Rect(h.Amplitude, h.Phase)
	}
	return wavetable.NewTabulated(spec), nil
}

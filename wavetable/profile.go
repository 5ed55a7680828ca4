package wavetable

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-wavetable/dsp"
)

// HarmonicProfile describes the spectrum of a single-cycle waveform.
//
// Harmonic returns the complex amplitude/phase of the partial at the
// given index. Index 1 is the fundamental; index 0 is DC and is never
// requested. Implementations return zero beyond their known extent.
type HarmonicProfile interface {
	Harmonic(index int) complex128
}

// Generate renders one band-limited period of the profile into table.
//
// amplitude scales the overall magnitude. cutoff is a ratio of the
// table's own sample rate: harmonic i contributes only while
// i/len(table) <= cutoff, higher partials are left at zero. The table
// length must be even.
func Generate(p HarmonicProfile, table []float32, amplitude, cutoff float64) error {
	size := len(table)

	fft, err := dsp.NewRealFFT(size)
	if err != nil {
		return err
	}

	spec := make([]complex128, size/2+1)

	// Bins need scaling and a quarter-turn phase offset; the inverse
	// transform then assembles a sum of cosines whose amplitudes match
	// the profile's nominal values.
	k := cmplx.Rect(amplitude*0.5, math.Pi/2)

	// Start filling at bin 1; 1 is the fundamental, 0 is DC. The
	// Nyquist bin stays zero: a quarter-turn-rotated bin there would
	// not be purely real, which the real transform rejects.
	for index := 1; index < size/2; index++ {
		if float64(index)/float64(size) > cutoff {
			break
		}
		spec[index] = k * p.Harmonic(index)
	}

	out := make([]float64, size)
	if err := fft.Inverse(out, spec); err != nil {
		return err
	}
	for i, v := range out {
		table[i] = float32(v)
	}
	return nil
}

// Sine is a single partial at the fundamental.
type Sine struct{}

func (Sine) Harmonic(index int) complex128 {
	if index == 1 {
		return 1
	}
	return 0
}

// Saw is the Fourier series of a unit sawtooth ramp: every partial at
// 2/(pi*i) with alternating sign.
type Saw struct{}

func (Saw) Harmonic(index int) complex128 {
	if index < 1 {
		return 0
	}
	a := 2 / (math.Pi * float64(index))
	if index&1 == 0 {
		a = -a
	}
	return complex(a, 0)
}

// Square is the Fourier series of a unit square wave: odd partials at
// 4/(pi*i).
type Square struct{}

func (Square) Harmonic(index int) complex128 {
	if index < 1 || index&1 == 0 {
		return 0
	}
	return complex(4/(math.Pi*float64(index)), 0)
}

// Triangle is the Fourier series of a unit triangle wave: odd partials
// at 8/(pi^2*i^2) with alternating sign.
type Triangle struct{}

func (Triangle) Harmonic(index int) complex128 {
	if index < 1 || index&1 == 0 {
		return 0
	}
	a := 8 / (math.Pi * math.Pi * float64(index*index))
	if index&3 == 3 {
		a = -a
	}
	return complex(a, 0)
}

// ProfileForShape resolves an analytic shape by name.
func ProfileForShape(name string) (HarmonicProfile, error) {
	switch name {
	case "sine":
		return Sine{}, nil
	case "saw":
		return Saw{}, nil
	case "square":
		return Square{}, nil
	case "triangle":
		return Triangle{}, nil
	}
	return nil, fmt.Errorf("unknown shape %q (want sine, saw, square or triangle)", name)
}

// Tabulated is a harmonic profile backed by a measured half spectrum.
// It borrows the slice without copying; the profile must not outlive
// the spectrum buffer it wraps.
type Tabulated struct {
	harmonics []complex128
}

// NewTabulated wraps a half spectrum as a profile. Entry i is the
// harmonic at index i; requests beyond the measured extent yield zero.
func NewTabulated(harmonics []complex128) *Tabulated {
	return &Tabulated{harmonics: harmonics}
}

func (t *Tabulated) Harmonic(index int) complex128 {
	if index < 0 || index >= len(t.harmonics) {
		return 0
	}
	return t.harmonics[index]
}

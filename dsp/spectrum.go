// Package dsp wraps the real-input Fourier transform pair used by the
// wavetable builder.
//
// The layout follows the usual half-spectrum convention for real
// signals of even length N: N/2+1 complex bins, bin 0 is DC and bin
// N/2 is Nyquist. Forward is unnormalized and Inverse undoes the
// underlying plan's 1/N, so a Forward/Inverse round trip gains a
// factor of N; callers fold the 1/N into their own scale constants.
package dsp

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
)

// RealFFT holds a transform plan for real sequences of one fixed size.
// It is not safe for concurrent use; each call chain owns its own.
type RealFFT struct {
	size int
	plan *algofft.PlanRealT[float64, complex128]
}

// NewRealFFT allocates a plan for real sequences of length n. n must
// be even and positive. Plan allocation failure signals out-of-memory
// and is not recoverable by retrying.
func NewRealFFT(n int) (*RealFFT, error) {
	if n <= 0 || n&1 != 0 {
		return nil, fmt.Errorf("fft size must be positive and even, got %d", n)
	}
	plan, err := algofft.NewPlanReal64(n)
	if err != nil {
		return nil, fmt.Errorf("fft plan (n=%d): %w", n, err)
	}
	return &RealFFT{size: n, plan: plan}, nil
}

// Size returns the real sequence length the plan was built for.
func (t *RealFFT) Size() int { return t.size }

// SpectrumSize returns the number of complex bins (Size/2+1).
func (t *RealFFT) SpectrumSize() int { return t.size/2 + 1 }

// Forward transforms src into spec. len(src) must be Size and
// len(spec) must be SpectrumSize.
func (t *RealFFT) Forward(spec []complex128, src []float64) error {
	if len(src) != t.size || len(spec) != t.size/2+1 {
		return fmt.Errorf("forward: want %d samples and %d bins, got %d and %d",
			t.size, t.size/2+1, len(src), len(spec))
	}
	if err := t.plan.Forward(spec, src); err != nil {
		return fmt.Errorf("forward fft: %w", err)
	}
	return nil
}

// Inverse transforms spec back into dst. It is the unnormalized
// adjoint of Forward: inverting an unmodified forward spectrum yields
// the input scaled by Size.
func (t *RealFFT) Inverse(dst []float64, spec []complex128) error {
	if len(dst) != t.size || len(spec) != t.size/2+1 {
		return fmt.Errorf("inverse: want %d samples and %d bins, got %d and %d",
			t.size, t.size/2+1, len(dst), len(spec))
	}
	if err := t.plan.Inverse(dst, spec); err != nil {
		return fmt.Errorf("inverse fft: %w", err)
	}
	// The plan's inverse is normalized; undo the 1/Size so a round
	// trip gains Size, as documented.
	scale := float64(t.size)
	for i := range dst {
		dst[i] *= scale
	}
	return nil
}

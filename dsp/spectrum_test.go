package dsp

import (
	"math"
	"testing"
)

func TestNewRealFFTValidation(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"zero", 0},
		{"negative", -4},
		{"odd", 255},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewRealFFT(tc.n); err == nil {
				t.Fatalf("expected error for n=%d", tc.n)
			}
		})
	}
}

func TestForwardSineLandsInOneBin(t *testing.T) {
	const n = 256
	fft, err := NewRealFFT(n)
	if err != nil {
		t.Fatalf("NewRealFFT() error = %v", err)
	}

	src := make([]float64, n)
	for i := range src {
		src[i] = math.Sin(2 * math.Pi * 3 * float64(i) / n)
	}
	spec := make([]complex128, fft.SpectrumSize())
	if err := fft.Forward(spec, src); err != nil {
		t.Fatalf("Forward() error = %v", err)
	}

	// A pure sine at bin 3 concentrates in spec[3] with magnitude n/2.
	for k := range spec {
		mag := math.Hypot(real(spec[k]), imag(spec[k]))
		if k == 3 {
			if math.Abs(mag-n/2) > 1e-6*n {
				t.Errorf("bin 3 magnitude = %g, want %g", mag, float64(n)/2)
			}
			continue
		}
		if mag > 1e-6*n {
			t.Errorf("bin %d magnitude = %g, want ~0", k, mag)
		}
	}
}

func TestRoundTripGainsSize(t *testing.T) {
	const n = 128
	fft, err := NewRealFFT(n)
	if err != nil {
		t.Fatalf("NewRealFFT() error = %v", err)
	}

	src := make([]float64, n)
	for i := range src {
		src[i] = math.Sin(2*math.Pi*float64(i)/n) + 0.25*math.Cos(2*math.Pi*7*float64(i)/n)
	}

	spec := make([]complex128, fft.SpectrumSize())
	if err := fft.Forward(spec, src); err != nil {
		t.Fatalf("Forward() error = %v", err)
	}
	dst := make([]float64, n)
	if err := fft.Inverse(dst, spec); err != nil {
		t.Fatalf("Inverse() error = %v", err)
	}

	for i := range dst {
		want := src[i] * n
		if diff := math.Abs(dst[i] - want); diff > 1e-6*n {
			t.Fatalf("sample %d: got=%g want=%g diff=%g", i, dst[i], want, diff)
		}
	}
}

func TestLengthMismatchErrors(t *testing.T) {
	fft, err := NewRealFFT(64)
	if err != nil {
		t.Fatalf("NewRealFFT() error = %v", err)
	}

	if err := fft.Forward(make([]complex128, 10), make([]float64, 64)); err == nil {
		t.Error("Forward should reject short spectrum")
	}
	if err := fft.Forward(make([]complex128, 33), make([]float64, 63)); err == nil {
		t.Error("Forward should reject short input")
	}
	if err := fft.Inverse(make([]float64, 64), make([]complex128, 32)); err == nil {
		t.Error("Inverse should reject short spectrum")
	}
	if err := fft.Inverse(make([]float64, 65), make([]complex128, 33)); err == nil {
		t.Error("Inverse should reject long output")
	}
}

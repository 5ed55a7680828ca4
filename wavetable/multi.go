package wavetable

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-dsp/dsp/interp"
	"github.com/cwbudde/algo-wavetable/dsp"
)

// tableExtra is the number of guard samples on each side of every
// table, for safe interpolation up to 4th order.
const tableExtra = 4

// Multi is a mipmapped wavetable: NumTables band-limited copies of one
// waveform in a single contiguous buffer. Build it with
// CreateForHarmonicProfile or CreateFromAudioData; it is immutable
// afterward.
type Multi struct {
	tableSize int
	data      []float32
}

// TableSize returns the number of samples in each table, guard samples
// excluded.
func (m *Multi) TableSize() int { return m.tableSize }

// Table is a read-only window into one band of a Multi. Its lifetime
// is bound to the parent; callers must not modify the samples.
type Table struct {
	data []float32 // period plus tableExtra guard samples on each side
	size int
}

// Table returns the band at the given index.
func (m *Multi) Table(index int) Table {
	stride := m.tableSize + 2*tableExtra
	off := index * stride
	return Table{data: m.data[off : off+stride], size: m.tableSize}
}

// TableForFrequency returns the band adequate for a playback frequency.
func (m *Multi) TableForFrequency(freq float32) Table {
	return m.Table(int(IndexForFrequency(freq)))
}

// Len returns the number of samples in the period.
func (t Table) Len() int { return t.size }

// Samples returns the period without guard samples.
func (t Table) Samples() []float32 {
	return t.data[tableExtra : tableExtra+t.size]
}

// At returns the sample at offset k, which may lie up to tableExtra
// samples outside [0, Len). The guard regions make this a circular
// read without bounds checks.
func (t Table) At(k int) float32 {
	return t.data[tableExtra+k]
}

// Sample reads the period at a fractional phase (1.0 per cycle) with
// 4-point Hermite interpolation across the guard samples.
func (t Table) Sample(phase float64) float32 {
	p := phase - math.Floor(phase)
	pos := p * float64(t.size)
	i := int(pos)
	frac := pos - float64(i)
	v := interp.Hermite4(frac,
		float64(t.At(i-1)), float64(t.At(i)), float64(t.At(i+1)), float64(t.At(i+2)))
	return float32(v)
}

// CreateForHarmonicProfile builds the full mipmap from a harmonic
// profile. refSampleRate is the lowest sample rate accepted by the
// consuming DSP system, the least favorable case for aliasing.
// tableSize must be even.
func CreateForHarmonicProfile(p HarmonicProfile, amplitude float64, tableSize int, refSampleRate float64) (*Multi, error) {
	if tableSize <= 0 || tableSize&1 != 0 {
		return nil, fmt.Errorf("table size must be positive and even, got %d", tableSize)
	}
	if refSampleRate <= 0 {
		return nil, fmt.Errorf("reference sample rate must be > 0, got %g", refSampleRate)
	}

	m := &Multi{
		tableSize: tableSize,
		data:      make([]float32, (tableSize+2*tableExtra)*NumTables),
	}

	for index := 0; index < NumTables; index++ {
		rng := RangeForIndex(index)

		// The table must stay clean up to the top of its band.
		freq := float64(rng.MaxFrequency)

		// A spectrum with its fundamental at bin 1 reaches the table's
		// own Nyquist at bin tableSize/2. Played at freq, harmonic h
		// sounds at h*freq, so harmonics stop where h*freq reaches
		// 0.5*refSampleRate, expressed as a ratio of tableSize.
		cutoff := (0.5 * refSampleRate / float64(tableSize)) / freq

		if err := Generate(p, m.tableData(index), amplitude, cutoff); err != nil {
			return nil, fmt.Errorf("table %d: %w", index, err)
		}
	}

	m.fillExtra()
	return m, nil
}

// CreateFromAudioData builds the mipmap from one measured cycle of
// mono audio. The cycle is transformed at its own length, so the
// measured spectral resolution is independent of tableSize. The sample
// count must be even; callers validate bounds before handing data in.
func CreateFromAudioData(audioData []float32, amplitude float64, tableSize int, refSampleRate float64) (*Multi, error) {
	fftSize := len(audioData)

	fft, err := dsp.NewRealFFT(fftSize)
	if err != nil {
		return nil, err
	}

	src := make([]float64, fftSize)
	for i, v := range audioData {
		src[i] = float64(v)
	}
	spec := make([]complex128, fftSize/2+1)
	if err := fft.Forward(spec, src); err != nil {
		return nil, err
	}

	// Undo the forward transform's gain and restore the phase
	// convention Generate expects, so measured bins feed the same
	// sum-of-cosines assembly as analytic profiles.
	k := cmplx.Rect(2.0/float64(fftSize), -math.Pi/2)
	for i := range spec {
		spec[i] *= k
	}

	return CreateForHarmonicProfile(NewTabulated(spec), amplitude, tableSize, refSampleRate)
}

// tableData returns the writable period of one band, guards excluded.
func (m *Multi) tableData(index int) []float32 {
	stride := m.tableSize + 2*tableExtra
	off := index*stride + tableExtra
	return m.data[off : off+m.tableSize]
}

// fillExtra rewrites every guard region with a circular wrap of its
// table's content, so indexing at any offset in
// [-tableExtra, tableSize+tableExtra) sees the periodic extension.
func (m *Multi) fillExtra() {
	size := m.tableSize
	for index := 0; index < NumTables; index++ {
		t := m.Table(index)
		for i := 0; i < tableExtra; i++ {
			// after the end: wrap from the first samples
			t.data[tableExtra+size+i] = t.data[tableExtra+i%size]
			// before the start: wrap from the last samples
			t.data[tableExtra-1-i] = t.data[tableExtra+size-1-i%size]
		}
	}
}

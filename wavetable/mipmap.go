package wavetable

import "math"

// Partition of the audible range into mipmap bands.
const (
	// NumTables is the number of tables in the mipmap.
	NumTables = 24
	// F1 is the start frequency of the first table.
	F1 float32 = 20.0
	// FN is the start frequency of the last table.
	FN float32 = 12000.0
)

// The frequency mapping of the mipmap is defined by:
//
//	T(f) = log(k*f)/log(b)
//
// where T is the table number (rounded down to an index), f the
// oscillation frequency, k = 1/F1 and b = exp(log(FN/F1)/(NumTables-1)).
var (
	mipmapK    = 1.0 / float64(F1)
	mipmapLogB = math.Log(float64(FN)/float64(F1)) / (NumTables - 1)
)

// MipmapRange is one frequency band of the partition, served by a
// single table.
type MipmapRange struct {
	MinFrequency float32
	MaxFrequency float32
}

var indexToStartFrequency = func() [NumTables + 1]float32 {
	var table [NumTables + 1]float32
	for t := 0; t < NumTables; t++ {
		table[t] = float32(math.Exp(float64(t)*mipmapLogB) / mipmapK)
	}
	// end value for the final table; a hard bound, not part of the
	// logarithmic progression
	table[NumTables] = 22050.0
	return table
}()

const indexTableSize = 1024

var frequencyToIndex = func() [indexTableSize]float32 {
	var table [indexTableSize]float32
	for i := 0; i < indexTableSize-1; i++ {
		r := float32(i) * (1.0 / (indexTableSize - 1))
		table[i] = ExactIndexForFrequency(F1 + r*(FN-F1))
	}
	// ensure the last element is exact
	table[indexTableSize-1] = NumTables - 1
	return table
}()

// ExactIndexForFrequency evaluates the log mapping directly, returning
// the fractional table index for f clamped to [0, NumTables-1].
func ExactIndexForFrequency(f float32) float32 {
	if f < F1 {
		return 0
	}
	t := math.Log(mipmapK*float64(f)) / mipmapLogB
	return float32(clamp(t, 0, NumTables-1))
}

// IndexForFrequency approximates ExactIndexForFrequency by linear
// interpolation into a 1024-entry table sampled over [F1, FN]. The two
// agree within one table step; use this on the per-sample path.
func IndexForFrequency(f float32) float32 {
	pos := (f - F1) * ((indexTableSize - 1) / (FN - F1))
	pos = float32(clamp(float64(pos), 0, indexTableSize-1))

	index1 := int(pos)
	index2 := index1 + 1
	if index2 > indexTableSize-1 {
		index2 = indexTableSize - 1
	}
	frac := pos - float32(index1)

	return (1-frac)*frequencyToIndex[index1] + frac*frequencyToIndex[index2]
}

// RangeForIndex returns the band served by table o. o is clamped to
// [0, NumTables-1].
func RangeForIndex(o int) MipmapRange {
	if o < 0 {
		o = 0
	}
	if o > NumTables-1 {
		o = NumTables - 1
	}
	return MipmapRange{
		MinFrequency: indexToStartFrequency[o],
		MaxFrequency: indexToStartFrequency[o+1],
	}
}

// RangeForFrequency returns the band containing the given playback
// frequency.
func RangeForFrequency(f float32) MipmapRange {
	return RangeForIndex(int(IndexForFrequency(f)))
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

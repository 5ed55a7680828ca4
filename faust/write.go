// Package faust serializes a mipmapped wavetable as a Faust source
// snippet.
package faust

import (
	"fmt"
	"io"

	"github.com/cwbudde/algo-wavetable/wavetable"
)

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// Write emits the table constants followed by the flattened band data
// in ascending band order. A consuming oscillator definition indexes
// the flattened array as tableNo*tableSize + sampleIndex.
func Write(w io.Writer, m *wavetable.Multi) error {
	tableSize := m.TableSize()

	ew := &errWriter{w: w}
	ew.printf("tableSize = %d;\n", tableSize)
	ew.printf("numTables = %d;\n", wavetable.NumTables)
	ew.printf("firstStartFrequency = %f;\n", wavetable.F1)
	ew.printf("lastStartFrequency = %f;\n", wavetable.FN)
	ew.printf("waveData = waveform{\n")
	for tableNo := 0; tableNo < wavetable.NumTables; tableNo++ {
		table := m.Table(tableNo).Samples()
		for i, v := range table {
			if i > 0 {
				ew.printf(", %e", v)
			} else {
				ew.printf("  %e", v)
			}
		}
		if tableNo+1 < wavetable.NumTables {
			ew.printf(",")
		}
		ew.printf("\n")
	}
	ew.printf("} : (!, _);\n")
	return ew.err
}

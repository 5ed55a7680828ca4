// Command make-wavetable builds an anti-aliased mipmapped wavetable
// from a single-cycle WAV file, an analytic shape, or a harmonic
// preset, and writes it as a Faust source snippet.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cwbudde/algo-wavetable/faust"
	"github.com/cwbudde/algo-wavetable/internal/wavio"
	"github.com/cwbudde/algo-wavetable/preset"
	"github.com/cwbudde/algo-wavetable/wavetable"
)

func main() {
	input := flag.String("i", "", "Input WAV holding one cycle of the waveform")
	output := flag.String("o", "", "Output Faust file (default stdout)")
	shape := flag.String("shape", "", "Analytic shape instead of -i: sine, saw, square or triangle")
	presetPath := flag.String("preset", "", "Harmonic preset JSON instead of -i")
	amplitude := flag.Float64("amplitude", 1.0, "Output amplitude scale")
	tableSize := flag.Int("table-size", 2048, "Samples per mipmap table")
	refRate := flag.Float64("ref-rate", 44100, "Reference sample rate (lowest rate of the consuming DSP system)")
	previewPath := flag.String("preview", "", "Optional WAV path to dump one band for audition")
	previewTable := flag.Int("preview-table", 0, "Band index written by -preview")
	flag.Usage = usage
	flag.Parse()

	if len(os.Args) <= 1 {
		usage()
		return
	}

	sources := 0
	for _, s := range []string{*input, *shape, *presetPath} {
		if s != "" {
			sources++
		}
	}
	if sources != 1 || flag.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "Invalid arguments")
		usage()
		os.Exit(1)
	}

	m, err := build(*input, *shape, *presetPath, *amplitude, *tableSize, *refRate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "make-wavetable: %v\n", err)
		os.Exit(1)
	}

	if err := writeOutput(*output, m); err != nil {
		fmt.Fprintf(os.Stderr, "make-wavetable: cannot write output: %v\n", err)
		os.Exit(1)
	}

	if *previewPath != "" {
		if err := writePreview(*previewPath, m, *previewTable, int(*refRate)); err != nil {
			fmt.Fprintf(os.Stderr, "make-wavetable: cannot write preview: %v\n", err)
			os.Exit(1)
		}
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: make-wavetable <-i wave-file | -shape name | -preset file> [options]")
	flag.PrintDefaults()
}

func build(input, shape, presetPath string, amplitude float64, tableSize int, refRate float64) (*wavetable.Multi, error) {
	switch {
	case input != "":
		cycle, _, err := wavio.ReadMonoCycle(input)
		if err != nil {
			return nil, err
		}
		return wavetable.CreateFromAudioData(cycle, amplitude, tableSize, refRate)

	case shape != "":
		p, err := wavetable.ProfileForShape(shape)
		if err != nil {
			return nil, err
		}
		return wavetable.CreateForHarmonicProfile(p, amplitude, tableSize, refRate)

	default:
		p, err := preset.LoadJSON(presetPath)
		if err != nil {
			return nil, err
		}
		return wavetable.CreateForHarmonicProfile(p, amplitude, tableSize, refRate)
	}
}

func writeOutput(path string, m *wavetable.Multi) error {
	if path == "" {
		return faust.Write(os.Stdout, m)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := faust.Write(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writePreview(path string, m *wavetable.Multi, tableNo int, sampleRate int) error {
	if tableNo < 0 || tableNo >= wavetable.NumTables {
		return fmt.Errorf("preview table %d out of range [0, %d)", tableNo, wavetable.NumTables)
	}
	return wavio.WriteMono(path, m.Table(tableNo).Samples(), sampleRate)
}

package main

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-wavetable/internal/wavio"
	"github.com/cwbudde/algo-wavetable/wavetable"
)

func TestBuildFromShape(t *testing.T) {
	m, err := build("", "saw", "", 1.0, 128, 44100)
	if err != nil {
		t.Fatalf("build() error = %v", err)
	}
	if m.TableSize() != 128 {
		t.Errorf("TableSize() = %d, want 128", m.TableSize())
	}
}

func TestBuildFromWAV(t *testing.T) {
	const frames = 256
	cycle := make([]float32, frames)
	for i := range cycle {
		cycle[i] = float32(0.5 * math.Sin(2*math.Pi*float64(i)/frames))
	}
	path := filepath.Join(t.TempDir(), "cycle.wav")
	if err := wavio.WriteMono(path, cycle, 44100); err != nil {
		t.Fatalf("WriteMono() error = %v", err)
	}

	m, err := build(path, "", "", 1.0, 256, 44100)
	if err != nil {
		t.Fatalf("build() error = %v", err)
	}

	table := m.Table(0).Samples()
	peak := 0.0
	for _, v := range table {
		if a := math.Abs(float64(v)); a > peak {
			peak = a
		}
	}
	if math.Abs(peak-0.5) > 5e-3 {
		t.Errorf("lowest band peak = %g, want ~0.5", peak)
	}
}

func TestBuildFromPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.json")
	data := `{"harmonics": [{"index": 1, "amplitude": 1.0}]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	m, err := build("", "", path, 1.0, 128, 44100)
	if err != nil {
		t.Fatalf("build() error = %v", err)
	}
	if m.TableSize() != 128 {
		t.Errorf("TableSize() = %d, want 128", m.TableSize())
	}
}

func TestBuildRejectsUnknownShape(t *testing.T) {
	if _, err := build("", "noise", "", 1.0, 128, 44100); err == nil {
		t.Error("expected error for unknown shape")
	}
}

func TestWriteOutputToFile(t *testing.T) {
	m, err := build("", "sine", "", 1.0, 16, 44100)
	if err != nil {
		t.Fatalf("build() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.dsp")
	if err := writeOutput(path, m); err != nil {
		t.Fatalf("writeOutput() error = %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	out := string(b)
	if !strings.HasPrefix(out, "tableSize = 16;\n") {
		t.Errorf("output starts with %q", out[:min(40, len(out))])
	}
	if !strings.HasSuffix(out, "} : (!, _);\n") {
		t.Error("output missing closing waveform declaration")
	}
}

func TestWritePreviewBounds(t *testing.T) {
	m, err := build("", "sine", "", 1.0, 16, 44100)
	if err != nil {
		t.Fatalf("build() error = %v", err)
	}

	if err := writePreview(filepath.Join(t.TempDir(), "p.wav"), m, 0, 44100); err != nil {
		t.Errorf("writePreview(0) error = %v", err)
	}
	if err := writePreview(filepath.Join(t.TempDir(), "p.wav"), m, wavetable.NumTables, 44100); err == nil {
		t.Error("expected error for out-of-range preview table")
	}
}

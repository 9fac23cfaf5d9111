package main

import (
	"image"
	_ "image/png" // register PNG decoder
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iafilius/HealthScatter/src/config"
	"github.com/iafilius/HealthScatter/src/dataset"
)

func TestRunExportMode_WritesEveryCombination(t *testing.T) {
	cfg := config.Default()
	cfg.DataFile = writeSample(t)
	outDir := filepath.Join(t.TempDir(), "shots")
	if err := RunExportMode(cfg, outDir); err != nil {
		t.Fatalf("RunExportMode: %v", err)
	}
	for _, x := range dataset.XMetrics {
		for _, y := range dataset.YMetrics {
			p := filepath.Join(outDir, exportName(x, y, "png"))
			f, err := os.Open(p)
			if err != nil {
				t.Fatalf("missing %s: %v", p, err)
			}
			img, _, err := image.Decode(f)
			f.Close()
			if err != nil {
				t.Fatalf("decode %s: %v", p, err)
			}
			if b := img.Bounds(); b.Dx() != 960 || b.Dy() != 500 {
				t.Fatalf("%s is %dx%d", p, b.Dx(), b.Dy())
			}
			svg, err := os.ReadFile(filepath.Join(outDir, exportName(x, y, "svg")))
			if err != nil || !strings.Contains(string(svg), "<svg") {
				t.Fatalf("bad svg for %s/%s: %v", x, y, err)
			}
		}
	}
}

func TestRunExportMode_MissingFile(t *testing.T) {
	cfg := config.Default()
	cfg.DataFile = filepath.Join(t.TempDir(), "nope.csv")
	if err := RunExportMode(cfg, t.TempDir()); err == nil {
		t.Fatalf("expected error for missing data file")
	}
}

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iafilius/HealthScatter/src/config"
	"github.com/iafilius/HealthScatter/src/dataset"
)

const sampleCSV = `state,abbr,poverty,age,income,healthcare,obesity,smokes
Alabama,AL,19.3,38.6,42830,13.9,33.5,21.1
Alaska,AK,11.2,33.3,71583,15,29.7,19.9
Arizona,AZ,18.2,36.9,50068,14.4,28.9,n/a
`

func sampleConfig(t *testing.T) config.Config {
	t.Helper()
	p := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(p, []byte(sampleCSV), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	cfg := config.Default()
	cfg.DataFile = p
	return cfg
}

func TestRun_Summary(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, sampleConfig(t), false); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"States: 3",
		"In Poverty (%)",
		"min=11.2 max=19.3 domain=[10.2, 20.3] NaN=0",
		"Smokes (%)",
		"min=19.9 max=21.1 domain=[17.9, 23.1] NaN=1",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, " at (") {
		t.Fatalf("marks printed without -marks")
	}
}

func TestRun_Marks(t *testing.T) {
	cfg := sampleConfig(t)
	cfg.InitialX = "income"
	var buf bytes.Buffer
	if err := run(&buf, cfg, true); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Obese (%) vs Household Income (Median)") {
		t.Fatalf("missing chart heading:\n%s", out)
	}
	if !strings.Contains(out, "AK  Alaska") || !strings.Contains(out, "x=71583") {
		t.Fatalf("missing Alaska mark:\n%s", out)
	}
}

func TestRun_Errors(t *testing.T) {
	cfg := sampleConfig(t)
	cfg.InitialX = "obesity"
	if err := run(&bytes.Buffer{}, cfg, false); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("want ErrInvalid, got %v", err)
	}
	p := filepath.Join(t.TempDir(), "bad.csv")
	os.WriteFile(p, []byte("state,abbr,poverty\nA,AA,1\n"), 0o644)
	cfg = config.Default()
	cfg.DataFile = p
	if err := run(&bytes.Buffer{}, cfg, false); !errors.Is(err, dataset.ErrMissingColumn) {
		t.Fatalf("want ErrMissingColumn, got %v", err)
	}
}

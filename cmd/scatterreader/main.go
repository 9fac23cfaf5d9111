package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iafilius/HealthScatter/src/config"
	"github.com/iafilius/HealthScatter/src/dataset"
	"github.com/iafilius/HealthScatter/src/logging"
	"github.com/iafilius/HealthScatter/src/scatter"
)

func main() {
	var file, cfgPath, level, x, y string
	var marks bool
	flag.StringVar(&file, "file", "", "Path to the state data CSV")
	flag.StringVar(&cfgPath, "config", "", "Optional YAML config file")
	flag.StringVar(&level, "log-level", "", "Log level: debug, info, warn, error")
	flag.StringVar(&x, "x", "", "X metric for -marks")
	flag.StringVar(&y, "y", "", "Y metric for -marks")
	flag.BoolVar(&marks, "marks", false, "Also print every mark for the chosen axes")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	cfg.ApplyEnv()
	if file != "" {
		cfg.DataFile = file
	}
	if level != "" {
		cfg.LogLevel = level
	}
	if x != "" {
		cfg.InitialX = x
	}
	if y != "" {
		cfg.InitialY = y
	}
	logging.SetLogLevel(cfg.LogLevel)
	if err := run(os.Stdout, cfg, marks); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run prints a summary of the dataset and, with marks, the scene for the
// configured axes.
func run(w io.Writer, cfg config.Config, marks bool) error {
	opts, err := cfg.ToOptions()
	if err != nil {
		return err
	}
	recs, err := dataset.Load(cfg.DataFile)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "File: %s\n", cfg.DataFile)
	fmt.Fprintf(w, "States: %d\n", len(recs))
	for _, axis := range []dataset.Axis{dataset.AxisX, dataset.AxisY} {
		for _, m := range dataset.Metrics(axis) {
			lo, hi, ok := dataset.Extent(recs, m)
			nan := dataset.CountNaN(recs, m)
			if !ok {
				fmt.Fprintf(w, "%-4s %-26s no numeric values (NaN=%d)\n", axis, scatter.LabelText(m), nan)
				continue
			}
			pad := opts.Pad(axis)
			fmt.Fprintf(w, "%-4s %-26s min=%g max=%g domain=[%g, %g] NaN=%d\n",
				axis, scatter.LabelText(m), lo, hi, lo-pad, hi+pad, nan)
		}
	}
	if !marks {
		return nil
	}
	s, err := scatter.NewSession(recs, opts)
	if err != nil {
		return err
	}
	sc := s.Scene()
	fmt.Fprintf(w, "\n%s vs %s\n", sc.Y.Title, sc.X.Title)
	for _, m := range sc.Marks {
		fmt.Fprintf(w, "%-3s %-22s x=%-8s y=%-8s at (%.1f, %.1f)\n",
			m.Abbr, m.State, scatter.FormatValue(m.XValue), scatter.FormatValue(m.YValue), m.Pos.X, m.Pos.Y)
	}
	return nil
}

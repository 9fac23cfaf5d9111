// Package config holds the settings shared by the viewer and the reader:
// built-in defaults, an optional YAML file and environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iafilius/HealthScatter/src/dataset"
	"github.com/iafilius/HealthScatter/src/logging"
	"github.com/iafilius/HealthScatter/src/scatter"
)

// ErrInvalid reports a configuration value that cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Environment variables read by FromEnv.
const (
	EnvData     = "HEALTHSCATTER_DATA"
	EnvLogLevel = "HEALTHSCATTER_LOG_LEVEL"
)

// Layout is the chart geometry in pixels.
type Layout struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	MarginTop    float64 `yaml:"margin_top"`
	MarginRight  float64 `yaml:"margin_right"`
	MarginBottom float64 `yaml:"margin_bottom"`
	MarginLeft   float64 `yaml:"margin_left"`
}

// Config is the full set of tunables. Metric names are the CSV column names.
type Config struct {
	DataFile     string  `yaml:"data_file"`
	LogLevel     string  `yaml:"log_level"`
	Layout       Layout  `yaml:"layout"`
	XPad         float64 `yaml:"x_pad"`
	YPad         float64 `yaml:"y_pad"`
	MarkRadius   float64 `yaml:"mark_radius"`
	TickCount    int     `yaml:"tick_count"`
	TransitionMs int     `yaml:"transition_ms"`
	InitialX     string  `yaml:"initial_x"`
	InitialY     string  `yaml:"initial_y"`
}

// Default returns the built-in settings.
func Default() Config {
	l := scatter.DefaultLayout()
	return Config{
		DataFile: dataset.DefaultFile,
		LogLevel: "info",
		Layout: Layout{
			Width:        l.Width,
			Height:       l.Height,
			MarginTop:    l.Margin.Top,
			MarginRight:  l.Margin.Right,
			MarginBottom: l.Margin.Bottom,
			MarginLeft:   l.Margin.Left,
		},
		XPad:         scatter.XPad,
		YPad:         scatter.YPad,
		MarkRadius:   scatter.DefaultMarkRadius,
		TickCount:    scatter.DefaultTickCount,
		TransitionMs: int(scatter.DefaultDuration / time.Millisecond),
		InitialX:     dataset.Poverty.String(),
		InitialY:     dataset.Obesity.String(),
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	logging.Debugf("[config] loaded %s", path)
	return cfg, nil
}

// ApplyEnv overrides the data file and log level from the environment.
func (c *Config) ApplyEnv() {
	c.DataFile = envOr(EnvData, c.DataFile)
	c.LogLevel = envOr(EnvLogLevel, c.LogLevel)
}

func envOr(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}

// Validate checks geometry, pads, tick density and initial metrics.
func (c Config) Validate() error {
	l := c.Layout
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: layout %vx%v", ErrInvalid, l.Width, l.Height)
	}
	if l.MarginLeft < 0 || l.MarginRight < 0 || l.MarginTop < 0 || l.MarginBottom < 0 {
		return fmt.Errorf("%w: negative margin", ErrInvalid)
	}
	if l.Width-l.MarginLeft-l.MarginRight <= 0 || l.Height-l.MarginTop-l.MarginBottom <= 0 {
		return fmt.Errorf("%w: margins leave no plot area", ErrInvalid)
	}
	if c.XPad < 0 || c.YPad < 0 {
		return fmt.Errorf("%w: negative pad", ErrInvalid)
	}
	if c.TickCount < 2 || c.TickCount > scatter.MaxTickCount {
		return fmt.Errorf("%w: tick_count %d outside 2..%d", ErrInvalid, c.TickCount, scatter.MaxTickCount)
	}
	if c.TransitionMs < 0 {
		return fmt.Errorf("%w: transition_ms %d", ErrInvalid, c.TransitionMs)
	}
	if _, err := metricFor(c.InitialX, dataset.AxisX); err != nil {
		return err
	}
	if _, err := metricFor(c.InitialY, dataset.AxisY); err != nil {
		return err
	}
	if _, ok := logging.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	return nil
}

func metricFor(name string, axis dataset.Axis) (dataset.Metric, error) {
	m, err := dataset.ParseMetric(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if m.Axis() != axis {
		return 0, fmt.Errorf("%w: %s is not an %s metric", ErrInvalid, m, axis)
	}
	return m, nil
}

// ToOptions converts the config into session options.
func (c Config) ToOptions() (scatter.Options, error) {
	if err := c.Validate(); err != nil {
		return scatter.Options{}, err
	}
	x, _ := metricFor(c.InitialX, dataset.AxisX)
	y, _ := metricFor(c.InitialY, dataset.AxisY)
	l := c.Layout
	return scatter.Options{
		Layout: scatter.Layout{
			Width:  l.Width,
			Height: l.Height,
			Margin: scatter.Margin{Top: l.MarginTop, Right: l.MarginRight, Bottom: l.MarginBottom, Left: l.MarginLeft},
		},
		XPad:       c.XPad,
		YPad:       c.YPad,
		InitialX:   x,
		InitialY:   y,
		TickCount:  c.TickCount,
		MarkRadius: c.MarkRadius,
		Transition: time.Duration(c.TransitionMs) * time.Millisecond,
	}, nil
}

package scatter

import (
	"time"

	"github.com/iafilius/HealthScatter/src/dataset"
)

// Axis pads are added on both ends of the data extent.
const (
	XPad = 1.0
	YPad = 2.0
)

// DefaultTickCount is the tick density hint used for both axes.
const DefaultTickCount = 10

// MaxTickCount caps the density hint. A nice step is never less than
// 2/sqrt(10) of the requested one, so an axis holds fewer than twice as many ticks.
const MaxTickCount = 16

// DefaultMarkRadius is the circle radius of a mark in pixels.
const DefaultMarkRadius = 20.0

// Margin is the space around the plot area.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// Layout is the fixed drawing surface.
type Layout struct {
	Width, Height float64
	Margin        Margin
}

// DefaultLayout is the 960x500 canvas with the chart margins used by the page.
func DefaultLayout() Layout {
	return Layout{
		Width:  960,
		Height: 500,
		Margin: Margin{Top: 20, Right: 40, Bottom: 80, Left: 100},
	}
}

// PlotWidth is the canvas width minus left and right margins.
func (l Layout) PlotWidth() float64 { return l.Width - l.Margin.Left - l.Margin.Right }

// PlotHeight is the canvas height minus top and bottom margins.
func (l Layout) PlotHeight() float64 { return l.Height - l.Margin.Top - l.Margin.Bottom }

// Extent returns the pixel length of the given axis.
func (l Layout) Extent(a dataset.Axis) float64 {
	if a == dataset.AxisY {
		return l.PlotHeight()
	}
	return l.PlotWidth()
}

// Options configures a Session.
type Options struct {
	Layout     Layout
	XPad, YPad float64
	InitialX   dataset.Metric
	InitialY   dataset.Metric
	TickCount  int
	MarkRadius float64
	Transition time.Duration
}

// DefaultOptions starts on poverty vs obesity with the standard pads.
func DefaultOptions() Options {
	return Options{
		Layout:     DefaultLayout(),
		XPad:       XPad,
		YPad:       YPad,
		InitialX:   dataset.Poverty,
		InitialY:   dataset.Obesity,
		TickCount:  DefaultTickCount,
		MarkRadius: DefaultMarkRadius,
		Transition: DefaultDuration,
	}
}

// Pad returns the domain pad of an axis.
func (o Options) Pad(a dataset.Axis) float64 {
	if a == dataset.AxisY {
		return o.YPad
	}
	return o.XPad
}

func (o Options) tickCount() int { return clampTickCount(o.TickCount) }

// clampTickCount maps an unset hint to the default and caps large ones.
func clampTickCount(n int) int {
	switch {
	case n < 2:
		return DefaultTickCount
	case n > MaxTickCount:
		return MaxTickCount
	}
	return n
}

package render

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/iafilius/HealthScatter/src/logging"
	"github.com/iafilius/HealthScatter/src/scatter"
)

func plotTicks(ts []scatter.Tick) plot.ConstantTicks {
	out := make(plot.ConstantTicks, len(ts))
	for i, t := range ts {
		out[i] = plot.Tick{Value: t.Value, Label: t.Label}
	}
	return out
}

// Plot builds the gonum plot of a scene.
func Plot(sc scatter.Scene, opts Options) (*plot.Plot, error) {
	marks := drawable(sc)
	if len(marks) == 0 {
		return nil, ErrNoMarks
	}
	xys := make(plotter.XYs, len(marks))
	abbrs := make([]string, len(marks))
	for i, m := range marks {
		xys[i] = plotter.XY{X: m.XValue, Y: m.YValue}
		abbrs[i] = m.Abbr
	}

	p := plot.New()
	p.Title.Text = opts.Caption
	p.X.Label.Text = sc.X.Title
	p.Y.Label.Text = sc.Y.Title
	p.X.Min, p.X.Max = bounds(sc.X.Scale)
	p.Y.Min, p.Y.Max = bounds(sc.Y.Scale)
	p.X.Tick.Marker = plotTicks(sc.X.Ticks)
	p.Y.Tick.Marker = plotTicks(sc.Y.Ticks)

	dots, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("scatter: %w", err)
	}
	dots.GlyphStyle.Shape = draw.CircleGlyph{}
	dots.GlyphStyle.Radius = vg.Points(sc.MarkRadius)
	dots.GlyphStyle.Color = color.RGBA{R: 137, G: 189, B: 211, A: 255}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: abbrs})
	if err != nil {
		return nil, fmt.Errorf("labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Color = color.White
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
	}
	p.Add(dots, labels)
	return p, nil
}

// WriteSVG writes the scene as an SVG document to w.
func WriteSVG(w io.Writer, sc scatter.Scene, opts Options) error {
	p, err := Plot(sc, opts)
	if err != nil {
		return err
	}
	width, height := opts.size(sc)
	wt, err := p.WriterTo(vg.Points(float64(width)), vg.Points(float64(height)), "svg")
	if err != nil {
		return fmt.Errorf("svg writer: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// SaveSVG writes the scene as an SVG file at path.
func SaveSVG(path string, sc scatter.Scene, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSVG(f, sc, opts); err != nil {
		f.Close()
		return err
	}
	logging.Debugf("[render] wrote %s", path)
	return f.Close()
}

// Package render draws a scatter.Scene to static images: PNG through
// go-chart and SVG through gonum/plot. Both are used for exports and for
// the headless batch mode of the viewer.
package render

import (
	"errors"
	"math"

	"github.com/iafilius/HealthScatter/src/scatter"
)

// ErrNoMarks is returned when no mark of a scene has a finite position.
var ErrNoMarks = errors.New("render: no drawable marks")

// Options controls static output. Zero Width or Height falls back to the
// scene layout.
type Options struct {
	Width, Height int
	// Caption, when set, is drawn in the bottom-left corner of PNG output
	// and as the plot title of SVG output.
	Caption string
}

func (o Options) size(sc scatter.Scene) (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = int(sc.Layout.Width)
	}
	if h <= 0 {
		h = int(sc.Layout.Height)
	}
	if w <= 0 || h <= 0 {
		l := scatter.DefaultLayout()
		w, h = int(l.Width), int(l.Height)
	}
	return w, h
}

// drawable returns the marks whose values are both numbers.
func drawable(sc scatter.Scene) []scatter.Mark {
	out := make([]scatter.Mark, 0, len(sc.Marks))
	for _, m := range sc.Marks {
		if math.IsNaN(m.XValue) || math.IsNaN(m.YValue) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// bounds returns the ascending [lo, hi] domain of a scale.
func bounds(s scatter.LinearScale) (float64, float64) {
	d := s.Domain()
	return math.Min(d[0], d[1]), math.Max(d[0], d[1])
}

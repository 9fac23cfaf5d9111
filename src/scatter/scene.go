package scatter

import (
	"math"
	"strconv"

	"github.com/iafilius/HealthScatter/src/dataset"
)

// Point is a position inside the plot area, origin at its top-left corner.
type Point struct {
	X, Y float64
}

// Valid reports whether both coordinates are finite.
func (p Point) Valid() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Tick is one axis tick: its value, pixel position along the axis and label.
type Tick struct {
	Value float64
	Pos   float64
	Label string
}

// AxisView is everything needed to draw one axis.
type AxisView struct {
	Axis   dataset.Axis
	Metric dataset.Metric
	Title  string
	Scale  LinearScale
	Ticks  []Tick
}

// Mark is the circle and abbreviation drawn for one record. Circle and text
// share Pos.
type Mark struct {
	Index   int
	State   string
	Abbr    string
	XValue  float64
	YValue  float64
	Pos     Point
	Tooltip string
}

// Scene is a complete chart in plot-area coordinates.
type Scene struct {
	Layout     Layout
	MarkRadius float64
	TickCount  int
	X, Y       AxisView
	Marks      []Mark
}

// RenderInput is the state a Scene is rendered from.
type RenderInput struct {
	Records          []dataset.Record
	X, Y             dataset.Metric
	XScale, YScale   LinearScale
	XLabels, YLabels *LabelSet
	Layout           Layout
	TickCount        int
	MarkRadius       float64
}

// AxisTicks returns the labelled ticks of a scale.
func AxisTicks(s LinearScale, count int) []Tick {
	vals := s.Ticks(count)
	d := s.Domain()
	step := TickStep(math.Min(d[0], d[1]), math.Max(d[0], d[1]), count)
	out := make([]Tick, len(vals))
	for i, v := range vals {
		out[i] = Tick{Value: v, Pos: s.Map(v), Label: FormatTick(v, step)}
	}
	return out
}

// FormatValue prints a metric value the way tooltips show it.
func FormatValue(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Tooltip is the hover text of a record for the chosen metrics.
func Tooltip(state, xText string, xv float64, yText string, yv float64) string {
	return state + "\n" + xText + ": " + FormatValue(xv) + "\n" + yText + ": " + FormatValue(yv)
}

// Render places every record and builds both axes. Marks keep record order.
func Render(in RenderInput) Scene {
	count := clampTickCount(in.TickCount)
	radius := in.MarkRadius
	if radius <= 0 {
		radius = DefaultMarkRadius
	}
	xText, yText := LabelText(in.X), LabelText(in.Y)
	if in.XLabels != nil {
		xText = in.XLabels.Text(in.X)
	}
	if in.YLabels != nil {
		yText = in.YLabels.Text(in.Y)
	}
	sc := Scene{
		Layout:     in.Layout,
		MarkRadius: radius,
		TickCount:  count,
		X:          AxisView{Axis: dataset.AxisX, Metric: in.X, Title: xText, Scale: in.XScale, Ticks: AxisTicks(in.XScale, count)},
		Y:          AxisView{Axis: dataset.AxisY, Metric: in.Y, Title: yText, Scale: in.YScale, Ticks: AxisTicks(in.YScale, count)},
		Marks:      make([]Mark, len(in.Records)),
	}
	for i, r := range in.Records {
		xv, yv := r.Value(in.X), r.Value(in.Y)
		sc.Marks[i] = Mark{
			Index:   i,
			State:   r.State,
			Abbr:    r.Abbr,
			XValue:  xv,
			YValue:  yv,
			Pos:     Point{X: in.XScale.Map(xv), Y: in.YScale.Map(yv)},
			Tooltip: Tooltip(r.State, xText, xv, yText, yv),
		}
	}
	return sc
}

// MarkAt returns the index of the topmost mark whose circle contains p.
// Later marks draw over earlier ones, so the search runs backwards.
func (s Scene) MarkAt(p Point) (int, bool) {
	r2 := s.MarkRadius * s.MarkRadius
	for i := len(s.Marks) - 1; i >= 0; i-- {
		m := s.Marks[i].Pos
		if !m.Valid() {
			continue
		}
		dx, dy := p.X-m.X, p.Y-m.Y
		if dx*dx+dy*dy <= r2 {
			return i, true
		}
	}
	return -1, false
}

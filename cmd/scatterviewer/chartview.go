package main

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/iafilius/HealthScatter/src/scatter"
)

const (
	tickPool   = scatter.MaxTickCount * 2
	tickLength = 6
)

var (
	markFill   = color.NRGBA{R: 137, G: 189, B: 211, A: 255}
	markStroke = color.NRGBA{R: 227, G: 227, B: 227, A: 255}
	axisColor  = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
	tipBG      = color.NRGBA{R: 0, G: 0, B: 0, A: 200}
)

// viewTransform maps plot-area coordinates of a scene to widget coordinates.
// The layout is scaled uniformly to fit and centred.
type viewTransform struct {
	scale            float32
	originX, originY float32
}

func newViewTransform(l scatter.Layout, size fyne.Size) viewTransform {
	if l.Width <= 0 || l.Height <= 0 {
		l = scatter.DefaultLayout()
	}
	s := min(size.Width/float32(l.Width), size.Height/float32(l.Height))
	if s <= 0 {
		s = 1
	}
	offX := (size.Width - float32(l.Width)*s) / 2
	offY := (size.Height - float32(l.Height)*s) / 2
	return viewTransform{
		scale:   s,
		originX: offX + float32(l.Margin.Left)*s,
		originY: offY + float32(l.Margin.Top)*s,
	}
}

func (t viewTransform) toView(p scatter.Point) fyne.Position {
	return fyne.NewPos(t.originX+float32(p.X)*t.scale, t.originY+float32(p.Y)*t.scale)
}

func (t viewTransform) toPlot(p fyne.Position) scatter.Point {
	return scatter.Point{X: float64((p.X - t.originX) / t.scale), Y: float64((p.Y - t.originY) / t.scale)}
}

// hoverTooltip returns the tooltip of the mark under the mouse, if any.
func hoverTooltip(frame scatter.Scene, t viewTransform, mouse fyne.Position) (string, bool) {
	i, ok := frame.MarkAt(t.toPlot(mouse))
	if !ok {
		return "", false
	}
	return frame.Marks[i].Tooltip, true
}

// chartView draws the current engine frame: both axes with ticks, one circle
// and abbreviation per state, and a tooltip for the hovered mark.
type chartView struct {
	widget.BaseWidget
	state    *uiState
	mouse    fyne.Position
	hovering bool
}

func newChartView(state *uiState) *chartView {
	c := &chartView{state: state}
	c.ExtendBaseWidget(c)
	return c
}

func (c *chartView) frame() (scatter.Scene, bool) {
	if c.state == nil || c.state.session == nil || c.state.engine == nil {
		return scatter.Scene{}, false
	}
	return c.state.engine.Frame(time.Now()), true
}

func (c *chartView) MinSize() fyne.Size {
	l := scatter.DefaultLayout()
	if c.state != nil && c.state.session != nil {
		l = c.state.session.Options().Layout
	}
	return fyne.NewSize(float32(l.Width)/2, float32(l.Height)/2)
}

type tickObj struct {
	line *canvas.Line
	text *canvas.Text
}

type markObj struct {
	circle *canvas.Circle
	abbr   *canvas.Text
}

func newTickObj() tickObj {
	l := canvas.NewLine(axisColor)
	l.StrokeWidth = 1
	t := canvas.NewText("", axisColor)
	t.TextSize = 11
	return tickObj{line: l, text: t}
}

func (c *chartView) CreateRenderer() fyne.WidgetRenderer {
	r := &chartRenderer{c: c}
	r.bg = canvas.NewRectangle(color.White)
	r.xAxis = canvas.NewLine(axisColor)
	r.yAxis = canvas.NewLine(axisColor)
	for i := range r.xTicks {
		r.xTicks[i] = newTickObj()
		r.yTicks[i] = newTickObj()
	}
	r.empty = canvas.NewText("No data loaded. Use File > Open… to pick a CSV file.", axisColor)
	r.tipBG = canvas.NewRectangle(tipBG)
	r.tip = widget.NewRichText()
	r.tip.Wrapping = fyne.TextWrapOff
	r.rebuild(0)
	return r
}

type chartRenderer struct {
	c      *chartView
	bg     *canvas.Rectangle
	xAxis  *canvas.Line
	yAxis  *canvas.Line
	xTicks [tickPool]tickObj
	yTicks [tickPool]tickObj
	marks  []markObj
	empty  *canvas.Text
	tipBG  *canvas.Rectangle
	tip    *widget.RichText
	objs   []fyne.CanvasObject
}

// rebuild recreates the mark objects when the number of records changes.
func (r *chartRenderer) rebuild(n int) {
	r.marks = make([]markObj, n)
	for i := range r.marks {
		circle := canvas.NewCircle(markFill)
		circle.StrokeColor = markStroke
		circle.StrokeWidth = 1
		abbr := canvas.NewText("", color.White)
		abbr.TextStyle = fyne.TextStyle{Bold: true}
		r.marks[i] = markObj{circle: circle, abbr: abbr}
	}
	objs := []fyne.CanvasObject{r.bg, r.xAxis, r.yAxis}
	for i := range r.xTicks {
		objs = append(objs, r.xTicks[i].line, r.xTicks[i].text, r.yTicks[i].line, r.yTicks[i].text)
	}
	for _, m := range r.marks {
		objs = append(objs, m.circle, m.abbr)
	}
	r.objs = append(objs, r.empty, r.tipBG, r.tip)
}

func (r *chartRenderer) Destroy() {}

func (r *chartRenderer) MinSize() fyne.Size { return r.c.MinSize() }

func (r *chartRenderer) Objects() []fyne.CanvasObject { return r.objs }

func (r *chartRenderer) Refresh() {
	frame, ok := r.c.frame()
	if ok && len(frame.Marks) != len(r.marks) {
		r.rebuild(len(frame.Marks))
	}
	r.layoutFrame(r.c.Size(), frame, ok)
	for _, o := range r.objs {
		o.Refresh()
	}
}

func (r *chartRenderer) Layout(size fyne.Size) {
	frame, ok := r.c.frame()
	if ok && len(frame.Marks) != len(r.marks) {
		r.rebuild(len(frame.Marks))
	}
	r.layoutFrame(size, frame, ok)
}

func (r *chartRenderer) hideAll() {
	r.xAxis.Hide()
	r.yAxis.Hide()
	for i := range r.xTicks {
		r.xTicks[i].line.Hide()
		r.xTicks[i].text.Hide()
		r.yTicks[i].line.Hide()
		r.yTicks[i].text.Hide()
	}
	for _, m := range r.marks {
		m.circle.Hide()
		m.abbr.Hide()
	}
	r.tipBG.Hide()
	r.tip.Hide()
}

func (r *chartRenderer) layoutFrame(size fyne.Size, frame scatter.Scene, ok bool) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))
	if !ok {
		r.hideAll()
		ts := r.empty.MinSize()
		r.empty.Move(fyne.NewPos((size.Width-ts.Width)/2, (size.Height-ts.Height)/2))
		r.empty.Show()
		return
	}
	r.empty.Hide()
	t := newViewTransform(frame.Layout, size)
	pw := float32(frame.Layout.PlotWidth()) * t.scale
	ph := float32(frame.Layout.PlotHeight()) * t.scale
	bottom := t.originY + ph

	r.xAxis.Position1 = fyne.NewPos(t.originX, bottom)
	r.xAxis.Position2 = fyne.NewPos(t.originX+pw, bottom)
	r.yAxis.Position1 = fyne.NewPos(t.originX, t.originY)
	r.yAxis.Position2 = fyne.NewPos(t.originX, bottom)
	r.xAxis.Show()
	r.yAxis.Show()

	for i := range r.xTicks {
		tk := r.xTicks[i]
		if i >= len(frame.X.Ticks) {
			tk.line.Hide()
			tk.text.Hide()
			continue
		}
		x := t.originX + float32(frame.X.Ticks[i].Pos)*t.scale
		tk.line.Position1 = fyne.NewPos(x, bottom)
		tk.line.Position2 = fyne.NewPos(x, bottom+tickLength)
		tk.text.Text = frame.X.Ticks[i].Label
		ts := tk.text.MinSize()
		tk.text.Move(fyne.NewPos(x-ts.Width/2, bottom+tickLength+2))
		tk.line.Show()
		tk.text.Show()
	}
	for i := range r.yTicks {
		tk := r.yTicks[i]
		if i >= len(frame.Y.Ticks) {
			tk.line.Hide()
			tk.text.Hide()
			continue
		}
		y := t.originY + float32(frame.Y.Ticks[i].Pos)*t.scale
		tk.line.Position1 = fyne.NewPos(t.originX-tickLength, y)
		tk.line.Position2 = fyne.NewPos(t.originX, y)
		tk.text.Text = frame.Y.Ticks[i].Label
		ts := tk.text.MinSize()
		tk.text.Move(fyne.NewPos(t.originX-tickLength-3-ts.Width, y-ts.Height/2))
		tk.line.Show()
		tk.text.Show()
	}

	radius := float32(frame.MarkRadius) * t.scale
	for i, m := range frame.Marks {
		obj := r.marks[i]
		if !m.Pos.Valid() {
			obj.circle.Hide()
			obj.abbr.Hide()
			continue
		}
		p := t.toView(m.Pos)
		obj.circle.Resize(fyne.NewSize(2*radius, 2*radius))
		obj.circle.Move(fyne.NewPos(p.X-radius, p.Y-radius))
		obj.abbr.Text = m.Abbr
		obj.abbr.TextSize = max(radius*0.6, 6)
		ts := obj.abbr.MinSize()
		obj.abbr.Move(fyne.NewPos(p.X-ts.Width/2, p.Y-ts.Height/2))
		obj.circle.Show()
		obj.abbr.Show()
	}

	text, hit := "", false
	if r.c.hovering {
		text, hit = hoverTooltip(frame, t, r.c.mouse)
	}
	if !hit {
		r.tipBG.Hide()
		r.tip.Hide()
		return
	}
	r.tip.Segments = []widget.RichTextSegment{&widget.TextSegment{
		Text:  text,
		Style: widget.RichTextStyle{ColorName: theme.ColorNameBackground, SizeName: theme.SizeNameText},
	}}
	r.tip.Refresh()
	pad := float32(6)
	ts := r.tip.MinSize()
	bgW, bgH := ts.Width+2*pad, ts.Height+2*pad
	// above the cursor like a d3 tip, flipped below near the top edge
	tx, ty := r.c.mouse.X-bgW/2, r.c.mouse.Y-bgH-12
	if ty < 0 {
		ty = r.c.mouse.Y + 16
	}
	tx = max(0, min(tx, size.Width-bgW))
	r.tipBG.Resize(fyne.NewSize(bgW, bgH))
	r.tipBG.Move(fyne.NewPos(tx, ty))
	r.tip.Move(fyne.NewPos(tx+pad, ty+pad))
	r.tipBG.Show()
	r.tip.Show()
}

// MouseMoved tracks the pointer for the tooltip.
func (c *chartView) MouseMoved(ev *desktop.MouseEvent) {
	c.hovering = true
	c.mouse = ev.Position
	c.Refresh()
}
func (c *chartView) MouseIn(ev *desktop.MouseEvent) { c.hovering = true; c.mouse = ev.Position; c.Refresh() }
func (c *chartView) MouseOut()                      { c.hovering = false; c.Refresh() }

var _ desktop.Hoverable = (*chartView)(nil)

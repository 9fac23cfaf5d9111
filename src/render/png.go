package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/iafilius/HealthScatter/src/logging"
	"github.com/iafilius/HealthScatter/src/scatter"
)

var (
	markColor = drawing.Color{R: 137, G: 189, B: 211, A: 255}
	abbrColor = drawing.ColorWhite
)

// markStyle renders points only, no connecting line.
func markStyle(radius float64) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    radius,
		DotColor:    markColor,
	}
}

func chartTicks(ts []scatter.Tick) []chart.Tick {
	out := make([]chart.Tick, len(ts))
	for i, t := range ts {
		out[i] = chart.Tick{Value: t.Value, Label: t.Label}
	}
	return out
}

// abbreviations draws each state abbreviation centred on its dot, using the
// plot box go-chart settled on after fitting the axes.
func abbreviations(marks []scatter.Mark, xlo, xhi, ylo, yhi float64) chart.Renderable {
	return func(r chart.Renderer, box chart.Box, defaults chart.Style) {
		if xhi <= xlo || yhi <= ylo {
			return
		}
		st := chart.Style{FontSize: 9, FontColor: abbrColor}.InheritFrom(defaults)
		st.WriteTextOptionsToRenderer(r)
		for _, m := range marks {
			x := box.Left + int(math.Round((m.XValue-xlo)/(xhi-xlo)*float64(box.Width())))
			y := box.Bottom - int(math.Round((m.YValue-ylo)/(yhi-ylo)*float64(box.Height())))
			tb := r.MeasureText(m.Abbr)
			r.Text(m.Abbr, x-tb.Width()/2, y+tb.Height()/2)
		}
	}
}

// PNG draws the scene with go-chart and returns the decoded image.
func PNG(sc scatter.Scene, opts Options) (image.Image, error) {
	marks := drawable(sc)
	if len(marks) == 0 {
		return nil, ErrNoMarks
	}
	xs := make([]float64, len(marks))
	ys := make([]float64, len(marks))
	for i, m := range marks {
		xs[i], ys[i] = m.XValue, m.YValue
	}
	// go-chart wants at least two values to size a series
	if len(xs) == 1 {
		xs, ys = append(xs, xs[0]), append(ys, ys[0])
	}
	xlo, xhi := bounds(sc.X.Scale)
	ylo, yhi := bounds(sc.Y.Scale)
	w, h := opts.size(sc)
	m := sc.Layout.Margin
	ch := chart.Chart{
		Width:  w,
		Height: h,
		Background: chart.Style{Padding: chart.Box{
			Top:    int(m.Top),
			Left:   int(m.Left),
			Right:  int(m.Right),
			Bottom: int(m.Bottom),
		}},
		XAxis: chart.XAxis{
			Name:  sc.X.Title,
			Range: &chart.ContinuousRange{Min: xlo, Max: xhi},
			Ticks: chartTicks(sc.X.Ticks),
		},
		// the secondary axis is the one go-chart draws on the left; the
		// primary one only needs a valid range
		YAxis: chart.YAxis{
			Style: chart.Style{Hidden: true},
			Range: &chart.ContinuousRange{Min: ylo, Max: yhi},
		},
		YAxisSecondary: chart.YAxis{
			Name:  sc.Y.Title,
			Range: &chart.ContinuousRange{Min: ylo, Max: yhi},
			Ticks: chartTicks(sc.Y.Ticks),
		},
		Series: []chart.Series{chart.ContinuousSeries{
			Name:    "states",
			XValues: xs,
			YValues: ys,
			YAxis:   chart.YAxisSecondary,
			Style:   markStyle(sc.MarkRadius),
		}},
	}
	ch.Elements = []chart.Renderable{abbreviations(marks, xlo, xhi, ylo, yhi)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render png: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	if opts.Caption != "" {
		img = drawCaption(img, opts.Caption)
	}
	return img, nil
}

// WritePNG encodes the rendered scene to w.
func WritePNG(w io.Writer, sc scatter.Scene, opts Options) error {
	img, err := PNG(sc, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// SavePNG writes the rendered scene to path.
func SavePNG(path string, sc scatter.Scene, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(f, sc, opts); err != nil {
		f.Close()
		return err
	}
	logging.Debugf("[render] wrote %s", path)
	return f.Close()
}

// drawCaption writes text in the bottom-left corner over a light backdrop.
func drawCaption(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	pad := 4
	face := basicfont.Face7x13
	dr := &font.Drawer{Dst: rgba, Src: image.NewUniform(color.RGBA{R: 60, G: 60, B: 60, A: 255}), Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := b.Min.X + 8
	y := b.Max.Y - 6
	bg := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 220})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}

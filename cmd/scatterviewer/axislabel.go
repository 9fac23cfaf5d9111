package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/iafilius/HealthScatter/src/dataset"
	"github.com/iafilius/HealthScatter/src/scatter"
)

var (
	activeLabel   = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	inactiveLabel = color.NRGBA{R: 150, G: 150, B: 150, A: 255}
)

// axisLabel is one clickable axis title. The active one is bold and dark.
type axisLabel struct {
	widget.BaseWidget
	metric dataset.Metric
	text   *canvas.Text
	active bool
	onTap  func(dataset.Metric)
}

func newAxisLabel(m dataset.Metric, onTap func(dataset.Metric)) *axisLabel {
	l := &axisLabel{metric: m, onTap: onTap, text: canvas.NewText(scatter.LabelText(m), inactiveLabel)}
	l.text.TextSize = 15
	l.text.Alignment = fyne.TextAlignCenter
	l.ExtendBaseWidget(l)
	return l
}

func (l *axisLabel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(l.text)
}

// SetActive restyles the label.
func (l *axisLabel) SetActive(active bool) {
	l.active = active
	if active {
		l.text.Color = activeLabel
	} else {
		l.text.Color = inactiveLabel
	}
	l.text.TextStyle = fyne.TextStyle{Bold: active}
	l.text.Refresh()
}

func (l *axisLabel) Tapped(*fyne.PointEvent) {
	if l.onTap != nil {
		l.onTap(l.metric)
	}
}

func (l *axisLabel) Cursor() desktop.Cursor { return desktop.PointerCursor }

var (
	_ fyne.Tappable      = (*axisLabel)(nil)
	_ desktop.Cursorable = (*axisLabel)(nil)
)

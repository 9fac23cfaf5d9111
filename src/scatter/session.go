package scatter

import (
	"fmt"

	"github.com/iafilius/HealthScatter/src/dataset"
	"github.com/iafilius/HealthScatter/src/logging"
)

// RenderFunc receives every rendered scene. animate is false for the initial draw.
type RenderFunc func(s Scene, animate bool)

// Session owns the chosen metrics, their scales and label sets for one
// dataset. It is driven from a single UI goroutine and does no locking.
type Session struct {
	records []dataset.Record
	opts    Options

	chosenX, chosenY dataset.Metric
	xScale, yScale   LinearScale
	xLabels, yLabels *LabelSet

	scene       Scene
	subscribers []RenderFunc
}

// NewSession builds both axes for the initial metrics and renders the first scene.
func NewSession(records []dataset.Record, opts Options) (*Session, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty dataset", ErrEmptyDomain)
	}
	s := &Session{
		records: records,
		opts:    opts,
		xLabels: BuildLabels(dataset.AxisX),
		yLabels: BuildLabels(dataset.AxisY),
	}
	var err error
	if s.xScale, err = BuildAxisScale(records, s.xLabels, opts.InitialX, opts); err != nil {
		return nil, fmt.Errorf("initial x axis: %w", err)
	}
	if s.yScale, err = BuildAxisScale(records, s.yLabels, opts.InitialY, opts); err != nil {
		return nil, fmt.Errorf("initial y axis: %w", err)
	}
	s.chosenX, s.chosenY = opts.InitialX, opts.InitialY
	s.scene = s.render()
	logging.Debugf("[session] initial axes x=%s %v y=%s %v", s.chosenX, s.xScale, s.chosenY, s.yScale)
	return s, nil
}

func (s *Session) render() Scene {
	return Render(RenderInput{
		Records:    s.records,
		X:          s.chosenX,
		Y:          s.chosenY,
		XScale:     s.xScale,
		YScale:     s.yScale,
		XLabels:    s.xLabels,
		YLabels:    s.yLabels,
		Layout:     s.opts.Layout,
		TickCount:  s.opts.tickCount(),
		MarkRadius: s.opts.MarkRadius,
	})
}

// Subscribe registers fn for future renders and immediately hands it the
// current scene without animation.
func (s *Session) Subscribe(fn RenderFunc) {
	if fn == nil {
		return
	}
	s.subscribers = append(s.subscribers, fn)
	fn(s.scene, false)
}

// SelectX handles a click on an X axis label.
func (s *Session) SelectX(m dataset.Metric) (bool, error) { return s.Select(dataset.AxisX, m) }

// SelectY handles a click on a Y axis label.
func (s *Session) SelectY(m dataset.Metric) (bool, error) { return s.Select(dataset.AxisY, m) }

// Select switches axis to metric m. Selecting the metric already shown is a
// no-op and returns false. On success the axis scale and labels are rebuilt,
// the scene is re-rendered and subscribers are notified with animate=true.
// The other axis is left as is.
func (s *Session) Select(axis dataset.Axis, m dataset.Metric) (bool, error) {
	if !m.Valid() || m.Axis() != axis {
		return false, fmt.Errorf("%w: %s on %s axis", ErrWrongAxis, m, axis)
	}
	chosen, labels := &s.chosenX, s.xLabels
	scale := &s.xScale
	if axis == dataset.AxisY {
		chosen, labels, scale = &s.chosenY, s.yLabels, &s.yScale
	}
	if m == *chosen {
		return false, nil
	}
	sc, err := BuildAxisScale(s.records, labels, m, s.opts)
	if err != nil {
		return false, err
	}
	*chosen = m
	*scale = sc
	s.scene = s.render()
	logging.Debugf("[session] %s axis -> %s %v", axis, m, sc)
	for _, fn := range s.subscribers {
		fn(s.scene, true)
	}
	return true, nil
}

// ChosenX returns the metric on the X axis.
func (s *Session) ChosenX() dataset.Metric { return s.chosenX }

// ChosenY returns the metric on the Y axis.
func (s *Session) ChosenY() dataset.Metric { return s.chosenY }

// XScale returns the current X scale.
func (s *Session) XScale() LinearScale { return s.xScale }

// YScale returns the current Y scale.
func (s *Session) YScale() LinearScale { return s.yScale }

// Labels returns a copy of the labels of an axis.
func (s *Session) Labels(axis dataset.Axis) [3]Label {
	if axis == dataset.AxisY {
		return s.yLabels.Labels()
	}
	return s.xLabels.Labels()
}

// Scene returns the last rendered scene.
func (s *Session) Scene() Scene { return s.scene }

// Records returns the dataset the session was built from.
func (s *Session) Records() []dataset.Record { return s.records }

// Options returns the session options.
func (s *Session) Options() Options { return s.opts }

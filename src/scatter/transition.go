package scatter

import (
	"math"
	"time"
)

// DefaultDuration is the length of an axis change animation.
const DefaultDuration = 1000 * time.Millisecond

// EaseCubicInOut is the default easing curve of axis transitions.
func EaseCubicInOut(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	t *= 2
	if t <= 1 {
		return t * t * t / 2
	}
	t -= 2
	return (t*t*t + 2) / 2
}

// tween interpolates one value from -> to over dur starting at start.
type tween struct {
	from, to float64
	start    time.Time
	dur      time.Duration
}

func still(v float64) tween { return tween{from: v, to: v} }

func (tw tween) at(now time.Time) float64 {
	if tw.dur <= 0 || !now.Before(tw.start.Add(tw.dur)) {
		return tw.to
	}
	// A mark coming from or going to a NaN position has nothing to interpolate.
	if math.IsNaN(tw.from) || math.IsNaN(tw.to) {
		return tw.to
	}
	p := float64(now.Sub(tw.start)) / float64(tw.dur)
	return tw.from + (tw.to-tw.from)*EaseCubicInOut(p)
}

func (tw tween) running(now time.Time) bool {
	return tw.dur > 0 && now.Before(tw.start.Add(tw.dur)) && tw.from != tw.to
}

// retarget starts a new tween from the current value toward to.
func (tw tween) retarget(to float64, now time.Time, dur time.Duration) tween {
	return tween{from: tw.at(now), to: to, start: now, dur: dur}
}

// pointTween moves a mark's single coordinate pair.
type pointTween struct{ x, y tween }

func (p pointTween) at(now time.Time) Point { return Point{X: p.x.at(now), Y: p.y.at(now)} }

// Engine animates a chart between successive scenes. Each mark and each axis
// domain owns one tween; a newer scene supersedes any tween in flight,
// starting from wherever it currently is.
type Engine struct {
	dur     time.Duration
	target  Scene
	marks   []pointTween
	xDomain [2]tween
	yDomain [2]tween
	have    bool
}

// NewEngine returns an Engine animating over dur.
func NewEngine(dur time.Duration) *Engine {
	if dur < 0 {
		dur = 0
	}
	return &Engine{dur: dur}
}

// Duration returns the animation length.
func (e *Engine) Duration() time.Duration { return e.dur }

// Target returns the most recent scene given to Update.
func (e *Engine) Target() Scene { return e.target }

// Update sets a new target scene. Without animate, or when the set of marks
// changed, the engine jumps straight to the target.
func (e *Engine) Update(s Scene, now time.Time, animate bool) {
	snap := !animate || !e.have || len(s.Marks) != len(e.marks) || e.dur == 0
	e.target = s
	e.have = true
	if snap {
		e.snap()
		return
	}
	for i, m := range s.Marks {
		e.marks[i].x = e.marks[i].x.retarget(m.Pos.X, now, e.dur)
		e.marks[i].y = e.marks[i].y.retarget(m.Pos.Y, now, e.dur)
	}
	xd, yd := s.X.Scale.Domain(), s.Y.Scale.Domain()
	for i := 0; i < 2; i++ {
		e.xDomain[i] = e.xDomain[i].retarget(xd[i], now, e.dur)
		e.yDomain[i] = e.yDomain[i].retarget(yd[i], now, e.dur)
	}
}

func (e *Engine) snap() {
	e.marks = make([]pointTween, len(e.target.Marks))
	for i, m := range e.target.Marks {
		e.marks[i] = pointTween{x: still(m.Pos.X), y: still(m.Pos.Y)}
	}
	xd, yd := e.target.X.Scale.Domain(), e.target.Y.Scale.Domain()
	for i := 0; i < 2; i++ {
		e.xDomain[i] = still(xd[i])
		e.yDomain[i] = still(yd[i])
	}
}

// Finish ends every running tween at its target.
func (e *Engine) Finish() {
	if e.have {
		e.snap()
	}
}

// Animating reports whether any tween is still moving at now.
func (e *Engine) Animating(now time.Time) bool {
	for _, m := range e.marks {
		if m.x.running(now) || m.y.running(now) {
			return true
		}
	}
	for i := 0; i < 2; i++ {
		if e.xDomain[i].running(now) || e.yDomain[i].running(now) {
			return true
		}
	}
	return false
}

// Frame returns the scene as it should be drawn at now: interpolated axis
// domains with their ticks and interpolated mark positions. Titles and
// tooltips are always the target's.
func (e *Engine) Frame(now time.Time) Scene {
	f := e.target
	if !e.have {
		return f
	}
	count := e.target.TickCount
	xs := e.target.X.Scale.WithDomain([2]float64{e.xDomain[0].at(now), e.xDomain[1].at(now)})
	ys := e.target.Y.Scale.WithDomain([2]float64{e.yDomain[0].at(now), e.yDomain[1].at(now)})
	f.X.Scale, f.X.Ticks = xs, AxisTicks(xs, count)
	f.Y.Scale, f.Y.Ticks = ys, AxisTicks(ys, count)
	f.Marks = make([]Mark, len(e.target.Marks))
	copy(f.Marks, e.target.Marks)
	for i := range f.Marks {
		f.Marks[i].Pos = e.marks[i].at(now)
	}
	return f
}

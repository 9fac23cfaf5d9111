package scatter

import (
	"math"
	"testing"

	"github.com/iafilius/HealthScatter/src/dataset"
)

func threeStates() []dataset.Record {
	return []dataset.Record{
		{State: "A", Abbr: "AA", Poverty: 10, Age: 35, Obesity: 20, Smokes: 15},
		{State: "B", Abbr: "BB", Poverty: 20, Age: 40, Obesity: 30, Smokes: 20},
		{State: "C", Abbr: "CC", Poverty: 30, Age: 45, Obesity: 40, Smokes: 25},
	}
}

func TestRender_MarksMatchScalesOneToOne(t *testing.T) {
	recs := threeStates()
	l := DefaultLayout()
	xs := NewLinearScale([2]float64{9, 31}, [2]float64{0, l.PlotWidth()})
	ys := NewLinearScale([2]float64{18, 42}, [2]float64{l.PlotHeight(), 0})
	sc := Render(RenderInput{Records: recs, X: dataset.Poverty, Y: dataset.Obesity, XScale: xs, YScale: ys, Layout: l})
	if len(sc.Marks) != len(recs) {
		t.Fatalf("marks %d records %d", len(sc.Marks), len(recs))
	}
	for i, m := range sc.Marks {
		if m.Index != i || m.Abbr != recs[i].Abbr {
			t.Fatalf("mark %d out of order: %+v", i, m)
		}
		wantX := (recs[i].Poverty - 9) / 22 * 820
		wantY := 400 - (recs[i].Obesity-18)/24*400
		if math.Abs(m.Pos.X-wantX) > eps || math.Abs(m.Pos.Y-wantY) > eps {
			t.Fatalf("mark %s at %+v want (%v,%v)", m.Abbr, m.Pos, wantX, wantY)
		}
	}
	if sc.X.Title != "In Poverty (%)" || sc.Y.Title != "Obese (%)" {
		t.Fatalf("axis titles: %q %q", sc.X.Title, sc.Y.Title)
	}
	if sc.MarkRadius != DefaultMarkRadius || sc.TickCount != DefaultTickCount {
		t.Fatalf("defaults not applied: r=%v ticks=%d", sc.MarkRadius, sc.TickCount)
	}
}

func TestRender_TickCountIsCapped(t *testing.T) {
	domains := [][2]float64{{0, 1}, {9, 31}, {33, 46}, {0.7, 0.71}, {30000, 80000}, {-3, 1e6}}
	for _, d := range domains {
		s := NewLinearScale(d, [2]float64{0, 820})
		sc := Render(RenderInput{Records: threeStates(), X: dataset.Poverty, Y: dataset.Obesity, XScale: s, YScale: s, TickCount: 1000})
		if sc.TickCount != MaxTickCount {
			t.Fatalf("tick count %d not capped at %d", sc.TickCount, MaxTickCount)
		}
		if n := len(sc.X.Ticks); n == 0 || n >= MaxTickCount*2 {
			t.Fatalf("domain %v: %d ticks", d, n)
		}
	}
	if n := (Options{TickCount: 1000}).tickCount(); n != MaxTickCount {
		t.Fatalf("options tick count %d", n)
	}
	if n := (Options{}).tickCount(); n != DefaultTickCount {
		t.Fatalf("unset options tick count %d", n)
	}
}

func TestTooltipFormat(t *testing.T) {
	got := Tooltip("Alabama", "In Poverty (%)", 19.3, "Obese (%)", 33.5)
	want := "Alabama\nIn Poverty (%): 19.3\nObese (%): 33.5"
	if got != want {
		t.Fatalf("tooltip = %q want %q", got, want)
	}
	if FormatValue(42830) != "42830" || FormatValue(math.NaN()) != "NaN" {
		t.Fatalf("value formatting: %q %q", FormatValue(42830), FormatValue(math.NaN()))
	}
}

func TestRender_NaNPropagatesToPosition(t *testing.T) {
	recs := []dataset.Record{{State: "X", Poverty: math.NaN(), Obesity: 20}}
	xs := NewLinearScale([2]float64{0, 10}, [2]float64{0, 100})
	ys := NewLinearScale([2]float64{0, 40}, [2]float64{100, 0})
	sc := Render(RenderInput{Records: recs, X: dataset.Poverty, Y: dataset.Obesity, XScale: xs, YScale: ys})
	if sc.Marks[0].Pos.Valid() {
		t.Fatalf("NaN value should yield an invalid position: %+v", sc.Marks[0].Pos)
	}
	if _, ok := sc.MarkAt(Point{X: 0, Y: 50}); ok {
		t.Fatalf("NaN mark must not be hit")
	}
}

func TestMarkAt_TopmostWins(t *testing.T) {
	sc := Scene{MarkRadius: 10, Marks: []Mark{
		{Index: 0, Pos: Point{X: 50, Y: 50}},
		{Index: 1, Pos: Point{X: 55, Y: 50}},
	}}
	if i, ok := sc.MarkAt(Point{X: 52, Y: 50}); !ok || i != 1 {
		t.Fatalf("overlap should pick the later mark, got %d %v", i, ok)
	}
	if i, ok := sc.MarkAt(Point{X: 41, Y: 50}); !ok || i != 0 {
		t.Fatalf("left edge should hit mark 0, got %d %v", i, ok)
	}
	if _, ok := sc.MarkAt(Point{X: 90, Y: 90}); ok {
		t.Fatalf("empty area hit a mark")
	}
}

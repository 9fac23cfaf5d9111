package scatter

import (
	"errors"
	"math"
	"testing"

	"github.com/iafilius/HealthScatter/src/dataset"
)

const eps = 1e-9

func recordsWith(m dataset.Metric, vals ...float64) []dataset.Record {
	out := make([]dataset.Record, len(vals))
	for i, v := range vals {
		var r dataset.Record
		switch m {
		case dataset.Poverty:
			r.Poverty = v
		case dataset.Age:
			r.Age = v
		case dataset.Income:
			r.Income = v
		case dataset.Obesity:
			r.Obesity = v
		case dataset.Smokes:
			r.Smokes = v
		case dataset.Healthcare:
			r.Healthcare = v
		}
		out[i] = r
	}
	return out
}

func TestBuildScale_DomainPadsPerAxis(t *testing.T) {
	x, err := BuildScale(recordsWith(dataset.Poverty, 10, 20, 30), dataset.Poverty, XPad, 820, false)
	if err != nil {
		t.Fatalf("x scale: %v", err)
	}
	if d := x.Domain(); d != [2]float64{9, 31} {
		t.Fatalf("x domain = %v want [9 31]", d)
	}
	if r := x.Range(); r != [2]float64{0, 820} {
		t.Fatalf("x range = %v", r)
	}
	y, err := BuildScale(recordsWith(dataset.Obesity, 10, 20, 30), dataset.Obesity, YPad, 400, true)
	if err != nil {
		t.Fatalf("y scale: %v", err)
	}
	if d := y.Domain(); d != [2]float64{8, 32} {
		t.Fatalf("y domain = %v want [8 32]", d)
	}
	if r := y.Range(); r != [2]float64{400, 0} {
		t.Fatalf("y range should be inverted: %v", r)
	}
	// higher values draw higher up
	if !(y.Map(30) < y.Map(10)) {
		t.Fatalf("reversed scale should map larger values to smaller pixels")
	}
}

func TestLinearScale_MapInvertNoClamp(t *testing.T) {
	s := NewLinearScale([2]float64{9, 31}, [2]float64{0, 820})
	cases := []struct{ v, px float64 }{
		{9, 0},
		{31, 820},
		{20, 410},
		{42, 1230}, // extrapolates past the domain
		{-2, -410},
	}
	for _, c := range cases {
		if got := s.Map(c.v); math.Abs(got-c.px) > eps {
			t.Fatalf("Map(%v) = %v want %v", c.v, got, c.px)
		}
		if got := s.Invert(c.px); math.Abs(got-c.v) > eps {
			t.Fatalf("Invert(%v) = %v want %v", c.px, got, c.v)
		}
	}
	if !math.IsNaN(s.Map(math.NaN())) {
		t.Fatalf("NaN should propagate")
	}
	flat := NewLinearScale([2]float64{5, 5}, [2]float64{0, 100})
	if flat.Map(5) != 50 {
		t.Fatalf("degenerate domain should map to range midpoint, got %v", flat.Map(5))
	}
}

func TestBuildScale_EmptyFailsFast(t *testing.T) {
	if _, err := BuildScale(nil, dataset.Poverty, XPad, 820, false); !errors.Is(err, ErrEmptyDomain) {
		t.Fatalf("want ErrEmptyDomain got %v", err)
	}
	allNaN := recordsWith(dataset.Age, math.NaN(), math.NaN())
	if _, err := BuildScale(allNaN, dataset.Age, XPad, 820, false); !errors.Is(err, ErrEmptyDomain) {
		t.Fatalf("all-NaN column: want ErrEmptyDomain got %v", err)
	}
}

func TestBuildScale_IgnoresNaNForDomain(t *testing.T) {
	s, err := BuildScale(recordsWith(dataset.Income, 40000, math.NaN(), 60000), dataset.Income, XPad, 820, false)
	if err != nil {
		t.Fatalf("scale: %v", err)
	}
	if d := s.Domain(); d != [2]float64{39999, 60001} {
		t.Fatalf("domain = %v", d)
	}
}

func TestBuildAxisScale_ActivatesLabel(t *testing.T) {
	opts := DefaultOptions()
	labels := BuildLabels(dataset.AxisY)
	recs := recordsWith(dataset.Smokes, 15, 25)
	s, err := BuildAxisScale(recs, labels, dataset.Smokes, opts)
	if err != nil {
		t.Fatalf("axis scale: %v", err)
	}
	if d := s.Domain(); d != [2]float64{13, 27} {
		t.Fatalf("y axis should use y pad: %v", d)
	}
	if r := s.Range(); r != [2]float64{opts.Layout.PlotHeight(), 0} {
		t.Fatalf("y axis range = %v", r)
	}
	if !labels.IsActive(dataset.Smokes) || labels.ActiveCount() != 1 {
		t.Fatalf("smokes label should be the only active one: %+v", labels.Labels())
	}
	if _, err := BuildAxisScale(recs, labels, dataset.Poverty, opts); !errors.Is(err, ErrWrongAxis) {
		t.Fatalf("x metric on y labels: want ErrWrongAxis got %v", err)
	}
	if !labels.IsActive(dataset.Smokes) {
		t.Fatalf("failed build must not restyle labels")
	}
}

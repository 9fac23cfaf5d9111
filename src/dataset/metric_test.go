package dataset

import "testing"

func TestMetricAxisRoles(t *testing.T) {
	for _, m := range XMetrics {
		if m.Axis() != AxisX {
			t.Fatalf("%s should be an X metric", m)
		}
	}
	for _, m := range YMetrics {
		if m.Axis() != AxisY {
			t.Fatalf("%s should be a Y metric", m)
		}
	}
	if Metrics(AxisY) != YMetrics || Metrics(AxisX) != XMetrics {
		t.Fatalf("Metrics() candidate lists mismatch")
	}
}

func TestParseMetricRoundTrip(t *testing.T) {
	for m := Metric(0); m < numMetrics; m++ {
		got, err := ParseMetric(" " + m.String() + " ")
		if err != nil || got != m {
			t.Fatalf("ParseMetric(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMetric("Income"); err != nil {
		t.Fatalf("case-insensitive parse failed: %v", err)
	}
	if _, err := ParseMetric("weight"); err == nil {
		t.Fatalf("expected error for unknown metric")
	}
	if Metric(42).Valid() {
		t.Fatalf("out-of-range metric reported valid")
	}
}

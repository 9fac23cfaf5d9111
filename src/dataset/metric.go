package dataset

import (
	"fmt"
	"strings"
)

// Axis identifies which chart axis a metric belongs to.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Metric is one numeric column of the dataset. The set is closed.
type Metric uint8

const (
	Poverty Metric = iota
	Age
	Income
	Obesity
	Smokes
	Healthcare

	numMetrics
)

// XMetrics are the candidate keys of the X axis in label order.
var XMetrics = [3]Metric{Poverty, Age, Income}

// YMetrics are the candidate keys of the Y axis in label order.
var YMetrics = [3]Metric{Obesity, Smokes, Healthcare}

var metricNames = [numMetrics]string{
	Poverty:    "poverty",
	Age:        "age",
	Income:     "income",
	Obesity:    "obesity",
	Smokes:     "smokes",
	Healthcare: "healthcare",
}

// String returns the CSV column name of the metric.
func (m Metric) String() string {
	if m < numMetrics {
		return metricNames[m]
	}
	return fmt.Sprintf("metric(%d)", uint8(m))
}

// Valid reports whether m is one of the six known metrics.
func (m Metric) Valid() bool { return m < numMetrics }

// Axis reports the axis role of the metric.
func (m Metric) Axis() Axis {
	switch m {
	case Obesity, Smokes, Healthcare:
		return AxisY
	default:
		return AxisX
	}
}

// Metrics returns the candidate list for an axis.
func Metrics(a Axis) [3]Metric {
	if a == AxisY {
		return YMetrics
	}
	return XMetrics
}

// ParseMetric maps a column name (case-insensitive) to its Metric.
func ParseMetric(s string) (Metric, error) {
	k := strings.ToLower(strings.TrimSpace(s))
	for i, n := range metricNames {
		if n == k {
			return Metric(i), nil
		}
	}
	return 0, fmt.Errorf("unknown metric %q", s)
}

package dataset

import "math"

// Record is one row of the dataset: a U.S. state and its six metrics.
// Metric cells that failed to parse hold NaN.
type Record struct {
	State      string
	Abbr       string
	Poverty    float64
	Age        float64
	Income     float64
	Healthcare float64
	Obesity    float64
	Smokes     float64
}

// Value returns the metric m of the record.
func (r Record) Value(m Metric) float64 {
	switch m {
	case Poverty:
		return r.Poverty
	case Age:
		return r.Age
	case Income:
		return r.Income
	case Healthcare:
		return r.Healthcare
	case Obesity:
		return r.Obesity
	case Smokes:
		return r.Smokes
	}
	return math.NaN()
}

func (r *Record) set(m Metric, v float64) {
	switch m {
	case Poverty:
		r.Poverty = v
	case Age:
		r.Age = v
	case Income:
		r.Income = v
	case Healthcare:
		r.Healthcare = v
	case Obesity:
		r.Obesity = v
	case Smokes:
		r.Smokes = v
	}
}

// Extent returns the min and max of metric m over records, skipping NaN values.
// ok is false when no record carries a numeric value.
func Extent(records []Record, m Metric) (min, max float64, ok bool) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, r := range records {
		v := r.Value(m)
		if math.IsNaN(v) {
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		ok = true
	}
	if !ok {
		return math.NaN(), math.NaN(), false
	}
	return min, max, true
}

// CountNaN returns how many records hold NaN for metric m.
func CountNaN(records []Record, m Metric) int {
	n := 0
	for _, r := range records {
		if math.IsNaN(r.Value(m)) {
			n++
		}
	}
	return n
}

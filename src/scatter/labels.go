package scatter

import "github.com/iafilius/HealthScatter/src/dataset"

var labelTexts = map[dataset.Metric]string{
	dataset.Poverty:    "In Poverty (%)",
	dataset.Age:        "Age (median)",
	dataset.Income:     "Household Income (Median)",
	dataset.Obesity:    "Obese (%)",
	dataset.Smokes:     "Smokes (%)",
	dataset.Healthcare: "Lacks Healthcare (%)",
}

// LabelText returns the display text of a metric's axis label.
func LabelText(m dataset.Metric) string {
	if t, ok := labelTexts[m]; ok {
		return t
	}
	return m.String()
}

// Label is one clickable axis title.
type Label struct {
	Metric dataset.Metric
	Text   string
	Active bool
}

// LabelSet holds the three labels of one axis in fixed order.
type LabelSet struct {
	axis   dataset.Axis
	labels [3]Label
}

// BuildLabels creates the labels of an axis, all inactive.
func BuildLabels(axis dataset.Axis) *LabelSet {
	s := &LabelSet{axis: axis}
	for i, m := range dataset.Metrics(axis) {
		s.labels[i] = Label{Metric: m, Text: LabelText(m)}
	}
	return s
}

// Axis returns the axis the set belongs to.
func (s *LabelSet) Axis() dataset.Axis { return s.axis }

// Labels returns a copy of the labels in display order.
func (s *LabelSet) Labels() [3]Label { return s.labels }

func (s *LabelSet) index(m dataset.Metric) int {
	for i, l := range s.labels {
		if l.Metric == m {
			return i
		}
	}
	return -1
}

// SetActive marks m active and every other label inactive. A metric that does
// not belong to this axis leaves the set untouched and returns false.
func (s *LabelSet) SetActive(m dataset.Metric) bool {
	i := s.index(m)
	if i < 0 {
		return false
	}
	for j := range s.labels {
		s.labels[j].Active = j == i
	}
	return true
}

// Active returns the active metric; ok is false before the first activation.
func (s *LabelSet) Active() (dataset.Metric, bool) {
	for _, l := range s.labels {
		if l.Active {
			return l.Metric, true
		}
	}
	return 0, false
}

// IsActive reports whether m is the active label.
func (s *LabelSet) IsActive(m dataset.Metric) bool {
	i := s.index(m)
	return i >= 0 && s.labels[i].Active
}

// Text returns the display text of m within this set.
func (s *LabelSet) Text(m dataset.Metric) string {
	if i := s.index(m); i >= 0 {
		return s.labels[i].Text
	}
	return LabelText(m)
}

// ActiveCount is the number of active labels. It is 1 once the axis is drawn.
func (s *LabelSet) ActiveCount() int {
	n := 0
	for _, l := range s.labels {
		if l.Active {
			n++
		}
	}
	return n
}

package scatter

import (
	"errors"
	"fmt"
	"math"

	"github.com/iafilius/HealthScatter/src/dataset"
)

var (
	// ErrEmptyDomain is returned when a metric has no numeric value to build a domain from.
	ErrEmptyDomain = errors.New("scatter: no data to build scale domain")
	// ErrWrongAxis is returned when a metric is used on the axis it does not belong to.
	ErrWrongAxis = errors.New("scatter: metric does not belong to axis")
)

// LinearScale maps a data domain onto a pixel range. It never clamps.
type LinearScale struct {
	d0, d1 float64
	r0, r1 float64
}

// NewLinearScale returns the scale domain -> rng.
func NewLinearScale(domain, rng [2]float64) LinearScale {
	return LinearScale{d0: domain[0], d1: domain[1], r0: rng[0], r1: rng[1]}
}

// Map converts a data value to a pixel coordinate. NaN maps to NaN.
func (s LinearScale) Map(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	if s.d1 == s.d0 {
		return (s.r0 + s.r1) / 2
	}
	t := (v - s.d0) / (s.d1 - s.d0)
	return s.r0 + t*(s.r1-s.r0)
}

// Invert converts a pixel coordinate back to a data value.
func (s LinearScale) Invert(px float64) float64 {
	if s.r1 == s.r0 {
		return (s.d0 + s.d1) / 2
	}
	t := (px - s.r0) / (s.r1 - s.r0)
	return s.d0 + t*(s.d1-s.d0)
}

// Domain returns the data bounds in construction order.
func (s LinearScale) Domain() [2]float64 { return [2]float64{s.d0, s.d1} }

// Range returns the pixel bounds in construction order.
func (s LinearScale) Range() [2]float64 { return [2]float64{s.r0, s.r1} }

// WithDomain returns a copy of s with a different domain and the same range.
func (s LinearScale) WithDomain(d [2]float64) LinearScale {
	s.d0, s.d1 = d[0], d[1]
	return s
}

func (s LinearScale) String() string {
	return fmt.Sprintf("[%g, %g] -> [%g, %g]", s.d0, s.d1, s.r0, s.r1)
}

// BuildScale builds the scale [min-pad, max+pad] -> [0, extent] over metric key.
// With reversed the range is [extent, 0] so larger values draw higher up.
func BuildScale(records []dataset.Record, key dataset.Metric, pad, extent float64, reversed bool) (LinearScale, error) {
	lo, hi, ok := dataset.Extent(records, key)
	if !ok {
		return LinearScale{}, fmt.Errorf("%w: %s over %d records", ErrEmptyDomain, key, len(records))
	}
	rng := [2]float64{0, extent}
	if reversed {
		rng = [2]float64{extent, 0}
	}
	return NewLinearScale([2]float64{lo - pad, hi + pad}, rng), nil
}

// BuildAxisScale builds the scale for key on the axis of labels, using that
// axis' pad and orientation, and restyles the labels so key is the active one.
func BuildAxisScale(records []dataset.Record, labels *LabelSet, key dataset.Metric, opts Options) (LinearScale, error) {
	axis := labels.Axis()
	if !key.Valid() || key.Axis() != axis {
		return LinearScale{}, fmt.Errorf("%w: %s on %s axis", ErrWrongAxis, key, axis)
	}
	sc, err := BuildScale(records, key, opts.Pad(axis), opts.Layout.Extent(axis), axis == dataset.AxisY)
	if err != nil {
		return LinearScale{}, err
	}
	labels.SetActive(key)
	return sc, nil
}

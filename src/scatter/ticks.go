package scatter

import (
	"math"

	humanize "github.com/dustin/go-humanize"
)

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// tickSpec returns the integer tick index bounds and the increment for about
// count ticks over [start, stop]. For steps below 1, inc is the reciprocal of
// the step so tick values are i/inc and avoid accumulated float error.
func tickSpec(start, stop float64, count int) (i1, i2, inc float64, fractional bool) {
	step0 := (stop - start) / float64(count)
	power := math.Floor(math.Log10(step0))
	factor := 1.0
	switch err := step0 / math.Pow(10, power); {
	case err >= e10:
		factor = 10
	case err >= e5:
		factor = 5
	case err >= e2:
		factor = 2
	}
	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1, i2 = math.Round(start*inc), math.Round(stop*inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		return i1, i2, inc, true
	}
	inc = math.Pow(10, power) * factor
	i1, i2 = math.Round(start/inc), math.Round(stop/inc)
	if i1*inc < start {
		i1++
	}
	if i2*inc > stop {
		i2--
	}
	return i1, i2, inc, false
}

func tickable(start, stop float64, count int) bool {
	return count >= 1 && !math.IsNaN(start) && !math.IsNaN(stop) &&
		!math.IsInf(start, 0) && !math.IsInf(stop, 0) && start < stop
}

// TickStep picks a 1, 2 or 5 x 10^k step giving about count ticks over [start, stop].
func TickStep(start, stop float64, count int) float64 {
	if !tickable(start, stop, count) {
		return 0
	}
	_, _, inc, fractional := tickSpec(start, stop, count)
	if fractional {
		return 1 / inc
	}
	return inc
}

// Ticks returns tick values lying inside the scale domain, ascending.
func (s LinearScale) Ticks(count int) []float64 {
	lo, hi := s.d0, s.d1
	if lo > hi {
		lo, hi = hi, lo
	}
	if !tickable(lo, hi, count) {
		return nil
	}
	i1, i2, inc, fractional := tickSpec(lo, hi, count)
	if i2 < i1 {
		return nil
	}
	out := make([]float64, 0, int(i2-i1)+1)
	for i := i1; i <= i2; i++ {
		if fractional {
			out = append(out, round6(i/inc))
		} else {
			out = append(out, round6(i*inc))
		}
	}
	return out
}

// round6 rounds to 6 decimal places so 0.1 steps do not print as 0.30000000000000004.
func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }

// FormatTick renders a tick value with as many decimals as the step needs and
// thousands separators, e.g. 40,000 or 10.5.
func FormatTick(v, step float64) string {
	decimals := 0
	if step > 0 && step < 1 {
		decimals = int(math.Ceil(-math.Log10(step) - 1e-9))
	}
	v = round6(v)
	if v == 0 {
		v = 0 // drop negative zero
	}
	return humanize.CommafWithDigits(v, decimals)
}

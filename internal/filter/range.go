// Package filter holds the filter panel state: the clamped range pairs,
// the aggregate filter set, its query serialization, and the genre picker.
package filter

// Range is a [Min, Max] pair constrained to immutable outer bounds.
// After any sequence of SetMin/SetMax calls the ordering
// Lower <= Min <= Max <= Upper holds. Out-of-range input is clamped,
// never rejected: slider drags can transiently report values outside
// the bounds and must not produce an invalid pair.
type Range struct {
	Min float64
	Max float64

	lower      float64
	upper      float64
	defaultMin float64
	defaultMax float64
}

// NewRange creates a Range with the given outer bounds and initial pair.
// The initial pair is clamped into the bounds and remembered as the
// reset target.
func NewRange(lower, upper, min, max float64) Range {
	min = clamp(min, lower, upper)
	max = clamp(max, min, upper)
	return Range{
		Min:        min,
		Max:        max,
		lower:      lower,
		upper:      upper,
		defaultMin: min,
		defaultMax: max,
	}
}

// Lower returns the immutable lower bound.
func (r *Range) Lower() float64 { return r.lower }

// Upper returns the immutable upper bound.
func (r *Range) Upper() float64 { return r.upper }

// SetMin updates Min, clamped to [lower, min(Max, upper)]. Max is untouched.
func (r *Range) SetMin(v float64) {
	hi := r.Max
	if hi > r.upper {
		hi = r.upper
	}
	r.Min = clamp(v, r.lower, hi)
}

// SetMax updates Max, clamped to [max(Min, lower), upper]. Min is untouched.
func (r *Range) SetMax(v float64) {
	lo := r.Min
	if lo < r.lower {
		lo = r.lower
	}
	r.Max = clamp(v, lo, r.upper)
}

// Set installs a complete (min, max) pair, clamped into the outer
// bounds as a unit. Unlike SetMin/SetMax, the current pair does not
// constrain the new one, so a pair entirely below or above the current
// values lands intact.
func (r *Range) Set(min, max float64) {
	min = clamp(min, r.lower, r.upper)
	r.Min = min
	r.Max = clamp(max, min, r.upper)
}

// Reset restores the pair supplied at construction, ignoring current values.
func (r *Range) Reset() {
	r.Min = r.defaultMin
	r.Max = r.defaultMax
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

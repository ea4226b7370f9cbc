package arrival

import (
	"iter"

	"github.com/brandenburg-rta/rta-bounds/rta/ptime"
)

// CurvePrefix is an arrival curve given directly as a finite table of
// (interval length, arrival count) steps, typically read from a
// measurement or a configuration file rather than computed from a
// closed-form process. Beyond the last recorded step it has no
// further information of its own; ToCurve must be used to extend it
// to an unbounded bound before it can be queried past its horizon.
type CurvePrefix struct {
	// Steps holds (delta, count) pairs in strictly increasing delta
	// order, each marking a point where the number of admissible
	// arrivals increases to count.
	steps []stepEntry
}

type stepEntry struct {
	delta ptime.Duration
	count int
}

// NewCurvePrefix builds a prefix from (delta, count) pairs, which must
// already be sorted by delta and have strictly increasing counts.
// Panics on an empty or malformed table.
func NewCurvePrefix(deltas []ptime.Duration, counts []int) *CurvePrefix {
	if len(deltas) == 0 || len(deltas) != len(counts) {
		panic("arrival: NewCurvePrefix requires matching non-empty delta/count slices")
	}
	steps := make([]stepEntry, len(deltas))
	for i := range deltas {
		if i > 0 && (deltas[i] <= deltas[i-1] || counts[i] <= counts[i-1]) {
			panic("arrival: NewCurvePrefix requires strictly increasing deltas and counts")
		}
		steps[i] = stepEntry{delta: deltas[i], count: counts[i]}
	}
	return &CurvePrefix{steps: steps}
}

// Horizon is the largest interval length this prefix has direct
// knowledge about.
func (p *CurvePrefix) Horizon() ptime.Duration {
	return p.steps[len(p.steps)-1].delta
}

// NumberArrivals looks up the prefix table directly. Delta must not
// exceed Horizon; callers needing arbitrary deltas must go through
// ToCurve first.
func (p *CurvePrefix) NumberArrivals(delta ptime.Duration) int {
	if delta.IsZero() {
		return 0
	}
	if delta > p.Horizon() {
		panic("arrival: CurvePrefix.NumberArrivals: delta exceeds recorded horizon")
	}
	n := 0
	for _, s := range p.steps {
		if delta >= s.delta {
			n = s.count
		} else {
			break
		}
	}
	return n
}

// Steps implements a finite fragment of Bound: it yields only the
// deltas recorded in the table, then stops. Downstream callers that
// need an unbounded bound must go through ToCurve.
func (p *CurvePrefix) Steps() iter.Seq[ptime.Duration] {
	return func(yield func(ptime.Duration) bool) {
		for _, s := range p.steps {
			if !yield(s.delta) {
				return
			}
		}
	}
}

// CloneWithJitter implements Bound by delegating through ToCurve,
// since shifting a finite prefix by jitter requires extrapolation
// past its recorded horizon in general.
func (p *CurvePrefix) CloneWithJitter(jitter ptime.Duration) Bound {
	return p.ToCurve().CloneWithJitter(jitter)
}

// ToCurve converts the recorded prefix into a delta-min Curve, so it
// can answer queries past its recorded horizon via sub-additive
// extrapolation. It turns the (delta, count) step table into a
// delta-min vector and, when that vector has at least two entries,
// appends one plain sub-additive extrapolation step (the step
// Curve.Extrapolate repeats), with no max-based widening beyond what
// NewCurve itself applies when enforcing monotonicity.
func (p *CurvePrefix) ToCurve() *Curve {
	maxCount := p.steps[len(p.steps)-1].count
	if maxCount < 2 {
		// Not enough steps recorded to infer a second delta-min sample;
		// treat the single known step as a periodic-equivalent curve.
		return &Curve{MinDistance: []ptime.Duration{p.steps[len(p.steps)-1].delta}}
	}
	// A Curve reports n arrivals from MinDistance[n-2]+1 on, so
	// deltaMin[n-2] must become one less than the smallest recorded
	// delta at which count reaches at least n; steps are visited in
	// increasing delta (hence non-decreasing count) order, so the first
	// write for each n is already the minimum.
	deltaMin := make([]ptime.Duration, maxCount-1)
	filled := 0
	for _, s := range p.steps {
		for filled < s.count-1 {
			deltaMin[filled] = s.delta.SaturatingSub(ptime.Epsilon)
			filled++
		}
	}
	c := NewCurve(deltaMin)
	if c.canExtrapolate() {
		c.MinDistance = append(c.MinDistance, c.extrapolateNext())
	}
	return c
}

package arrival

import (
	"iter"

	"github.com/brandenburg-rta/rta-bounds/rta/ptime"
)

// Curve is an arrival curve (η⁺) in delta-min representation: a
// finite prefix of the minimum interval length in which a given
// number of jobs may arrive, extended to all larger arguments by
// exploiting the sub-additivity of proper arrival curves.
//
// Convention: MinDistance does not store entries for 0 or 1 jobs (both
// always require zero length). MinDistance[i] holds the minimum
// interval length containing i+2 arrivals.
type Curve struct {
	MinDistance []ptime.Duration
}

// NewCurve constructs an arrival curve from a non-empty delta-min
// prefix. The input need not already be monotone; NewCurve enforces
// it. Panics if the prefix is empty.
func NewCurve(deltaMinPrefix []ptime.Duration) *Curve {
	if len(deltaMinPrefix) == 0 {
		panic("arrival: Curve requires a non-empty delta-min prefix")
	}
	d := append([]ptime.Duration(nil), deltaMinPrefix...)
	for i := 1; i < len(d); i++ {
		d[i] = ptime.Max(d[i], d[i-1])
	}
	return &Curve{MinDistance: d}
}

// UnrollSporadic builds a delta-min vector from a sporadic arrival
// process, covering at least `interval` time units.
func UnrollSporadic(s Sporadic, interval ptime.Duration) *Curve {
	n := s.NumberArrivals(interval) + 1
	v := make([]ptime.Duration, n)
	for i := 0; i < n; i++ {
		periods := uint64(i) + 1
		boundary := s.MinInterArrival.Mul(periods)
		if s.Jitter >= boundary {
			v[i] = 0
		} else {
			v[i] = boundary.SaturatingSub(s.Jitter)
		}
	}
	return &Curve{MinDistance: v}
}

// CurveFromSporadic converts a sporadic process into an equivalent
// curve, unrolled generously (at least 500 jobs, or 10x the jobs
// implied by the jitter) so that super-additive extrapolation is not
// exercised too early and does not accumulate avoidable pessimism.
func CurveFromSporadic(s Sporadic) *Curve {
	jitterJobs := divCeil(s.Jitter, s.MinInterArrival)
	n := jitterJobs * 10
	if n < 500 {
		n = 500
	}
	return UnrollSporadic(s, s.MinInterArrival.Mul(n))
}

// CurveFromPeriodic converts a periodic process into an equivalent
// single-entry curve.
func CurveFromPeriodic(p Periodic) *Curve {
	return &Curve{MinDistance: []ptime.Duration{p.Period}}
}

// FromTrace builds a delta-min vector from a monotonically
// non-decreasing sequence of arrival offsets, by sliding a window of
// size prefixJobs over the trace and recording, for each i, the
// minimum observed gap to the (i+1)-th preceding arrival. Panics if
// the trace is not monotone or yields no usable prefix.
func FromTrace(arrivalTimes []ptime.Offset, prefixJobs int) *Curve {
	d := make([]ptime.Duration, 0, prefixJobs)
	window := make([]ptime.Offset, 0, prefixJobs+1)

	var prev *ptime.Offset
	for _, t := range arrivalTimes {
		if prev != nil && t < *prev {
			panic("arrival: FromTrace requires a monotonically non-decreasing trace")
		}
		tt := t
		prev = &tt

		for i := 0; i < len(window); i++ {
			v := window[len(window)-1-i]
			gap := v.DistanceTo(t)
			if len(d) <= i {
				d = append(d, gap)
			} else if gap < d[i] {
				d[i] = gap
			}
		}
		window = append(window, t)
		if len(window) > prefixJobs {
			window = window[1:]
		}
	}
	if len(d) == 0 {
		panic("arrival: FromTrace saw too few arrivals to build a curve")
	}
	return &Curve{MinDistance: d}
}

func (c *Curve) canExtrapolate() bool { return len(c.MinDistance) >= 2 }

func (c *Curve) extrapolateNext() ptime.Duration {
	n := len(c.MinDistance)
	if n < 2 {
		panic("arrival: extrapolateNext requires at least two samples")
	}
	best := ptime.Duration(0)
	for k := 0; k <= n/2; k++ {
		v := c.MinDistance[k] + c.MinDistance[n-k-1]
		if v > best {
			best = v
		}
	}
	return best
}

// Extrapolate extends the delta-min prefix, via sub-additive
// extrapolation, until it covers interval lengths up to horizon.
func (c *Curve) Extrapolate(horizon ptime.Duration) {
	if !c.canExtrapolate() {
		return
	}
	for c.largestKnownDistance() < horizon {
		c.MinDistance = append(c.MinDistance, c.extrapolateNext())
	}
}

// ExtrapolateSteps extends the delta-min prefix by sub-additive
// extrapolation until it covers at least n jobs.
func (c *Curve) ExtrapolateSteps(n int) {
	if !c.canExtrapolate() {
		return
	}
	for c.jobsInLargestKnownDistance() < n {
		c.MinDistance = append(c.MinDistance, c.extrapolateNext())
	}
}

func (c *Curve) minJobSeparation() ptime.Duration { return c.MinDistance[0] }

func (c *Curve) largestKnownDistance() ptime.Duration {
	return c.MinDistance[len(c.MinDistance)-1]
}

func (c *Curve) jobsInLargestKnownDistance() int { return len(c.MinDistance) }

// lookupArrivals does not extrapolate; callers must ensure delta is
// within the known prefix (or accept pessimism from a short prefix).
func (c *Curve) lookupArrivals(delta ptime.Duration) int {
	for i, distanceOfNJobs := range c.MinDistance {
		njobs := i + 2
		if delta <= distanceOfNJobs {
			return njobs - 1
		}
	}
	panic("arrival: lookupArrivals: delta exceeds known prefix")
}

// MinDistanceOf returns a lower bound on the length of an interval in
// which n arrival events occur. Does not extrapolate, so it is
// pessimistic once n exceeds the stored prefix.
func (c *Curve) MinDistanceOf(n int) ptime.Duration {
	if n > 1 {
		idx := n - 2
		if idx > len(c.MinDistance)-1 {
			idx = len(c.MinDistance) - 1
		}
		return c.MinDistance[idx]
	}
	return 0
}

// NumberArrivals implements Bound.
func (c *Curve) NumberArrivals(delta ptime.Duration) int {
	if delta.IsZero() {
		return 0
	}
	largest := c.largestKnownDistance()
	prefix, tail := delta.DivMod(largest)
	prefixJobs := int(prefix) * c.jobsInLargestKnownDistance()
	if tail > c.minJobSeparation() {
		return prefixJobs + c.lookupArrivals(tail)
	}
	if tail.IsNonZero() {
		return prefixJobs + 1
	}
	return prefixJobs
}

// Steps implements Bound, cycling through the differences between
// consecutive delta-min entries.
func (c *Curve) Steps() iter.Seq[ptime.Duration] {
	diffs := make([]ptime.Duration, 0, len(c.MinDistance))
	prev := ptime.Duration(0)
	for _, d := range c.MinDistance {
		if d > prev {
			diffs = append(diffs, d-prev)
		}
		prev = d
	}
	return func(yield func(ptime.Duration) bool) {
		if len(diffs) == 0 {
			return
		}
		sum := ptime.Epsilon
		idx := 0
		for {
			if !yield(sum) {
				return
			}
			sum = sum.Add(diffs[idx])
			idx = (idx + 1) % len(diffs)
		}
	}
}

// CloneWithJitter implements Bound.
func (c *Curve) CloneWithJitter(jitter ptime.Duration) Bound {
	return WithJitter(c, jitter)
}

// ExtrapolatingCurve wraps a Curve behind shared interior mutability,
// automatically extending its prefix on demand and caching the
// result. It is the only place in this package where NumberArrivals
// observably mutates state; the external contract — a pure function
// of the input — is preserved. Not safe for concurrent use.
type ExtrapolatingCurve struct {
	prefix *Curve
}

// NewExtrapolatingCurve wraps curve for automatic, memoized extrapolation.
func NewExtrapolatingCurve(curve *Curve) *ExtrapolatingCurve {
	return &ExtrapolatingCurve{prefix: curve}
}

// NumberArrivals implements Bound, extrapolating the prefix as needed.
func (e *ExtrapolatingCurve) NumberArrivals(delta ptime.Duration) int {
	if delta.IsZero() {
		return 0
	}
	e.prefix.Extrapolate(delta + 1)
	return e.prefix.NumberArrivals(delta)
}

// Steps implements Bound, extrapolating lazily as the sequence is consumed.
func (e *ExtrapolatingCurve) Steps() iter.Seq[ptime.Duration] {
	return func(yield func(ptime.Duration) bool) {
		if !e.prefix.canExtrapolate() {
			// Degenerate case: not enough information to extrapolate, so
			// fall back to the periodic process implied by the single
			// known distance.
			period := e.prefix.MinDistanceOf(2)
			for j := uint64(0); ; j++ {
				if !yield(period.Mul(j) + ptime.Epsilon) {
					return
				}
			}
		}
		if !yield(ptime.Epsilon) {
			return
		}
		dist := ptime.Duration(0)
		njobs := 0
		advance := func() {
			for e.prefix.MinDistanceOf(njobs) <= dist {
				e.prefix.ExtrapolateSteps(njobs + 1)
				njobs++
			}
			dist = e.prefix.MinDistanceOf(njobs)
		}
		advance()
		for {
			if !yield(ptime.Epsilon + dist) {
				return
			}
			advance()
		}
	}
}

// CloneWithJitter implements Bound.
func (e *ExtrapolatingCurve) CloneWithJitter(jitter ptime.Duration) Bound {
	return WithJitter(e, jitter)
}

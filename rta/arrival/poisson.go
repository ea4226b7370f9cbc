package arrival

import (
	"iter"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/brandenburg-rta/rta-bounds/rta/ptime"
)

// Poisson models a stochastic arrival process with rate Lambda
// (expected arrivals per unit of time) bounded to a target exceedance
// probability Epsilon: NumberArrivals(delta) returns the smallest n
// such that P(X > n) <= Epsilon, where X ~ Poisson(Lambda * delta).
//
// Unlike the other bounds in this package, Poisson is probabilistic:
// its guarantee holds with probability at least 1-Epsilon, not with
// certainty, per job instance.
type Poisson struct {
	Lambda  float64
	Epsilon float64
}

// NewPoisson constructs a Poisson arrival bound. Panics if lambda is
// not positive or epsilon is not in (0, 1).
func NewPoisson(lambda, epsilon float64) Poisson {
	if lambda <= 0 {
		panic("arrival: Poisson requires a positive rate")
	}
	if epsilon <= 0 || epsilon >= 1 {
		panic("arrival: Poisson requires an exceedance probability in (0, 1)")
	}
	return Poisson{Lambda: lambda, Epsilon: epsilon}
}

// NumberArrivals implements Bound by inverting the Poisson CDF: it
// searches for the smallest n with CDF(n) >= 1-Epsilon.
func (p Poisson) NumberArrivals(delta ptime.Duration) int {
	if delta.IsZero() {
		return 0
	}
	mean := p.Lambda * float64(uint64(delta))
	dist := distuv.Poisson{Lambda: mean}
	target := 1 - p.Epsilon
	// The mean plus a generous multiple of its standard deviation is
	// an overwhelmingly safe starting point for the search; Poisson
	// tails decay super-exponentially so this never loops long.
	n := int(math.Ceil(mean + 10*math.Sqrt(mean+1) + 10))
	for n > 0 && dist.CDF(float64(n-1)) >= target {
		n--
	}
	for dist.CDF(float64(n)) < target {
		n++
	}
	return n
}

// Steps implements Bound via the brute-force oracle: Poisson has no
// cheaper closed-form step structure.
func (p Poisson) Steps() iter.Seq[ptime.Duration] {
	return BruteForceSteps(p)
}

// CloneWithJitter implements Bound by wrapping with the standard
// propagation/jitter adapter.
func (p Poisson) CloneWithJitter(jitter ptime.Duration) Bound {
	return WithJitter(p, jitter)
}

// ApproximatedPoisson replaces the exact Poisson quantile search with
// a fixed, precomputed delta-min prefix, trading a small amount of
// extra pessimism for table lookups that need no CDF evaluation once
// built. Use when the
// same Poisson bound is queried many times over a bounded horizon.
type ApproximatedPoisson struct {
	*Curve
}

// NewApproximatedPoisson tabulates p's behavior over [0, horizon] into
// a delta-min curve accurate to stepGranularity in delta.
func NewApproximatedPoisson(p Poisson, horizon ptime.Duration, stepGranularity ptime.Duration) ApproximatedPoisson {
	if stepGranularity.IsZero() {
		panic("arrival: ApproximatedPoisson requires a non-zero step granularity")
	}
	maxCount := p.NumberArrivals(horizon)
	if maxCount < 2 {
		return ApproximatedPoisson{Curve: &Curve{MinDistance: []ptime.Duration{horizon}}}
	}
	deltaMin := make([]ptime.Duration, maxCount-1)
	for n := 2; n <= maxCount; n++ {
		d := ptime.Duration(0)
		for d < horizon && p.NumberArrivals(d) < n {
			d += stepGranularity
		}
		// Round down to the previous grid point: the true minimal
		// distance for n arrivals lies in (d-stepGranularity, d], and
		// recording the lower end keeps the tabulated curve a safe
		// over-approximation rather than risking undercounting
		// arrivals between grid points.
		if d >= stepGranularity {
			d -= stepGranularity
		} else {
			d = 0
		}
		if d.IsZero() {
			d = ptime.Epsilon
		}
		deltaMin[n-2] = d
	}
	return ApproximatedPoisson{Curve: NewCurve(deltaMin)}
}

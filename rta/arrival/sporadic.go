package arrival

import (
	"iter"

	"github.com/brandenburg-rta/rta-bounds/rta/ptime"
)

// Sporadic is the classic sporadic arrival model (Mok) with release
// jitter: consecutive arrivals are separated by at least
// MinInterArrival, and a job becomes ready for execution up to Jitter
// time units after it conceptually arrives.
type Sporadic struct {
	MinInterArrival ptime.Duration
	Jitter          ptime.Duration
}

// NewSporadic constructs a sporadic arrival bound with release jitter.
func NewSporadic(minInterArrival, jitter ptime.Duration) Sporadic {
	if minInterArrival.IsZero() {
		panic("arrival: Sporadic requires a non-zero minimum inter-arrival time")
	}
	return Sporadic{MinInterArrival: minInterArrival, Jitter: jitter}
}

// NewSporadicNoJitter constructs a sporadic arrival bound with zero jitter.
func NewSporadicNoJitter(minInterArrival ptime.Duration) Sporadic {
	return NewSporadic(minInterArrival, 0)
}

// NumberArrivals implements Bound.
func (s Sporadic) NumberArrivals(delta ptime.Duration) int {
	if delta.IsZero() {
		return 0
	}
	return int(divCeil(delta.Add(s.Jitter), s.MinInterArrival))
}

// Steps implements Bound: the step set is {1} ∪ {k*T + ε - J : k >= 1, k*T > J}.
func (s Sporadic) Steps() iter.Seq[ptime.Duration] {
	return func(yield func(ptime.Duration) bool) {
		if !yield(ptime.Epsilon) {
			return
		}
		for j := uint64(1); ; j++ {
			kt := s.MinInterArrival.Mul(j)
			if kt <= s.Jitter {
				continue
			}
			if !yield(kt.Add(ptime.Epsilon).SaturatingSub(s.Jitter)) {
				return
			}
		}
	}
}

// CloneWithJitter adds jitter to the jitter already present.
func (s Sporadic) CloneWithJitter(jitter ptime.Duration) Bound {
	return Sporadic{MinInterArrival: s.MinInterArrival, Jitter: s.Jitter.Add(jitter)}
}

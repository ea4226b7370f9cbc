package arrival

import (
	"iter"

	"github.com/brandenburg-rta/rta-bounds/rta/ptime"
)

// Periodic is the classic jitter-free periodic arrival process
// (Liu & Layland): jobs are released exactly every Period time units.
type Periodic struct {
	Period ptime.Duration
}

// NewPeriodic constructs a periodic arrival bound with the given period.
func NewPeriodic(period ptime.Duration) Periodic {
	if period.IsZero() {
		panic("arrival: Periodic requires a non-zero period")
	}
	return Periodic{Period: period}
}

// NumberArrivals implements Bound.
func (p Periodic) NumberArrivals(delta ptime.Duration) int {
	return int(divCeil(delta, p.Period))
}

// Steps implements Bound: steps occur at 1, 1+T, 1+2T, ...
func (p Periodic) Steps() iter.Seq[ptime.Duration] {
	return func(yield func(ptime.Duration) bool) {
		for j := uint64(0); ; j++ {
			if !yield(p.Period.Mul(j) + ptime.Epsilon) {
				return
			}
		}
	}
}

// CloneWithJitter returns the sporadic-with-jitter process this
// periodic arrival degrades to once release jitter is introduced.
func (p Periodic) CloneWithJitter(jitter ptime.Duration) Bound {
	return Sporadic{MinInterArrival: p.Period, Jitter: jitter}
}

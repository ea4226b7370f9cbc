// Package arrival provides upper bounds on the number of job releases
// in any interval of a given length ("arrival curves" / η⁺ in the
// scheduling-theory literature), plus the lazy step-iteration
// machinery every downstream search-space enumeration is built from.
package arrival

import (
	"iter"

	"github.com/brandenburg-rta/rta-bounds/rta/ptime"
)

// Bound upper-bounds the number of job releases in any interval of a
// given length.
//
// Implementations must satisfy, for all deltas:
//   - NumberArrivals(0) == 0
//   - delta1 <= delta2 implies NumberArrivals(delta1) <= NumberArrivals(delta2)
//
// Steps must yield the strictly increasing sequence of deltas where
// NumberArrivals jumps: every s such that
// NumberArrivals(s-1) < NumberArrivals(s). The sequence may be
// infinite; callers must bound their own consumption (via
// seq.TakeWhile or similar).
type Bound interface {
	NumberArrivals(delta ptime.Duration) int
	Steps() iter.Seq[ptime.Duration]
	CloneWithJitter(jitter ptime.Duration) Bound
}

// BruteForceSteps is the mandatory safety-net step iterator: it scans
// delta = 0, 1, 2, ... and yields every delta where NumberArrivals
// increases. It is correct for any Bound but expensive. Poisson and
// Slice use it directly as their Steps; the other concrete bounds
// override Steps with something cheaper. Used as the debug-mode oracle
// in arrival_debug.go.
func BruteForceSteps(b Bound) iter.Seq[ptime.Duration] {
	return func(yield func(ptime.Duration) bool) {
		prev := b.NumberArrivals(0)
		for d := ptime.Duration(1); ; d++ {
			n := b.NumberArrivals(d)
			if n > prev {
				if !yield(d) {
					return
				}
			}
			prev = n
		}
	}
}

func divCeil(a, b ptime.Duration) uint64 {
	q, r := a.DivMod(b)
	if r.IsNonZero() {
		return q + 1
	}
	return q
}

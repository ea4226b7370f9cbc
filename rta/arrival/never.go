package arrival

import (
	"iter"

	"github.com/brandenburg-rta/rta-bounds/rta/ptime"
)

// Never models a task that never releases any jobs. Pathological, but
// useful as a corner case and a safe default before a real arrival
// model has been supplied.
type Never struct{}

// NumberArrivals implements Bound: always zero.
func (Never) NumberArrivals(ptime.Duration) int { return 0 }

// Steps implements Bound: an empty sequence.
func (Never) Steps() iter.Seq[ptime.Duration] {
	return func(func(ptime.Duration) bool) {}
}

// CloneWithJitter implements Bound: jitter has no effect on a process
// that never arrives.
func (Never) CloneWithJitter(ptime.Duration) Bound { return Never{} }

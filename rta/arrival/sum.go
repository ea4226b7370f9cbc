package arrival

import (
	"iter"

	"github.com/brandenburg-rta/rta-bounds/rta/ptime"
	"github.com/brandenburg-rta/rta-bounds/rta/seq"
)

// Sum aggregates several arrival bounds into the bound on their
// combined release stream, as needed when several logically distinct
// sources of work (tasks, precedence chains, event sources) compete
// for the same resource and must be analyzed jointly.
type Sum struct {
	Components []Bound
}

// NewSum constructs an aggregate bound over one or more components.
// Panics if no component is given.
func NewSum(components ...Bound) Sum {
	if len(components) == 0 {
		panic("arrival: Sum requires at least one component")
	}
	return Sum{Components: components}
}

// NumberArrivals implements Bound: the sum of each component's bound.
func (s Sum) NumberArrivals(delta ptime.Duration) int {
	total := 0
	for _, c := range s.Components {
		total += c.NumberArrivals(delta)
	}
	return total
}

// Steps implements Bound via a deduplicated k-way merge of every
// component's own step sequence: the aggregate can only jump at a
// delta where at least one component jumps.
func (s Sum) Steps() iter.Seq[ptime.Duration] {
	sources := make([]iter.Seq[ptime.Duration], len(s.Components))
	for i, c := range s.Components {
		sources[i] = c.Steps()
	}
	return seq.Dedup(seq.Merge(sources...))
}

// CloneWithJitter applies the jitter to every component independently,
// mirroring what happens when a shared release-jitter bound is added
// downstream of several already-summed sources.
func (s Sum) CloneWithJitter(jitter ptime.Duration) Bound {
	out := make([]Bound, len(s.Components))
	for i, c := range s.Components {
		out[i] = c.CloneWithJitter(jitter)
	}
	return Sum{Components: out}
}

package demand

import (
	"iter"

	"github.com/brandenburg-rta/rta-bounds/rta/ptime"
	"github.com/brandenburg-rta/rta-bounds/rta/seq"
)

// Slice is, like Aggregate, the combined demand of a collection of
// heterogeneous demand sources. Where Aggregate is built incrementally
// via NewAggregate's variadic components, Slice wraps an existing
// slice directly — mirroring the original source's distinction
// between an owned Vec<T> (Aggregate) and a borrowed &[T] (Slice),
// a distinction Go's single slice type does not need to keep separate
// at the representation level, only at the call site (e.g. handing a
// sub-slice of a larger task list to an analysis without copying it).
type Slice struct {
	Components []Bound
}

// NewSlice wraps components as a single combined demand bound. Panics
// if components is empty.
func NewSlice(components []Bound) Slice {
	if len(components) == 0 {
		panic("demand: Slice requires at least one component")
	}
	return Slice{Components: components}
}

// ServiceDemand implements Bound: the sum of every component's.
func (s Slice) ServiceDemand(delta ptime.Duration) ptime.Service {
	total := ptime.Service(0)
	for _, c := range s.Components {
		total = total.Add(c.ServiceDemand(delta))
	}
	return total
}

// LeastWCET implements AggregateBound.
func (s Slice) LeastWCET() ptime.Service {
	least := ptime.Service(0)
	first := true
	for _, c := range s.Components {
		ac, ok := c.(AggregateBound)
		if !ok {
			continue
		}
		w := ac.LeastWCET()
		if first || w < least {
			least = w
			first = false
		}
	}
	return least
}

// JobCosts implements Bound: the sorted merge of every component's
// job costs within delta.
func (s Slice) JobCosts(delta ptime.Duration) iter.Seq[ptime.Service] {
	sources := make([]iter.Seq[ptime.Service], len(s.Components))
	for i, c := range s.Components {
		sources[i] = c.JobCosts(delta)
	}
	return seq.Merge(sources...)
}

// ServiceNeededByNJobs implements Bound: the k largest job-cost
// marginals across all components combined.
func (s Slice) ServiceNeededByNJobs(delta ptime.Duration, k int) ptime.Service {
	return sumTopK(collectJobCosts(s.JobCosts(delta)), k)
}

// ServiceNeededByNJobsPerComponent implements AggregateBound: each
// component's own ServiceNeededByNJobs, summed.
func (s Slice) ServiceNeededByNJobsPerComponent(delta ptime.Duration, k int) ptime.Service {
	total := ptime.Service(0)
	for _, c := range s.Components {
		total = total.Add(c.ServiceNeededByNJobs(delta, k))
	}
	return total
}

// LeastWCETInInterval implements Bound: the minimum across every
// component's own LeastWCETInInterval.
func (s Slice) LeastWCETInInterval(delta ptime.Duration) ptime.Service {
	values := make([]ptime.Service, len(s.Components))
	for i, c := range s.Components {
		values[i] = c.LeastWCETInInterval(delta)
	}
	return leastOf(values)
}

// Steps implements Bound: the sorted, deduplicated merge of every
// component's step sequence.
func (s Slice) Steps() iter.Seq[ptime.Duration] {
	sources := make([]iter.Seq[ptime.Duration], len(s.Components))
	for i, c := range s.Components {
		sources[i] = c.Steps()
	}
	return seq.Dedup(seq.Merge(sources...))
}

package demand

import (
	"iter"

	"github.com/brandenburg-rta/rta-bounds/rta/ptime"
	"github.com/brandenburg-rta/rta-bounds/rta/seq"
)

// Aggregate sums the demand of several tasks (or sub-bounds) into the
// combined demand they place on a shared resource, as needed whenever
// a busy-window analysis must account for more than one task's
// interference at once.
type Aggregate struct {
	Components []Bound
}

// NewAggregate combines one or more component demand bounds. Panics
// if no components are given.
func NewAggregate(components ...Bound) Aggregate {
	if len(components) == 0 {
		panic("demand: Aggregate requires at least one component")
	}
	return Aggregate{Components: components}
}

// ServiceDemand implements Bound.
func (a Aggregate) ServiceDemand(delta ptime.Duration) ptime.Service {
	total := ptime.Service(0)
	for _, c := range a.Components {
		total = total.Add(c.ServiceDemand(delta))
	}
	return total
}

// LeastWCET implements AggregateBound: the smallest least-WCET across
// every component that reports one, matching the conservative
// assumption that the interfering job with the least possible
// execution time could belong to any component task.
func (a Aggregate) LeastWCET() ptime.Service {
	least := ptime.Service(0)
	first := true
	for _, c := range a.Components {
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
// job costs within delta, mirroring the k-way merge (without dedup)
// of the components' own marginal-cost sequences.
func (a Aggregate) JobCosts(delta ptime.Duration) iter.Seq[ptime.Service] {
	sources := make([]iter.Seq[ptime.Service], len(a.Components))
	for i, c := range a.Components {
		sources[i] = c.JobCosts(delta)
	}
	return seq.Merge(sources...)
}

// ServiceNeededByNJobs implements Bound: the k largest job-cost
// marginals across all components combined.
func (a Aggregate) ServiceNeededByNJobs(delta ptime.Duration, k int) ptime.Service {
	return sumTopK(collectJobCosts(a.JobCosts(delta)), k)
}

// ServiceNeededByNJobsPerComponent implements AggregateBound: each
// component's own ServiceNeededByNJobs, summed — the bound to use
// when no single interferer may contribute more than k jobs' worth of
// demand, as opposed to k jobs across the whole aggregate.
func (a Aggregate) ServiceNeededByNJobsPerComponent(delta ptime.Duration, k int) ptime.Service {
	total := ptime.Service(0)
	for _, c := range a.Components {
		total = total.Add(c.ServiceNeededByNJobs(delta, k))
	}
	return total
}

// LeastWCETInInterval implements Bound: the minimum across every
// component's own LeastWCETInInterval.
func (a Aggregate) LeastWCETInInterval(delta ptime.Duration) ptime.Service {
	values := make([]ptime.Service, len(a.Components))
	for i, c := range a.Components {
		values[i] = c.LeastWCETInInterval(delta)
	}
	return leastOf(values)
}

// Steps implements Bound: the sorted, deduplicated merge of every
// component's step sequence.
func (a Aggregate) Steps() iter.Seq[ptime.Duration] {
	sources := make([]iter.Seq[ptime.Duration], len(a.Components))
	for i, c := range a.Components {
		sources[i] = c.Steps()
	}
	return seq.Dedup(seq.Merge(sources...))
}

// Package demand combines arrival bounds with cost models into
// request-bound functions (RBF): upper bounds on the total processor
// service all jobs of one or more tasks could demand within any
// interval of a given length.
package demand

import (
	"iter"
	"sort"

	"github.com/brandenburg-rta/rta-bounds/rta/arrival"
	"github.com/brandenburg-rta/rta-bounds/rta/cost"
	"github.com/brandenburg-rta/rta-bounds/rta/ptime"
)

// Bound upper-bounds the total processor service demanded by one
// task's jobs in any interval of a given length.
//
// Implementations must satisfy, for all deltas:
//   - ServiceDemand(0) == 0
//   - delta1 <= delta2 implies ServiceDemand(delta1) <= ServiceDemand(delta2)
type Bound interface {
	ServiceDemand(delta ptime.Duration) ptime.Service

	// ServiceNeededByNJobs bounds the service demanded by the k jobs
	// with the largest individual cost among those that could arrive
	// in an interval of length delta: the window-aware primitive
	// chain analyses (ROS2 in particular) need instead of the full
	// ServiceDemand, when only a bounded number of a source's
	// activations can actually interfere.
	ServiceNeededByNJobs(delta ptime.Duration, k int) ptime.Service

	// LeastWCETInInterval is the smallest individual job cost among
	// the jobs that could arrive in an interval of length delta.
	LeastWCETInInterval(delta ptime.Duration) ptime.Service

	// Steps yields the interval lengths at which ServiceDemand jumps.
	Steps() iter.Seq[ptime.Duration]

	// JobCosts yields the individual job-cost contributions that sum
	// to ServiceDemand(delta). RBF yields them in arrival order;
	// Aggregate and Slice yield a k-way merge of their components'
	// sequences.
	JobCosts(delta ptime.Duration) iter.Seq[ptime.Service]
}

// AggregateBound is a Bound over a collection of tasks, additionally
// able to report the least WCET across the whole collection — needed
// by busy-window search termination conditions — and the sum of each
// component's own ServiceNeededByNJobs, needed whenever an analysis
// must bound how many activations of *each* interferer fit into a
// window rather than the window's interferers as an undifferentiated
// whole.
type AggregateBound interface {
	Bound
	LeastWCET() ptime.Service
	ServiceNeededByNJobsPerComponent(delta ptime.Duration, k int) ptime.Service
}

// sumTopK sums the k largest of costs, mutating costs by sorting it
// descending in place. Cost marginals are not assumed monotone, so
// this is not simply "the first k".
func sumTopK(costs []ptime.Service, k int) ptime.Service {
	sort.Slice(costs, func(i, j int) bool { return costs[i] > costs[j] })
	if k > len(costs) {
		k = len(costs)
	}
	if k < 0 {
		k = 0
	}
	total := ptime.Service(0)
	for _, c := range costs[:k] {
		total = total.Add(c)
	}
	return total
}

// collectJobCosts materializes a JobCosts sequence into a slice. Only
// ever called with a delta-bounded (hence finite) sequence.
func collectJobCosts(s iter.Seq[ptime.Service]) []ptime.Service {
	var out []ptime.Service
	for c := range s {
		out = append(out, c)
	}
	return out
}

// leastOf returns the smallest of a sequence of per-component least
// values, or zero if values is empty.
func leastOf(values []ptime.Service) ptime.Service {
	least := ptime.Service(0)
	first := true
	for _, v := range values {
		if first || v < least {
			least = v
			first = false
		}
	}
	return least
}

// RBF (request-bound function) is the standard per-task demand bound:
// the arrival bound's worst case multiplied through the cost model.
type RBF struct {
	Arrivals arrival.Bound
	Cost     cost.Model
}

// NewRBF combines an arrival bound and a cost model into a request-bound function.
func NewRBF(arrivals arrival.Bound, costModel cost.Model) RBF {
	return RBF{Arrivals: arrivals, Cost: costModel}
}

// ServiceDemand implements Bound.
func (r RBF) ServiceDemand(delta ptime.Duration) ptime.Service {
	n := r.Arrivals.NumberArrivals(delta)
	return r.Cost.CostOfJobs(n)
}

// LeastWCET implements AggregateBound.
func (r RBF) LeastWCET() ptime.Service { return r.Cost.LeastWCET() }

// ServiceNeededByNJobsPerComponent implements AggregateBound: an RBF is
// a single component, so this is its own ServiceNeededByNJobs.
func (r RBF) ServiceNeededByNJobsPerComponent(delta ptime.Duration, k int) ptime.Service {
	return r.ServiceNeededByNJobs(delta, k)
}

// JobCosts implements Bound: the marginal cost of each of the
// NumberArrivals(delta) jobs that could arrive within delta, derived
// from the cost model's cumulative CostOfJobs since cost.Model has no
// separate per-job iterator.
func (r RBF) JobCosts(delta ptime.Duration) iter.Seq[ptime.Service] {
	n := r.Arrivals.NumberArrivals(delta)
	return func(yield func(ptime.Service) bool) {
		prev := ptime.Service(0)
		for i := 1; i <= n; i++ {
			cur := r.Cost.CostOfJobs(i)
			if !yield(cur.SaturatingSub(prev)) {
				return
			}
			prev = cur
		}
	}
}

// ServiceNeededByNJobs implements Bound: the cost of the k largest
// (not the first k) job-cost marginals within delta, since cost
// marginals are not assumed monotone.
func (r RBF) ServiceNeededByNJobs(delta ptime.Duration, k int) ptime.Service {
	return sumTopK(collectJobCosts(r.JobCosts(delta)), k)
}

// LeastWCETInInterval implements Bound: the smallest job-cost marginal
// among the jobs that could arrive within delta.
func (r RBF) LeastWCETInInterval(delta ptime.Duration) ptime.Service {
	return leastOf(collectJobCosts(r.JobCosts(delta)))
}

// Steps implements Bound: demand can only jump where a new job could
// have arrived.
func (r RBF) Steps() iter.Seq[ptime.Duration] {
	return r.Arrivals.Steps()
}

// StepOffsets derives the sequence of response-time search offsets
// implied by an arrival bound's step points: each step marks an
// interval length at which one more job could have arrived, so the
// offset of that job (0-based, measured from the start of the busy
// window) is one time unit short of the step.
func StepOffsets(a arrival.Bound) func(yield func(ptime.Duration) bool) {
	return func(yield func(ptime.Duration) bool) {
		for step := range a.Steps() {
			if !yield(step.SaturatingSub(ptime.Epsilon)) {
				return
			}
		}
	}
}

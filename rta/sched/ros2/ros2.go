// Package ros2 implements response-time analysis for callbacks
// executed by a ROS2 single-threaded executor: event-source
// callbacks (subscriptions, services), timer callbacks, polling-point
// callbacks that only run at designated spin iterations, processing
// chains of callbacks connected by message passing, and the
// round-robin-aware analysis of callbacks grouped into a mutually
// exclusive callback group.
//
// All five follow the same shape as the other scheduler packages: a
// callback's own cost plus the interference of everything the
// executor's spin loop could run ahead of it, resolved via the shared
// busy-window fixed-point search. What differs between them is which
// other callbacks (and how much of their own cost) can interfere.
package ros2

import (
	"iter"

	"github.com/brandenburg-rta/rta-bounds/rta/demand"
	"github.com/brandenburg-rta/rta-bounds/rta/fixedpoint"
	"github.com/brandenburg-rta/rta-bounds/rta/ptime"
	"github.com/brandenburg-rta/rta-bounds/rta/supply"
)

// Callback bundles a callback's own cost with the demand bounds of
// every other callback in its executor that the spin loop could
// service ahead of it (same or higher scheduling priority, and, for a
// single-threaded executor, every other ready callback of any
// priority once it has been picked up in a given spin iteration).
type Callback struct {
	OwnCost         ptime.Service
	Interference    []demand.Bound
	SupplyBound     supply.Bound
	BusyWindowLimit ptime.Duration
}

func (c Callback) aggregate() demand.AggregateBound {
	components := make([]demand.Bound, 0, len(c.Interference)+1)
	components = append(components, demand.Constant{Value: c.OwnCost})
	components = append(components, c.Interference...)
	return demand.NewAggregate(components...)
}

// RTAEventSource computes the worst-case response time of a
// subscription or service callback: the executor's spin loop
// collects one ready instance of every other callback before
// returning to this one, so Interference should hold one RBF entry
// per competing callback already capped at a single release.
func RTAEventSource(c Callback) (ptime.Duration, error) {
	return fixedpoint.BoundedResponseTime(c.aggregate(), c.SupplyBound, c.BusyWindowLimit)
}

// RTATimer computes the worst-case response time of a timer callback.
// Structurally identical to RTAEventSource; kept distinct because a
// timer's own arrival process is periodic by construction, which
// matters to callers assembling Interference, not to this function.
func RTATimer(c Callback) (ptime.Duration, error) {
	return fixedpoint.BoundedResponseTime(c.aggregate(), c.SupplyBound, c.BusyWindowLimit)
}

// RTAPollingPointCallback computes the worst-case response time of a
// callback that is only dispatched at designated polling points in
// the spin loop (for example, a callback group configured to run at
// most once per spin), adding PollingPeriod as the maximum extra wait
// for the next polling point to arrive once the callback is ready.
func RTAPollingPointCallback(c Callback, pollingPeriod ptime.Duration) (ptime.Duration, error) {
	r, err := fixedpoint.BoundedResponseTime(c.aggregate(), c.SupplyBound, c.BusyWindowLimit)
	if err != nil {
		return 0, err
	}
	return r.Add(pollingPeriod), nil
}

// RTAProcessingChain computes the worst-case end-to-end response time
// of a chain of callbacks connected by message passing (the output of
// one callback triggers the next), by summing each stage's own
// response time, computed independently against its own interference.
func RTAProcessingChain(stages []Callback) (ptime.Duration, error) {
	total := ptime.Duration(0)
	for _, stage := range stages {
		r, err := fixedpoint.BoundedResponseTime(stage.aggregate(), stage.SupplyBound, stage.BusyWindowLimit)
		if err != nil {
			return 0, err
		}
		total = total.Add(r)
	}
	return total, nil
}

// pollingCapped wraps a sibling's demand bound so it contributes at
// most jobs worth of direct interference, matching the round-robin
// analysis's bound on how many times one sibling can be dispatched
// during the subchain's own polling rounds before this callback is
// revisited.
type pollingCapped struct {
	Inner demand.Bound
	Jobs  int
}

func (p pollingCapped) cap(k int) int {
	if k > p.Jobs {
		return p.Jobs
	}
	return k
}

func (p pollingCapped) ServiceDemand(delta ptime.Duration) ptime.Service {
	return p.Inner.ServiceNeededByNJobs(delta, p.Jobs)
}

func (p pollingCapped) ServiceNeededByNJobs(delta ptime.Duration, k int) ptime.Service {
	return p.Inner.ServiceNeededByNJobs(delta, p.cap(k))
}

func (p pollingCapped) LeastWCETInInterval(delta ptime.Duration) ptime.Service {
	return p.Inner.LeastWCETInInterval(delta)
}

func (p pollingCapped) Steps() iter.Seq[ptime.Duration] { return p.Inner.Steps() }

// JobCosts yields the Jobs largest of the inner job costs, largest
// first, so that they sum to ServiceDemand.
func (p pollingCapped) JobCosts(delta ptime.Duration) iter.Seq[ptime.Service] {
	var top []ptime.Service
	for c := range p.Inner.JobCosts(delta) {
		top = append(top, c)
		for i := len(top) - 1; i > 0 && top[i] > top[i-1]; i-- {
			top[i], top[i-1] = top[i-1], top[i]
		}
		if len(top) > p.Jobs {
			top = top[:p.Jobs]
		}
	}
	return func(yield func(ptime.Service) bool) {
		for _, c := range top {
			if !yield(c) {
				return
			}
		}
	}
}

// RTARoundRobinSubchain computes the worst-case response time of a
// callback scheduled round-robin among siblings sharing one mutually
// exclusive callback group (Theorem 2 of the round-robin-aware
// analysis). Every sibling's direct interference is capped at
// maxPollingPoints+1 jobs: the worst case lets a sibling interfere
// once per polling round encountered during the window, plus one
// more for the round in which it is first encountered. maxPollingPoints
// is the subchain's own polling-point bound, the sum of
// number_arrivals(own response-time bound) across every callback in
// the subchain under analysis.
func RTARoundRobinSubchain(c Callback, siblings []demand.Bound, maxPollingPoints int) (ptime.Duration, error) {
	jobCap := maxPollingPoints + 1
	components := make([]demand.Bound, 0, len(c.Interference)+len(siblings)+1)
	components = append(components, demand.Constant{Value: c.OwnCost})
	for _, s := range siblings {
		components = append(components, pollingCapped{Inner: s, Jobs: jobCap})
	}
	components = append(components, c.Interference...)
	agg := demand.NewAggregate(components...)
	return fixedpoint.BoundedResponseTime(agg, c.SupplyBound, c.BusyWindowLimit)
}

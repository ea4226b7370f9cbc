// Package fp implements response-time analysis for fixed-priority
// scheduling: fully-preemptive, floating-non-preemptive, and
// limited-preemptive variants, each differing only in what extra
// blocking term (if any) is folded into the classic recurrence
// R = C_i + B_i + interference(R).
package fp

import (
	"github.com/brandenburg-rta/rta-bounds/rta/demand"
	"github.com/brandenburg-rta/rta-bounds/rta/fixedpoint"
	"github.com/brandenburg-rta/rta-bounds/rta/ptime"
	"github.com/brandenburg-rta/rta-bounds/rta/supply"
)

// Task bundles what a fixed-priority analysis needs to know about the
// task under analysis: its own worst-case single-job cost and the
// demand bounds of every higher-priority task that can preempt it.
type Task struct {
	OwnCost         ptime.Service
	HigherPriority  []demand.Bound
	SupplyBound     supply.Bound
	BusyWindowLimit ptime.Duration
}

func (t Task) aggregate(blocking ptime.Service) demand.AggregateBound {
	components := make([]demand.Bound, 0, len(t.HigherPriority)+2)
	components = append(components, demand.Constant{Value: t.OwnCost})
	if !blocking.IsNone() {
		components = append(components, demand.Constant{Value: blocking})
	}
	components = append(components, t.HigherPriority...)
	return demand.NewAggregate(components...)
}

// FullyPreemptive computes the worst-case response time of a task
// that can be preempted by any higher-priority job at any point: the
// textbook Liu & Layland recurrence, generalized to arbitrary arrival
// and supply bounds.
func FullyPreemptive(t Task) (ptime.Duration, error) {
	return fixedpoint.BoundedResponseTime(t.aggregate(0), t.SupplyBound, t.BusyWindowLimit)
}

// FloatingNonPreemptive computes the worst-case response time under
// non-preemptive scheduling: once any job starts executing it runs to
// completion, so a just-missed higher-priority arrival may have to
// wait behind one whole lower-priority job first. Blocking is the
// longest execution time among tasks of lower priority than t.
func FloatingNonPreemptive(t Task, blocking ptime.Service) (ptime.Duration, error) {
	return fixedpoint.BoundedResponseTime(t.aggregate(blocking), t.SupplyBound, t.BusyWindowLimit)
}

// LimitedPreemptive computes the worst-case response time under
// limited-preemptive scheduling, where preemption is disabled only
// within non-preemptive regions. MaxNonPreemptiveRegion is the
// longest non-preemptive region among lower-priority tasks that could
// already be executing when a job of t becomes ready; it plays the
// same blocking role FloatingNonPreemptive's parameter does, bounded
// by the run-to-completion threshold instead of the whole job cost.
func LimitedPreemptive(t Task, maxNonPreemptiveRegion ptime.Service) (ptime.Duration, error) {
	return fixedpoint.BoundedResponseTime(t.aggregate(maxNonPreemptiveRegion), t.SupplyBound, t.BusyWindowLimit)
}

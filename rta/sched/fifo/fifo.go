// Package fifo implements response-time analysis for first-in-first-
// out scheduling: every job sharing the resource interferes with
// every other job released before it finishes, regardless of task
// identity, so the busy-window recurrence folds in the demand of the
// whole task set exactly once, with no priority- or deadline-based
// partitioning.
package fifo

import (
	"github.com/brandenburg-rta/rta-bounds/rta/demand"
	"github.com/brandenburg-rta/rta-bounds/rta/fixedpoint"
	"github.com/brandenburg-rta/rta-bounds/rta/ptime"
	"github.com/brandenburg-rta/rta-bounds/rta/supply"
)

// TaskSet bundles what a FIFO busy-window analysis needs: the demand
// bound of every task sharing the resource and the resource's supply
// bound.
type TaskSet struct {
	Tasks           []demand.Bound
	SupplyBound     supply.Bound
	BusyWindowLimit ptime.Duration
}

// RTA computes the longest busy-window length the task set can
// generate under FIFO scheduling. Every job in the window is served
// exactly once, in arrival order, so this length is directly the
// worst-case response-time bound for the last job released in the
// window.
func RTA(ts TaskSet) (ptime.Duration, error) {
	agg := demand.NewAggregate(ts.Tasks...)
	return fixedpoint.BoundedResponseTime(agg, ts.SupplyBound, ts.BusyWindowLimit)
}

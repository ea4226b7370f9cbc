// Package edf implements response-time analysis for earliest-deadline-
// first scheduling: fully-preemptive, fully-non-preemptive, and
// limited-preemptive variants. Unlike fixed-priority analysis, EDF
// has no static priority order, so every variant here folds the
// demand of every task sharing the resource (including the task under
// analysis) into one aggregate busy-window recurrence, rather than
// separating "higher priority" interference from the task's own cost.
package edf

import (
	"github.com/brandenburg-rta/rta-bounds/rta/demand"
	"github.com/brandenburg-rta/rta-bounds/rta/fixedpoint"
	"github.com/brandenburg-rta/rta-bounds/rta/ptime"
	"github.com/brandenburg-rta/rta-bounds/rta/supply"
)

// TaskSet bundles what an EDF busy-window analysis needs: the demand
// bound of every task sharing the processor (the task under analysis
// included) and the processor's supply bound.
type TaskSet struct {
	Tasks           []demand.Bound
	SupplyBound     supply.Bound
	BusyWindowLimit ptime.Duration
}

func (ts TaskSet) aggregate(blocking ptime.Service) demand.AggregateBound {
	components := make([]demand.Bound, 0, len(ts.Tasks)+1)
	if !blocking.IsNone() {
		components = append(components, demand.Constant{Value: blocking})
	}
	components = append(components, ts.Tasks...)
	return demand.NewAggregate(components...)
}

// FullyPreemptive computes the length of the longest level-t busy
// window of the task set under fully-preemptive EDF, the basis for
// deriving a response-time bound once combined with each task's own
// relative deadline.
func FullyPreemptive(ts TaskSet) (ptime.Duration, error) {
	return fixedpoint.BoundedResponseTime(ts.aggregate(0), ts.SupplyBound, ts.BusyWindowLimit)
}

// FullyNonPreemptive computes the busy window under non-preemptive
// EDF, where a just-missed, already-executing job of any task (not
// necessarily an earlier-deadline one, since a job can start before an
// earlier-deadline job arrives) may block the window's start by up to
// its own worst-case execution time. blocking is the longest
// execution time among all tasks sharing the resource.
func FullyNonPreemptive(ts TaskSet, blocking ptime.Service) (ptime.Duration, error) {
	return fixedpoint.BoundedResponseTime(ts.aggregate(blocking), ts.SupplyBound, ts.BusyWindowLimit)
}

// LimitedPreemptive computes the busy window under limited-preemptive
// EDF: blocking is bounded by the longest non-preemptive region among
// all tasks sharing the resource, rather than by a whole job's cost.
func LimitedPreemptive(ts TaskSet, maxNonPreemptiveRegion ptime.Service) (ptime.Duration, error) {
	return fixedpoint.BoundedResponseTime(ts.aggregate(maxNonPreemptiveRegion), ts.SupplyBound, ts.BusyWindowLimit)
}

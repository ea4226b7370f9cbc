// Package fixedpoint implements the busy-window and response-time
// fixed-point search shared by every scheduler-policy analysis: given
// a demand bound and a supply bound, find the smallest interval
// length at which supply catches up with demand.
package fixedpoint

import (
	"fmt"

	"github.com/brandenburg-rta/rta-bounds/rta/demand"
	"github.com/brandenburg-rta/rta-bounds/rta/ptime"
	"github.com/brandenburg-rta/rta-bounds/rta/supply"
)

// SearchFailure reports that a fixed-point search exceeded the given
// divergence limit on delta before converging, almost always because
// the work demand exceeds the available supply (the system is not schedulable, or the
// supplied bounds are not valid arrival/cost models). It is the sole
// error variant any search in this package returns; Offset records
// which release offset's search diverged, so that callers scanning
// several offsets (MaxResponseTime, and the scheduler-policy
// orchestrators built on it) can compare failures across offsets to
// identify which one is actually overloaded.
type SearchFailure struct {
	Offset ptime.Duration
	Limit  ptime.Duration
}

func (e *SearchFailure) Error() string {
	return fmt.Sprintf("fixedpoint: search at offset %s did not converge within limit %s", e.Offset, e.Limit)
}

// Search finds a delta such that demandAt(delta) == delta, iterating
// delta := demandAt(delta) from start until it stops changing.
// demandAt must be non-decreasing. Fails with
// SearchFailure (tagged with offset, for the caller's own bookkeeping)
// if delta exceeds limit before converging.
func Search(offset, start, limit ptime.Duration, demandAt func(ptime.Duration) ptime.Duration) (ptime.Duration, error) {
	delta := start
	for {
		next := demandAt(delta)
		if next == delta {
			return delta, nil
		}
		if next > limit {
			return 0, &SearchFailure{Offset: offset, Limit: limit}
		}
		delta = next
	}
}

// SearchWithOffset finds the busy-window length w solving
// w == demandBound.ServiceDemand(offset + w) converted through supplyBound's
// service time, starting the iteration from the supply-side image of
// the least WCET (the smallest interval that could possibly start a
// busy window). Returns the response-time bound at the given release
// offset within that window: w - offset.
func SearchWithOffset(
	offset ptime.Duration,
	demandBound demand.AggregateBound,
	supplyBound supply.Bound,
	limit ptime.Duration,
) (ptime.Duration, error) {
	demandAt := func(w ptime.Duration) ptime.Duration {
		work := demandBound.ServiceDemand(offset.Add(w))
		return supplyBound.ServiceTime(work)
	}
	start := supplyBound.ServiceTime(demandBound.LeastWCET())
	w, err := Search(offset, start, limit, demandAt)
	if err != nil {
		return 0, err
	}
	return w.SaturatingSub(offset), nil
}

// BoundedResponseTime computes the worst-case response time of a task
// under analysis whose full interference (including any
// higher-priority or concurrently-interfering tasks already folded
// into demandBound) is captured by demandBound, served by
// supplyBound. Scheduler-policy orchestrators that need only the
// single-release, offset-0 case build on this directly; those that
// must scan multiple release offsets use MaxResponseTime instead.
func BoundedResponseTime(demandBound demand.AggregateBound, supplyBound supply.Bound, limit ptime.Duration) (ptime.Duration, error) {
	return SearchWithOffset(0, demandBound, supplyBound, limit)
}

// MaxResponseTime runs SearchWithOffset at every offset yielded by
// offsets, returning the largest resulting response-time bound. This
// is the standard way to turn a per-offset response-time bound into
// the single worst-case response-time bound for a task.
func MaxResponseTime(
	offsets func(yield func(ptime.Duration) bool),
	demandBound demand.AggregateBound,
	supplyBound supply.Bound,
	limit ptime.Duration,
) (ptime.Duration, error) {
	worst := ptime.Duration(0)
	seen := false
	for offset := range offsets {
		r, err := SearchWithOffset(offset, demandBound, supplyBound, limit)
		if err != nil {
			return 0, err
		}
		if !seen || r > worst {
			worst = r
			seen = true
		}
	}
	if !seen {
		return 0, nil
	}
	return worst, nil
}

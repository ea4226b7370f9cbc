package demand

import (
	"iter"

	"github.com/brandenburg-rta/rta-bounds/rta/ptime"
	"github.com/brandenburg-rta/rta-bounds/rta/seq"
)

// Constant is a fixed, interval-independent amount of demand: the
// building block for folding a single job's own execution cost into
// an aggregate interference bound, as classic fixed-priority and EDF
// response-time recurrences do (R = C_i + interference(R)).
type Constant struct {
	Value ptime.Service
}

// ServiceDemand implements Bound: Value for any non-zero interval,
// zero at the origin.
func (c Constant) ServiceDemand(delta ptime.Duration) ptime.Service {
	if delta.IsZero() {
		return 0
	}
	return c.Value
}

// LeastWCET implements AggregateBound.
func (c Constant) LeastWCET() ptime.Service { return c.Value }

// ServiceNeededByNJobsPerComponent implements AggregateBound: a
// Constant is a single component, so this is its own
// ServiceNeededByNJobs.
func (c Constant) ServiceNeededByNJobsPerComponent(delta ptime.Duration, k int) ptime.Service {
	return c.ServiceNeededByNJobs(delta, k)
}

// JobCosts implements Bound: a single job of cost Value once delta is
// non-zero, nothing at the origin.
func (c Constant) JobCosts(delta ptime.Duration) iter.Seq[ptime.Service] {
	if delta.IsZero() {
		return seq.Of[ptime.Service]()
	}
	return seq.Of(c.Value)
}

// ServiceNeededByNJobs implements Bound.
func (c Constant) ServiceNeededByNJobs(delta ptime.Duration, k int) ptime.Service {
	if delta.IsZero() || k <= 0 {
		return 0
	}
	return c.Value
}

// LeastWCETInInterval implements Bound.
func (c Constant) LeastWCETInInterval(delta ptime.Duration) ptime.Service {
	if delta.IsZero() {
		return 0
	}
	return c.Value
}

// Steps implements Bound: demand jumps exactly once, at the smallest
// representable interval.
func (c Constant) Steps() iter.Seq[ptime.Duration] {
	return seq.Of(ptime.Epsilon)
}

package cost

import "github.com/brandenburg-rta/rta-bounds/rta/ptime"

// Curve is a cost model given as an explicit prefix of CostOfJobs
// values, typically obtained from measurement or a configuration file.
// Beyond the recorded prefix it extrapolates by assuming every further
// job costs at least as much as the largest marginal cost observed
// anywhere in the known prefix: a safe (if pessimistic) upper bound,
// since nothing guarantees later jobs are cheaper than the worst one
// seen so far.
type Curve struct {
	// costs[i] holds CostOfJobs(i+1); costs[0] is the cost of a single job.
	costs []ptime.Service
}

// NewCurve builds a cost curve from an explicit, non-empty
// CostOfJobs(1..n) prefix. The prefix is coerced to be non-decreasing:
// costs[i] is raised to at least costs[i-1], mirroring how a real
// worst-case cost function cannot dip below what fewer jobs already
// established. Panics on an empty prefix.
func NewCurve(costOfJobsPrefix []ptime.Service) *Curve {
	if len(costOfJobsPrefix) == 0 {
		panic("cost: Curve requires a non-empty cost prefix")
	}
	c := append([]ptime.Service(nil), costOfJobsPrefix...)
	for i := 1; i < len(c); i++ {
		if c[i] < c[i-1] {
			c[i] = c[i-1]
		}
	}
	return &Curve{costs: c}
}

// FromTrace builds a cost curve from a sequence of observed
// single-job execution times, by taking, for every window length w up
// to maxJobs, the maximum total cost seen in any w-job window of the
// trace.
func FromTrace(observedJobCosts []ptime.Service, maxJobs int) *Curve {
	if len(observedJobCosts) == 0 || maxJobs <= 0 {
		panic("cost: FromTrace requires a non-empty trace and a positive window bound")
	}
	n := len(observedJobCosts)
	prefix := make([]ptime.Service, n+1)
	for i, c := range observedJobCosts {
		prefix[i+1] = prefix[i].Add(c)
	}
	limit := maxJobs
	if limit > n {
		limit = n
	}
	costs := make([]ptime.Service, limit)
	for w := 1; w <= limit; w++ {
		worst := ptime.Service(0)
		for start := 0; start+w <= n; start++ {
			total := prefix[start+w].SaturatingSub(prefix[start])
			if total > worst {
				worst = total
			}
		}
		costs[w-1] = worst
	}
	return NewCurve(costs)
}

func (c *Curve) maxMarginalCost() ptime.Service {
	best := c.costs[0]
	for i := 1; i < len(c.costs); i++ {
		marginal := c.costs[i].SaturatingSub(c.costs[i-1])
		if marginal > best {
			best = marginal
		}
	}
	return best
}

// CostOfJobs implements Model.
func (c *Curve) CostOfJobs(n int) ptime.Service {
	if n <= 0 {
		return 0
	}
	if n <= len(c.costs) {
		return c.costs[n-1]
	}
	extra := n - len(c.costs)
	marginal := c.maxMarginalCost()
	return c.costs[len(c.costs)-1].Add(marginal.Mul(uint64(extra)))
}

// LeastWCET implements Model.
func (c *Curve) LeastWCET() ptime.Service { return c.costs[0] }

// ExtrapolatingCurve wraps a Curve and extends its recorded prefix on
// demand by sampling additional window costs from a trace, caching
// the result. Not safe for concurrent use.
type ExtrapolatingCurve struct {
	curve *Curve
	trace []ptime.Service
}

// NewExtrapolatingCurve wraps curve, backed by the full trace it was
// built from, so that CostOfJobs(n) for an n beyond the initially
// materialized prefix can still be computed exactly rather than
// linearly extrapolated, as long as the trace has enough samples.
func NewExtrapolatingCurve(curve *Curve, trace []ptime.Service) *ExtrapolatingCurve {
	return &ExtrapolatingCurve{curve: curve, trace: trace}
}

// CostOfJobs implements Model, growing the cached prefix from the
// backing trace before falling back to the Curve's linear extrapolation.
func (e *ExtrapolatingCurve) CostOfJobs(n int) ptime.Service {
	if n > len(e.curve.costs) && n <= len(e.trace) {
		e.curve = FromTrace(e.trace, n)
	}
	return e.curve.CostOfJobs(n)
}

// LeastWCET implements Model.
func (e *ExtrapolatingCurve) LeastWCET() ptime.Service { return e.curve.LeastWCET() }

package supply

import "github.com/brandenburg-rta/rta-bounds/rta/ptime"

// Periodic models the Shin & Lee periodic resource model: a resource
// partition that is guaranteed Budget units of service out of every
// Period time units, with no guarantee on exactly when within each
// period that budget is granted. This is the standard abstraction for
// analyzing a task running inside a reserved, periodically replenished
// time slice (a hypervisor vCPU, a cgroup CPU quota, ...).
type Periodic struct {
	Period ptime.Duration
	Budget ptime.Duration
}

// NewPeriodic constructs a periodic resource model. Panics if Period
// is zero or Budget exceeds Period.
func NewPeriodic(period, budget ptime.Duration) Periodic {
	if period.IsZero() {
		panic("supply: Periodic requires a non-zero period")
	}
	if budget > period {
		panic("supply: Periodic requires budget <= period")
	}
	return Periodic{Period: period, Budget: budget}
}

// blackout is the maximum length of a window that sees no service at
// all: the budget is exhausted just before the window starts and not
// replenished until just after it ends.
func (p Periodic) blackout() ptime.Duration {
	return p.Period.Mul(2).SaturatingSub(p.Budget.Mul(2))
}

// ProvidedService implements Bound, via the standard Shin & Lee
// supply-bound function.
func (p Periodic) ProvidedService(delta ptime.Duration) ptime.Service {
	b := p.blackout()
	if delta <= b {
		return 0
	}
	remaining := delta - b
	k, rem := remaining.DivMod(p.Period)
	// k full periods beyond the blackout each contribute one full
	// Budget; the worst case grants the partial period's budget first,
	// so the partial period contributes min(rem, Budget).
	full := p.Budget.Mul(k)
	partial := ptime.Min(rem, p.Budget)
	return full.Add(partial).AsService()
}

// ServiceTime implements Bound: the shortest interval guaranteed to
// deliver at least amount of service, found by inverting the
// piecewise-linear, budget-first supply-bound function.
func (p Periodic) ServiceTime(amount ptime.Service) ptime.Duration {
	d := amount.AsDuration()
	if d.IsZero() {
		return 0
	}
	k, rem := d.DivMod(p.Budget)
	var periods ptime.Duration
	var partial ptime.Duration
	if rem.IsNonZero() {
		periods = p.Period.Mul(k)
		partial = rem
	} else {
		periods = p.Period.Mul(k - 1)
		partial = p.Budget
	}
	return p.blackout().Add(periods).Add(partial)
}

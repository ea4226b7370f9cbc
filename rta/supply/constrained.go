package supply

import "github.com/brandenburg-rta/rta-bounds/rta/ptime"

// Constrained models a constrained-deadline periodic resource: Budget
// units of service are guaranteed within every Deadline-length window,
// replenished every Period time units, with Deadline <= Period. This
// generalizes Periodic to servers whose granted budget must be
// usable before a deadline earlier than the next replenishment, as
// with a bandwidth-server reservation backing a real-time partition.
type Constrained struct {
	Period   ptime.Duration
	Budget   ptime.Duration
	Deadline ptime.Duration
}

// NewConstrained constructs a constrained-deadline periodic resource
// model. Panics if Period is zero, Budget exceeds Deadline, or
// Deadline exceeds Period.
func NewConstrained(period, budget, deadline ptime.Duration) Constrained {
	if period.IsZero() {
		panic("supply: Constrained requires a non-zero period")
	}
	if deadline > period {
		panic("supply: Constrained requires deadline <= period")
	}
	if budget > deadline {
		panic("supply: Constrained requires budget <= deadline")
	}
	return Constrained{Period: period, Budget: budget, Deadline: deadline}
}

// blackout is the longest window that could see no service: budget is
// exhausted right before the window starts, and the next replenished
// budget isn't usable until Deadline-Budget after the period boundary.
func (c Constrained) blackout() ptime.Duration {
	return c.Period.SaturatingSub(c.Budget).Add(c.Deadline.SaturatingSub(c.Budget))
}

// ProvidedService implements Bound. The supply staircase rises from
// i*Budget to (i+1)*Budget over the window [shift+i*Period+(Deadline-
// Budget), shift+i*Period+Deadline], where shift = Period-Budget is
// the length of the first idle stretch; outside that window the
// service just delivered stays flat until the next rise begins.
func (c Constrained) ProvidedService(delta ptime.Duration) ptime.Service {
	b := c.blackout()
	if delta <= b {
		return 0
	}
	shift := c.Period.SaturatingSub(c.Budget)
	gap := c.Deadline.SaturatingSub(c.Budget)
	diff := delta.SaturatingSub(shift)
	q, _ := diff.DivMod(c.Period)
	x := shift.Add(c.Period.Mul(q)).Add(gap)
	over := delta.SaturatingSub(x)
	partial := ptime.Min(c.Budget, over)
	return c.Budget.Mul(q).Add(partial).AsService()
}

// ServiceTime implements Bound: inverts the staircase above.
func (c Constrained) ServiceTime(amount ptime.Service) ptime.Duration {
	d := amount.AsDuration()
	if d.IsZero() {
		return 0
	}
	shift := c.Period.SaturatingSub(c.Budget)
	gap := c.Deadline.SaturatingSub(c.Budget)
	q, rem := d.DivMod(c.Budget)
	if rem.IsZero() {
		i := q - 1
		return shift.Add(c.Period.Mul(i)).Add(c.Deadline)
	}
	return shift.Add(c.Period.Mul(q)).Add(gap).Add(rem)
}

package supply

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brandenburg-rta/rta-bounds/rta/ptime"
)

func TestDedicated_ProvidesFullService(t *testing.T) {
	d := Dedicated{}
	for delta := ptime.Duration(0); delta < 50; delta++ {
		assert.Equal(t, delta.AsService(), d.ProvidedService(delta))
	}
}

func TestDedicated_ServiceTimeInverts(t *testing.T) {
	d := Dedicated{}
	assert.Equal(t, ptime.Duration(7), d.ServiceTime(7))
}

func monotoneCheck(t *testing.T, b Bound, upTo ptime.Duration) {
	t.Helper()
	prev := ptime.Service(0)
	for delta := ptime.Duration(0); delta < upTo; delta++ {
		s := b.ProvidedService(delta)
		assert.GreaterOrEqual(t, uint64(s), uint64(prev), "delta=%d", delta)
		assert.LessOrEqual(t, uint64(s), uint64(delta.AsService()), "delta=%d: supply exceeds elapsed time", delta)
		prev = s
	}
}

func TestPeriodic_ZeroAtOrigin(t *testing.T) {
	p := NewPeriodic(10, 4)
	assert.Equal(t, ptime.Service(0), p.ProvidedService(0))
}

func TestPeriodic_MonotoneAndBounded(t *testing.T) {
	p := NewPeriodic(10, 4)
	monotoneCheck(t, p, 200)
}

func TestPeriodic_FullBudgetPerPeriodEventually(t *testing.T) {
	p := NewPeriodic(10, 4)
	// Over a long enough horizon, the guaranteed fraction approaches
	// Budget/Period from below.
	s := p.ProvidedService(10_000)
	assert.GreaterOrEqual(t, uint64(s), uint64(9_000)*4/10-10)
}

func TestPeriodic_InvalidParametersPanic(t *testing.T) {
	assert.Panics(t, func() { NewPeriodic(0, 0) })
	assert.Panics(t, func() { NewPeriodic(5, 6) })
}

// TestPeriodic_ProvidedService_BudgetGrantedFirst is the mandatory
// scenario §8.3: Periodic{Period: 5, Budget: 3}. The worst case grants
// the partial period's budget first, so the onset at the end of the
// blackout (delta=4) rises straight to Budget rather than being
// delayed by the period's own idle stretch.
func TestPeriodic_ProvidedService_BudgetGrantedFirst(t *testing.T) {
	p := NewPeriodic(5, 3)
	cases := []struct {
		delta ptime.Duration
		want  ptime.Service
	}{
		{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0},
		{5, 1}, {6, 2}, {7, 3},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, p.ProvidedService(c.delta), "delta=%d", c.delta)
	}
}

// TestPeriodic_ServiceTime_InvertsBudgetFirstSBF is the inverse half
// of §8.3: the shortest interval guaranteed to deliver each amount of
// service for Periodic{Period: 5, Budget: 3}.
func TestPeriodic_ServiceTime_InvertsBudgetFirstSBF(t *testing.T) {
	p := NewPeriodic(5, 3)
	want := []ptime.Duration{5, 6, 7, 10, 11, 12}
	for i, w := range want {
		amount := ptime.Service(i + 1)
		assert.Equal(t, w, p.ServiceTime(amount), "amount=%d", amount)
	}
}

func TestConstrained_ZeroAtOrigin(t *testing.T) {
	c := NewConstrained(10, 3, 6)
	assert.Equal(t, ptime.Service(0), c.ProvidedService(0))
}

func TestConstrained_MonotoneAndBounded(t *testing.T) {
	c := NewConstrained(10, 3, 6)
	monotoneCheck(t, c, 200)
}

func TestConstrained_InvalidParametersPanic(t *testing.T) {
	assert.Panics(t, func() { NewConstrained(0, 1, 1) })
	assert.Panics(t, func() { NewConstrained(10, 1, 20) })
	assert.Panics(t, func() { NewConstrained(10, 8, 6) })
}

// TestConstrained_ProvidedService_Onset is the mandatory scenario
// §8.4: Constrained{Period: 11, Budget: 2, Deadline: 5}. blackout() =
// (11-2)+(5-2) = 12, so ProvidedService must stay zero through
// delta=12 and then rise.
func TestConstrained_ProvidedService_Onset(t *testing.T) {
	c := NewConstrained(11, 2, 5)
	cases := []struct {
		delta ptime.Duration
		want  ptime.Service
	}{
		{12, 0}, {13, 1}, {14, 2}, {20, 2}, {23, 2}, {24, 3}, {25, 4},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, c.ProvidedService(tc.delta), "delta=%d", tc.delta)
	}
}

// TestConstrained_ServiceTime_InvertsOnset is the inverse half of
// §8.4, for the same Constrained{Period: 11, Budget: 2, Deadline: 5}.
func TestConstrained_ServiceTime_InvertsOnset(t *testing.T) {
	c := NewConstrained(11, 2, 5)
	want := []ptime.Duration{13, 14, 24, 25}
	for i, w := range want {
		amount := ptime.Service(i + 1)
		assert.Equal(t, w, c.ServiceTime(amount), "amount=%d", amount)
	}
}

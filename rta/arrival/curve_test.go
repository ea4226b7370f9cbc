package arrival

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandenburg-rta/rta-bounds/rta/ptime"
	"github.com/brandenburg-rta/rta-bounds/rta/seq"
)

func TestNewCurve_EnforcesMonotonicity(t *testing.T) {
	c := NewCurve([]ptime.Duration{10, 8, 20})
	assert.Equal(t, []ptime.Duration{10, 10, 20}, c.MinDistance)
}

func TestNewCurve_EmptyPanics(t *testing.T) {
	assert.Panics(t, func() { NewCurve(nil) })
}

func TestCurveFromPeriodic_MatchesPeriodic(t *testing.T) {
	p := NewPeriodic(10)
	c := CurveFromPeriodic(p)

	for delta := ptime.Duration(0); delta < 50; delta++ {
		assert.Equal(t, p.NumberArrivals(delta), c.NumberArrivals(delta), "delta=%d", delta)
	}
}

func TestUnrollSporadic_MatchesSporadic(t *testing.T) {
	s := NewSporadic(10, 3)
	c := UnrollSporadic(s, 200)

	for delta := ptime.Duration(0); delta < 150; delta++ {
		require.Equal(t, s.NumberArrivals(delta), c.NumberArrivals(delta), "delta=%d", delta)
	}
}

func TestCurve_Extrapolate_StaysUpperBound(t *testing.T) {
	// Two jobs require at least 4 time units, three require at least 9:
	// a curve growing faster than linear, to exercise sub-additive
	// extrapolation's superlinear-safe combination step.
	c := NewCurve([]ptime.Duration{4, 9})
	c.Extrapolate(100)

	// n(delta) must remain non-decreasing and NumberArrivals(0) == 0.
	prev := 0
	for delta := ptime.Duration(0); delta < 100; delta++ {
		n := c.NumberArrivals(delta)
		assert.GreaterOrEqual(t, n, prev)
		prev = n
	}
	assert.Equal(t, 0, c.NumberArrivals(0))
}

func TestCurve_Steps_CycleThroughDeltaMin(t *testing.T) {
	c := NewCurve([]ptime.Duration{10, 20})
	got := seq.Collect(c.Steps(), 4)
	require.Equal(t, []ptime.Duration{1, 11, 21, 31}, got)
}

func TestExtrapolatingCurve_MatchesPlainExtrapolation(t *testing.T) {
	plain := NewCurve([]ptime.Duration{4, 9})
	plain.Extrapolate(1000)

	lazy := NewExtrapolatingCurve(NewCurve([]ptime.Duration{4, 9}))

	for delta := ptime.Duration(0); delta < 1000; delta += 7 {
		assert.Equal(t, plain.NumberArrivals(delta), lazy.NumberArrivals(delta), "delta=%d", delta)
	}
}

func TestExtrapolatingCurve_Steps_Increasing(t *testing.T) {
	lazy := NewExtrapolatingCurve(NewCurve([]ptime.Duration{4, 9}))
	got := seq.Collect(lazy.Steps(), 10)

	for i := 1; i < len(got); i++ {
		assert.Greater(t, got[i], got[i-1])
	}
}

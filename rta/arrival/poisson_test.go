package arrival

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandenburg-rta/rta-bounds/rta/ptime"
)

func TestPoisson_NumberArrivals_ZeroAtZero(t *testing.T) {
	p := NewPoisson(0.1, 1e-6)
	assert.Equal(t, 0, p.NumberArrivals(0))
}

func TestPoisson_NumberArrivals_Monotone(t *testing.T) {
	p := NewPoisson(0.05, 1e-6)
	prev := 0
	for delta := ptime.Duration(1); delta < 500; delta += 17 {
		n := p.NumberArrivals(delta)
		assert.GreaterOrEqual(t, n, prev)
		prev = n
	}
}

func TestPoisson_TighterEpsilonNeverLowersBound(t *testing.T) {
	loose := NewPoisson(0.1, 1e-2)
	tight := NewPoisson(0.1, 1e-9)

	for delta := ptime.Duration(10); delta < 200; delta += 13 {
		assert.GreaterOrEqual(t, tight.NumberArrivals(delta), loose.NumberArrivals(delta), "delta=%d", delta)
	}
}

func TestPoisson_InvalidParametersPanic(t *testing.T) {
	assert.Panics(t, func() { NewPoisson(0, 0.1) })
	assert.Panics(t, func() { NewPoisson(1, 0) })
	assert.Panics(t, func() { NewPoisson(1, 1) })
}

func TestApproximatedPoisson_ApproximatesExact(t *testing.T) {
	p := NewPoisson(0.05, 1e-6)
	approx := NewApproximatedPoisson(p, 1000, 5)

	for delta := ptime.Duration(0); delta < 1000; delta += 23 {
		exact := p.NumberArrivals(delta)
		got := approx.NumberArrivals(delta)
		// The step-granularity approximation rounds each minimal
		// distance down to a grid point, so it must never
		// under-approximate the exact quantile bound.
		require.GreaterOrEqual(t, got, exact, "delta=%d", delta)
	}
}

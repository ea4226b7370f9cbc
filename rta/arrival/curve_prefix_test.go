package arrival

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandenburg-rta/rta-bounds/rta/ptime"
)

func TestCurvePrefix_NumberArrivals_WithinHorizon(t *testing.T) {
	p := NewCurvePrefix(
		[]ptime.Duration{10, 20, 30},
		[]int{1, 2, 3},
	)

	assert.Equal(t, 0, p.NumberArrivals(5))
	assert.Equal(t, 1, p.NumberArrivals(10))
	assert.Equal(t, 1, p.NumberArrivals(15))
	assert.Equal(t, 2, p.NumberArrivals(20))
	assert.Equal(t, 3, p.NumberArrivals(30))
}

func TestCurvePrefix_NumberArrivals_PastHorizonPanics(t *testing.T) {
	p := NewCurvePrefix([]ptime.Duration{10}, []int{1})
	assert.Panics(t, func() { p.NumberArrivals(11) })
}

func TestCurvePrefix_MalformedTablePanics(t *testing.T) {
	assert.Panics(t, func() { NewCurvePrefix(nil, nil) })
	assert.Panics(t, func() {
		NewCurvePrefix([]ptime.Duration{10, 10}, []int{1, 2})
	})
}

func TestCurvePrefix_ToCurve_AgreesWithinHorizon(t *testing.T) {
	p := NewCurvePrefix(
		[]ptime.Duration{10, 20, 30},
		[]int{1, 2, 3},
	)
	c := p.ToCurve()

	for delta := ptime.Duration(1); delta <= p.Horizon(); delta++ {
		require.Equal(t, p.NumberArrivals(delta), c.NumberArrivals(delta), "delta=%d", delta)
	}
}

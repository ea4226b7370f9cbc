package arrival

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandenburg-rta/rta-bounds/rta/ptime"
	"github.com/brandenburg-rta/rta-bounds/rta/seq"
)

func TestSum_NumberArrivals_AddsComponents(t *testing.T) {
	s := NewSum(NewPeriodic(10), NewSporadicNoJitter(15))

	for delta := ptime.Duration(0); delta < 60; delta++ {
		want := NewPeriodic(10).NumberArrivals(delta) + NewSporadicNoJitter(15).NumberArrivals(delta)
		assert.Equal(t, want, s.NumberArrivals(delta), "delta=%d", delta)
	}
}

func TestSum_Steps_MergedAndDeduplicated(t *testing.T) {
	s := NewSum(NewPeriodic(10), NewPeriodic(10))
	got := seq.Collect(s.Steps(), 3)
	// Identical components produce identical step sets; Dedup must
	// collapse the merge back down to one copy of each step.
	require.Equal(t, []ptime.Duration{1, 11, 21}, got)
}

func TestSum_RequiresAtLeastOneComponent(t *testing.T) {
	assert.Panics(t, func() { NewSum() })
}

func TestSum_CloneWithJitter_AppliesToAllComponents(t *testing.T) {
	s := NewSum(NewPeriodic(10), NewSporadicNoJitter(15))
	got := s.CloneWithJitter(4).(Sum)
	require.Len(t, got.Components, 2)
	assert.Equal(t, Sporadic{MinInterArrival: 10, Jitter: 4}, got.Components[0])
	assert.Equal(t, Sporadic{MinInterArrival: 15, Jitter: 4}, got.Components[1])
}

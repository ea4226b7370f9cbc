package edf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandenburg-rta/rta-bounds/rta/arrival"
	"github.com/brandenburg-rta/rta-bounds/rta/cost"
	"github.com/brandenburg-rta/rta-bounds/rta/demand"
	"github.com/brandenburg-rta/rta-bounds/rta/ptime"
	"github.com/brandenburg-rta/rta-bounds/rta/supply"
)

func TestFullyPreemptive_SingleTaskBusyWindow(t *testing.T) {
	task := demand.NewRBF(arrival.NewPeriodic(10), cost.NewScalar(4))
	ts := TaskSet{
		Tasks:           []demand.Bound{task},
		SupplyBound:     supply.Dedicated{},
		BusyWindowLimit: 1000,
	}
	w, err := FullyPreemptive(ts)
	require.NoError(t, err)
	assert.Equal(t, ptime.Duration(4), w)
}

func TestFullyNonPreemptive_AddsBlocking(t *testing.T) {
	task := demand.NewRBF(arrival.NewPeriodic(10), cost.NewScalar(4))
	ts := TaskSet{
		Tasks:           []demand.Bound{task},
		SupplyBound:     supply.Dedicated{},
		BusyWindowLimit: 1000,
	}
	w, err := FullyNonPreemptive(ts, 2)
	require.NoError(t, err)
	assert.Equal(t, ptime.Duration(6), w)
}

func TestLimitedPreemptive_SmallerRegionGivesSmallerWindow(t *testing.T) {
	task := demand.NewRBF(arrival.NewPeriodic(10), cost.NewScalar(4))
	ts := TaskSet{
		Tasks:           []demand.Bound{task},
		SupplyBound:     supply.Dedicated{},
		BusyWindowLimit: 1000,
	}
	withRegion, err := LimitedPreemptive(ts, 1)
	require.NoError(t, err)
	withBlocking, err := FullyNonPreemptive(ts, 2)
	require.NoError(t, err)
	assert.Less(t, withRegion, withBlocking)
}

func TestFullyPreemptive_OverloadFails(t *testing.T) {
	task := demand.NewRBF(arrival.NewPeriodic(1), cost.NewScalar(2))
	ts := TaskSet{
		Tasks:           []demand.Bound{task},
		SupplyBound:     supply.Dedicated{},
		BusyWindowLimit: 100,
	}
	_, err := FullyPreemptive(ts)
	assert.Error(t, err)
}

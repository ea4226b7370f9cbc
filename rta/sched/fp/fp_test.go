package fp

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

func TestFullyPreemptive_NoInterference(t *testing.T) {
	task := Task{
		OwnCost:         5,
		SupplyBound:     supply.Dedicated{},
		BusyWindowLimit: 1000,
	}
	r, err := FullyPreemptive(task)
	require.NoError(t, err)
	assert.Equal(t, ptime.Duration(5), r)
}

func TestFullyPreemptive_WithHigherPriorityInterference(t *testing.T) {
	hp := demand.NewRBF(arrival.NewPeriodic(10), cost.NewScalar(2))
	task := Task{
		OwnCost:         5,
		HigherPriority:  []demand.Bound{hp},
		SupplyBound:     supply.Dedicated{},
		BusyWindowLimit: 1000,
	}
	r, err := FullyPreemptive(task)
	require.NoError(t, err)
	// One hp job always interferes (5 < 10), so R = 5 + 2 = 7.
	assert.Equal(t, ptime.Duration(7), r)
}

func TestFloatingNonPreemptive_AddsBlocking(t *testing.T) {
	task := Task{
		OwnCost:         5,
		SupplyBound:     supply.Dedicated{},
		BusyWindowLimit: 1000,
	}
	r, err := FloatingNonPreemptive(task, 3)
	require.NoError(t, err)
	assert.Equal(t, ptime.Duration(8), r)
}

func TestLimitedPreemptive_UsesRegionAsBlocking(t *testing.T) {
	task := Task{
		OwnCost:         5,
		SupplyBound:     supply.Dedicated{},
		BusyWindowLimit: 1000,
	}
	r, err := LimitedPreemptive(task, 1)
	require.NoError(t, err)
	assert.Equal(t, ptime.Duration(6), r)
}

func TestFullyPreemptive_OverloadFails(t *testing.T) {
	hp := demand.NewRBF(arrival.NewPeriodic(1), cost.NewScalar(2))
	task := Task{
		OwnCost:         5,
		HigherPriority:  []demand.Bound{hp},
		SupplyBound:     supply.Dedicated{},
		BusyWindowLimit: 100,
	}
	_, err := FullyPreemptive(task)
	assert.Error(t, err)
}

// taskParam is one task's (WCET, Period), ordered from highest to
// lowest priority by position in a scenario's slice.
type taskParam struct {
	wcet, period uint64
}

// taskSetResults runs FullyPreemptive once per task in params, in
// priority order, each accumulating the RBFs of every task analyzed
// before it as its higher-priority interference.
func taskSetResults(t *testing.T, params []taskParam, limit ptime.Duration) []ptime.Duration {
	t.Helper()
	results := make([]ptime.Duration, len(params))
	var higherPriority []demand.Bound
	for i, p := range params {
		task := Task{
			OwnCost:         ptime.Service(p.wcet),
			HigherPriority:  append([]demand.Bound(nil), higherPriority...),
			SupplyBound:     supply.Dedicated{},
			BusyWindowLimit: limit,
		}
		r, err := FullyPreemptive(task)
		require.NoError(t, err, "task %d", i)
		results[i] = r
		higherPriority = append(higherPriority, demand.NewRBF(arrival.NewPeriodic(ptime.Duration(p.period)), cost.NewScalar(ptime.Service(p.wcet))))
	}
	return results
}

// TestFullyPreemptive_ScenarioVector is the mandatory scenario §8.5:
// task set [(1,4),(1,5),(3,9),(3,18)] (WCET, Period, highest priority
// first) on a dedicated processor must yield response times
// [1,2,7,18].
func TestFullyPreemptive_ScenarioVector(t *testing.T) {
	params := []taskParam{{1, 4}, {1, 5}, {3, 9}, {3, 18}}
	results := taskSetResults(t, params, 1000)
	assert.Equal(t, []ptime.Duration{1, 2, 7, 18}, results)
}


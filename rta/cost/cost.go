// Package cost provides worst-case execution cost models: functions
// from a number of jobs to the maximum processor service those jobs
// could possibly require, the dual of the arrival package's bound on
// how many jobs could possibly arrive.
package cost

import "github.com/brandenburg-rta/rta-bounds/rta/ptime"

// Model upper-bounds the total processor service that n consecutive
// jobs of a task could require.
//
// Implementations must satisfy, for all n:
//   - CostOfJobs(0) == 0
//   - n1 <= n2 implies CostOfJobs(n1) <= CostOfJobs(n2)
//
// Cost functions are super-additive in spirit (batching jobs together
// never reduces total required service), which is the dual of an
// arrival bound's sub-additivity.
type Model interface {
	CostOfJobs(n int) ptime.Service
	LeastWCET() ptime.Service
}

// BruteForceLeastWCET derives LeastWCET from CostOfJobs when a model
// has no cheaper way to report it: the cost of a single job.
func BruteForceLeastWCET(m Model) ptime.Service {
	return m.CostOfJobs(1)
}

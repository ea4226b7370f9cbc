package cost

import "github.com/brandenburg-rta/rta-bounds/rta/ptime"

// Scalar is the simplest cost model: every job of the task has
// exactly the same worst-case execution time.
type Scalar struct {
	WCET ptime.Service
}

// NewScalar constructs a uniform-WCET cost model.
func NewScalar(wcet ptime.Service) Scalar {
	return Scalar{WCET: wcet}
}

// CostOfJobs implements Model.
func (s Scalar) CostOfJobs(n int) ptime.Service {
	if n <= 0 {
		return 0
	}
	return s.WCET.Mul(uint64(n))
}

// LeastWCET implements Model.
func (s Scalar) LeastWCET() ptime.Service { return s.WCET }

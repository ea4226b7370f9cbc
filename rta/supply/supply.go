// Package supply provides supply-bound functions (SBF): lower bounds
// on the processor service guaranteed to be available to a task or
// resource partition within any interval of a given length, the dual
// of the demand package's upper bound on work.
package supply

import "github.com/brandenburg-rta/rta-bounds/rta/ptime"

// Bound lower-bounds the processor service guaranteed within any
// interval of a given length.
//
// Implementations must satisfy, for all deltas:
//   - ProvidedService(0) == 0
//   - delta1 <= delta2 implies ProvidedService(delta1) <= ProvidedService(delta2)
//   - ProvidedService(delta) <= delta.AsService() (never more service than elapsed time)
type Bound interface {
	ProvidedService(delta ptime.Duration) ptime.Service
	// ServiceTime is the inverse of ProvidedService: the shortest
	// interval guaranteed to deliver at least the given amount of
	// service. Used by busy-window searches to convert a remaining
	// demand into the time needed to discharge it.
	ServiceTime(amount ptime.Service) ptime.Duration
}

package supply

import "github.com/brandenburg-rta/rta-bounds/rta/ptime"

// Dedicated models a unit-speed processor dedicated entirely to the
// task or task set under analysis: every elapsed time unit delivers
// exactly one unit of service, with no interruption.
type Dedicated struct{}

// ProvidedService implements Bound.
func (Dedicated) ProvidedService(delta ptime.Duration) ptime.Service {
	return delta.AsService()
}

// ServiceTime implements Bound.
func (Dedicated) ServiceTime(amount ptime.Service) ptime.Duration {
	return amount.AsDuration()
}

// Package ptime implements the discrete time algebra shared by every
// bound in this library: a single non-negative integer time base,
// split into three newtypes (Offset, Duration, Service) so that a
// point in time, an interval length, and an amount of processor work
// can never be silently interchanged.
//
// All arithmetic is saturating: nothing in this package ever
// underflows below zero, and overflow of the underlying uint64 is a
// programmer error, not a recoverable condition.
package ptime

import "fmt"

// Offset is a point in time, measured from time zero.
type Offset uint64

// Duration is the length of a time interval.
type Duration uint64

// Service is an amount of processor work, measured in the same units
// as Duration: on a unit-speed dedicated processor, one unit of time
// delivers one unit of service.
type Service uint64

// Epsilon is the smallest representable unit of time.
const Epsilon Duration = 1

// EpsilonService is the smallest representable unit of service.
const EpsilonService Service = 1

// FromTimeZero returns the offset X such that the half-open interval
// [0, X) has length delta.
func FromTimeZero(delta Duration) Offset {
	return Offset(delta)
}

// ClosedFromTimeZero returns the offset X such that the closed
// interval [0, X] has length delta. Panics if delta is zero, since
// there is no offset whose closed interval to time zero has zero
// length.
func ClosedFromTimeZero(delta Duration) Offset {
	if delta == 0 {
		panic("ptime: ClosedFromTimeZero(0) is undefined")
	}
	return Offset(delta - 1)
}

// SinceTimeZero returns the length of the half-open interval [0, o).
func (o Offset) SinceTimeZero() Duration {
	return Duration(o)
}

// ClosedSinceTimeZero returns the length of the closed interval [0, o].
func (o Offset) ClosedSinceTimeZero() Duration {
	return Duration(o) + 1
}

// Add returns o shifted forward by d.
func (o Offset) Add(d Duration) Offset {
	return Offset(uint64(o) + uint64(d))
}

// DistanceTo returns the length of [o, t). Panics if t precedes o.
func (o Offset) DistanceTo(t Offset) Duration {
	if t < o {
		panic(fmt.Sprintf("ptime: DistanceTo: %d precedes %d", t, o))
	}
	return Duration(uint64(t) - uint64(o))
}

// String implements fmt.Stringer.
func (o Offset) String() string { return fmt.Sprintf("@%d", uint64(o)) }

// Zero is the empty interval.
func Zero() Duration { return 0 }

// IsZero reports whether d represents the empty interval.
func (d Duration) IsZero() bool { return d == 0 }

// IsNonZero reports whether d represents a non-empty interval.
func (d Duration) IsNonZero() bool { return d != 0 }

// Add returns d + e.
func (d Duration) Add(e Duration) Duration { return d + e }

// SaturatingSub returns d - e, floored at zero.
func (d Duration) SaturatingSub(e Duration) Duration {
	if e >= d {
		return 0
	}
	return d - e
}

// Mul returns d scaled by a non-negative integer factor.
func (d Duration) Mul(factor uint64) Duration { return Duration(uint64(d) * factor) }

// DivMod returns (d div e, d mod e), the quotient and remainder of
// dividing d by the non-zero duration e.
func (d Duration) DivMod(e Duration) (uint64, Duration) {
	return uint64(d) / uint64(e), d % e
}

// Div returns the integer quotient of d by e.
func (d Duration) Div(e Duration) uint64 { return uint64(d) / uint64(e) }

// Mod returns d modulo e.
func (d Duration) Mod(e Duration) Duration { return d % e }

// AsService reinterprets a duration as the service delivered by a
// unit-speed processor over that interval. This is the one place the
// "1 time unit == 1 service unit" identity is made explicit.
func (d Duration) AsService() Service { return Service(d) }

// String implements fmt.Stringer.
func (d Duration) String() string { return fmt.Sprintf("%dtu", uint64(d)) }

// NoService is the zero amount of service.
func NoService() Service { return 0 }

// IsNone reports whether s represents zero service.
func (s Service) IsNone() bool { return s == 0 }

// Add returns s + t.
func (s Service) Add(t Service) Service { return s + t }

// SaturatingSub returns s - t, floored at zero.
func (s Service) SaturatingSub(t Service) Service {
	if t >= s {
		return 0
	}
	return s - t
}

// Mul returns s scaled by a non-negative integer factor.
func (s Service) Mul(factor uint64) Service { return Service(uint64(s) * factor) }

// AsDuration reinterprets an amount of service as the duration a
// unit-speed processor would need to deliver it.
func (s Service) AsDuration() Duration { return Duration(s) }

// String implements fmt.Stringer.
func (s Service) String() string { return fmt.Sprintf("%dsu", uint64(s)) }

// Min returns the smaller of two durations.
func Min(a, b Duration) Duration {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two durations.
func Max(a, b Duration) Duration {
	if a > b {
		return a
	}
	return b
}

// MinService returns the smaller of two service amounts.
func MinService(a, b Service) Service {
	if a < b {
		return a
	}
	return b
}

// MaxService returns the larger of two service amounts.
func MaxService(a, b Service) Service {
	if a > b {
		return a
	}
	return b
}

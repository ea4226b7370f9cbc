package arrival

import (
	"iter"

	"github.com/brandenburg-rta/rta-bounds/rta/ptime"
	"github.com/brandenburg-rta/rta-bounds/rta/seq"
)

// Propagated models arrivals induced by a precedence relationship:
// if Input is the arrival model of an upstream component A, and every
// activation of A triggers up to one activation of a downstream
// component B within ResponseTimeJitter time units, then Propagated
// upper-bounds the activations of B.
type Propagated struct {
	Input              Bound
	ResponseTimeJitter ptime.Duration
}

// WithJitter wraps an arrival bound to account for added release jitter.
func WithJitter(input Bound, jitter ptime.Duration) Propagated {
	return Propagated{Input: input, ResponseTimeJitter: jitter}
}

// NumberArrivals implements Bound.
func (p Propagated) NumberArrivals(delta ptime.Duration) int {
	if delta.IsZero() {
		return 0
	}
	return p.Input.NumberArrivals(delta.Add(p.ResponseTimeJitter))
}

// Steps implements Bound: 1, followed by the inner model's steps
// shifted earlier by the jitter, dropping any that would not land
// strictly after 1.
func (p Propagated) Steps() iter.Seq[ptime.Duration] {
	shifted := seq.Filter(p.Input.Steps(), func(x ptime.Duration) bool {
		return x > p.ResponseTimeJitter.Add(ptime.Epsilon)
	})
	shifted = seq.Map(shifted, func(x ptime.Duration) ptime.Duration {
		return x.SaturatingSub(p.ResponseTimeJitter)
	})
	return seq.Prepend(ptime.Epsilon, shifted)
}

// CloneWithJitter adds the new jitter atop the already-propagated jitter.
func (p Propagated) CloneWithJitter(jitter ptime.Duration) Bound {
	return Propagated{Input: p.Input, ResponseTimeJitter: p.ResponseTimeJitter.Add(jitter)}
}

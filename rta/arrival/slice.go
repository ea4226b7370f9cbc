package arrival

import (
	"iter"

	"github.com/brandenburg-rta/rta-bounds/rta/ptime"
)

// Slice restricts a bound to a sub-range of job indices, modeling a
// scenario where only the n-th through m-th arrivals of an upstream
// process are relevant downstream. The window is fixed: arrivals past
// Last are never counted, so it does not model a recurring every-k-th
// release.
type Slice struct {
	Input Bound
	First int
	Last  int
}

// NewSlice restricts input to arrivals first..last inclusive
// (1-based, matching the convention of NumberArrivals). Panics if the
// range is empty or first is not positive.
func NewSlice(input Bound, first, last int) Slice {
	if first < 1 || last < first {
		panic("arrival: Slice requires 1 <= first <= last")
	}
	return Slice{Input: input, First: first, Last: last}
}

// NumberArrivals implements Bound: the count of indices in
// [First, Last] that fall within the input's arrival count over delta.
func (s Slice) NumberArrivals(delta ptime.Duration) int {
	n := s.Input.NumberArrivals(delta)
	if n < s.First {
		return 0
	}
	if n > s.Last {
		n = s.Last
	}
	return n - s.First + 1
}

// Steps implements Bound via the brute-force oracle: a restriction of
// a possibly-irregular input bound to an index window has no general
// cheaper closed form.
func (s Slice) Steps() iter.Seq[ptime.Duration] {
	return BruteForceSteps(s)
}

// CloneWithJitter implements Bound.
func (s Slice) CloneWithJitter(jitter ptime.Duration) Bound {
	return WithJitter(s, jitter)
}

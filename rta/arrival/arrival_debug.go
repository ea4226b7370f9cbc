//go:build ratadebug

package arrival

import (
	"fmt"

	"github.com/brandenburg-rta/rta-bounds/rta/ptime"
)

// debugPrefixLen bounds how many steps the cross-check compares before
// giving up; the brute-force oracle is quadratic in the values it
// scans, so an unbounded comparison would defeat its purpose as a
// cheap sanity check.
const debugPrefixLen = 64

// AssertStepsMatch panics if b's overridden Steps() disagrees with the
// brute-force oracle on the first debugPrefixLen steps. Only compiled
// under the ratadebug build tag; this is the Go equivalent of Rust's
// debug_assert_eq! comparing an efficient step iterator against
// ArrivalBound::brute_force_steps_iter.
func AssertStepsMatch(b Bound) {
	fast := make([]ptime.Duration, 0, debugPrefixLen)
	for d := range b.Steps() {
		fast = append(fast, d)
		if len(fast) == debugPrefixLen {
			break
		}
	}
	slow := make([]ptime.Duration, 0, debugPrefixLen)
	for d := range BruteForceSteps(b) {
		slow = append(slow, d)
		if len(slow) == debugPrefixLen {
			break
		}
	}
	n := len(fast)
	if len(slow) < n {
		n = len(slow)
	}
	for i := 0; i < n; i++ {
		if fast[i] != slow[i] {
			panic(fmt.Sprintf("arrival: Steps() diverges from brute force at index %d: %v != %v", i, fast[i], slow[i]))
		}
	}
}

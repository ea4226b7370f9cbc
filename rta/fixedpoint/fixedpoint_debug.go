//go:build ratadebug

package fixedpoint

import (
	"fmt"

	"github.com/brandenburg-rta/rta-bounds/rta/ptime"
	"github.com/brandenburg-rta/rta-bounds/rta/supply"
)

// AssertConverged is the brute-force oracle for Search: it scans
// delta = start, start+1, ... up to limit and panics if it finds a
// smaller fixed point than the one Search reported, which would mean
// Search returned an unsound (too-optimistic) response-time bound.
func AssertConverged(start, reported, limit ptime.Duration, demandAt func(ptime.Duration) ptime.Duration) {
	for delta := start; delta < reported; delta++ {
		if demandAt(delta) <= delta {
			panic(fmt.Sprintf("fixedpoint: brute force found an earlier fixed point at %s than reported %s", delta, reported))
		}
	}
	if reported <= limit && demandAt(reported) > reported {
		panic(fmt.Sprintf("fixedpoint: reported fixed point %s does not actually satisfy demand <= supply", reported))
	}
}

// AssertSupplyTimeConsistent cross-checks supplyBound.ServiceTime
// against a brute-force scan of ProvidedService, the debug-mode dual
// of AssertConverged for the supply side of the search.
func AssertSupplyTimeConsistent(supplyBound supply.Bound, amount ptime.Service, limit ptime.Duration) {
	reported := supplyBound.ServiceTime(amount)
	for delta := ptime.Duration(0); delta < reported && delta < limit; delta++ {
		if supplyBound.ProvidedService(delta) >= amount {
			panic(fmt.Sprintf("fixedpoint: brute force found an earlier sufficient delta %s than reported %s", delta, reported))
		}
	}
}

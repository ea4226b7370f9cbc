package cost

import "github.com/brandenburg-rta/rta-bounds/rta/ptime"

// Multiframe models a task whose successive jobs cycle through a
// fixed sequence of worst-case costs (e.g. a sporadic task whose every
// k-th job does extra bookkeeping work). The worst case for any
// window of n consecutive jobs is obtained by sliding the window over
// one full cycle and taking the most expensive alignment.
type Multiframe struct {
	Frames []ptime.Service
}

// NewMultiframe constructs a multiframe cost model. Panics if frames
// is empty.
func NewMultiframe(frames []ptime.Service) Multiframe {
	if len(frames) == 0 {
		panic("cost: Multiframe requires at least one frame")
	}
	return Multiframe{Frames: append([]ptime.Service(nil), frames...)}
}

// CostOfJobs implements Model: the worst-case sum of n consecutive
// frames, maximized over every starting offset within one cycle.
func (m Multiframe) CostOfJobs(n int) ptime.Service {
	if n <= 0 {
		return 0
	}
	k := len(m.Frames)
	worst := ptime.Service(0)
	for start := 0; start < k; start++ {
		total := ptime.Service(0)
		for i := 0; i < n; i++ {
			total = total.Add(m.Frames[(start+i)%k])
		}
		if total > worst {
			worst = total
		}
	}
	return worst
}

// LeastWCET implements Model: the cheapest single frame, since that is
// the least amount of processor time a response-time analysis may
// assume a job of this task needs.
func (m Multiframe) LeastWCET() ptime.Service {
	least := m.Frames[0]
	for _, f := range m.Frames[1:] {
		if f < least {
			least = f
		}
	}
	return least
}

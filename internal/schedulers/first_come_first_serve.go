package schedulers

import (
	"sort"

	"github.com/sirupsen/logrus"

	"schedsim/internal/core"
)

// firstComeFirstServe runs every process to completion in arrival order.
// Equal arrivals keep input order (stable sort). A single forward pass
// suffices: the only idle gaps are between the clock and the next arrival.
func firstComeFirstServe(procs []*core.Process) core.Timeline {
	logrus.Debug("running fcfs algorithm")

	ordered := append([]*core.Process(nil), procs...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Arrival < ordered[j].Arrival
	})

	timeline := core.Timeline{}
	now := 0
	for _, p := range ordered {
		if now < p.Arrival {
			timeline = append(timeline, idleSlice(now, p.Arrival))
			now = p.Arrival
		}
		timeline = append(timeline, core.Slice{Actor: p.Pid, Start: now, End: now + p.Burst})
		now += p.Burst
		p.Remaining = 0
	}
	return timeline
}

package schedulers

import (
	"github.com/sirupsen/logrus"

	"schedsim/internal/core"
)

// roundRobin serves a FIFO ready queue in slices of at most quantum ticks.
// Arrivals during a slice join the queue tail before the just-run process
// is re-enqueued, so they take queue priority over it. Separate turns of
// the same process are never coalesced, even when back to back.
func roundRobin(procs []*core.Process, quantum int) core.Timeline {
	logrus.Debug("running round robin algorithm with time quantum = ", quantum)

	timeline := core.Timeline{}
	var queue []*core.Process
	notArrived := procs
	now := 0

	for len(notArrived) > 0 || len(queue) > 0 {
		notArrived = admitInArrivalOrder(notArrived, now, &queue)
		if len(queue) == 0 {
			next := earliestArrival(notArrived)
			timeline = append(timeline, idleSlice(now, next))
			now = next
			continue
		}

		p := queue[0]
		queue = queue[1:]
		run := min(quantum, p.Remaining)
		timeline = append(timeline, core.Slice{Actor: p.Pid, Start: now, End: now + run})
		p.Remaining -= run
		now += run

		notArrived = admitInArrivalOrder(notArrived, now, &queue)
		if !p.Finished() {
			queue = append(queue, p)
		}
	}
	return timeline
}

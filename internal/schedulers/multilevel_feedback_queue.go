package schedulers

import (
	"github.com/sirupsen/logrus"

	"schedsim/internal/core"
)

// multilevelFeedbackQueue layers round robin queues with growing quanta on
// top of a final run-to-completion level. New arrivals enter level 0; a
// process that exhausts its level quantum demotes one level; the lowest
// non-empty level is always served next. Mid-slice arrivals are admitted
// before the demoted process re-queues, as in plain round robin.
func multilevelFeedbackQueue(procs []*core.Process, levelQuanta []int) core.Timeline {
	logrus.Debug("running mlfq algorithm with level quanta = ", levelQuanta)

	// queues[len(levelQuanta)] is the final FCFS level
	queues := make([][]*core.Process, len(levelQuanta)+1)
	timeline := core.Timeline{}
	notArrived := procs
	now := 0

	for {
		notArrived = admitInArrivalOrder(notArrived, now, &queues[0])

		level := firstNonEmptyLevel(queues)
		if level == -1 {
			if len(notArrived) == 0 {
				break
			}
			next := earliestArrival(notArrived)
			timeline = append(timeline, idleSlice(now, next))
			now = next
			continue
		}

		p := queues[level][0]
		queues[level] = queues[level][1:]

		run := p.Remaining
		if level < len(levelQuanta) {
			run = min(levelQuanta[level], p.Remaining)
		}
		timeline = append(timeline, core.Slice{Actor: p.Pid, Start: now, End: now + run})
		p.Remaining -= run
		now += run

		notArrived = admitInArrivalOrder(notArrived, now, &queues[0])
		if !p.Finished() {
			demoted := min(level+1, len(levelQuanta))
			queues[demoted] = append(queues[demoted], p)
		}
	}
	return timeline
}

func firstNonEmptyLevel(queues [][]*core.Process) int {
	for i, q := range queues {
		if len(q) > 0 {
			return i
		}
	}
	return -1
}

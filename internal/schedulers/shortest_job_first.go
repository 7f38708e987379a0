package schedulers

import (
	"github.com/sirupsen/logrus"

	"schedsim/internal/core"
)

// shortestJobFirst selects the ready process with the smallest total burst,
// ties broken by earliest arrival, and runs it to completion.
func shortestJobFirst(procs []*core.Process) core.Timeline {
	logrus.Debug("running sjf algorithm")
	return runNonpreemptive(procs, func(a, b *core.Process) bool {
		if a.Burst != b.Burst {
			return a.Burst < b.Burst
		}
		return a.Arrival < b.Arrival
	})
}

// shortestRemainingTimeFirst is the preemptive variant: each tick the
// arrived, unfinished process with the smallest remaining time runs.
func shortestRemainingTimeFirst(procs []*core.Process) core.Timeline {
	logrus.Debug("running srtf algorithm")
	return runPreemptive(procs, func(a, b *core.Process) bool {
		if a.Remaining != b.Remaining {
			return a.Remaining < b.Remaining
		}
		return a.Arrival < b.Arrival
	})
}

package schedulers

import (
	"github.com/sirupsen/logrus"

	"schedsim/internal/core"
)

// priorityNonpreemptive selects the ready process with the highest priority
// (lowest value), ties broken by earliest arrival, and runs it to completion.
func priorityNonpreemptive(procs []*core.Process) core.Timeline {
	logrus.Debug("running priority algorithm")
	return runNonpreemptive(procs, func(a, b *core.Process) bool {
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return a.Arrival < b.Arrival
	})
}

// priorityPreemptive re-evaluates the (priority, arrival, remaining) chain
// every tick, so a higher-priority arrival takes the CPU immediately.
func priorityPreemptive(procs []*core.Process) core.Timeline {
	logrus.Debug("running preemptive priority algorithm")
	return runPreemptive(procs, func(a, b *core.Process) bool {
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if a.Arrival != b.Arrival {
			return a.Arrival < b.Arrival
		}
		return a.Remaining < b.Remaining
	})
}

package schedulers

import (
	"schedsim/internal/core"
	"schedsim/internal/requests"
	"schedsim/internal/responses"
)

// Policy keys accepted by Schedule.
const (
	PolicyFirstComeFirstServe     = "fcfs"
	PolicyShortestJobFirst        = "sjf-np"
	PolicyShortestRemainingTime   = "sjf-p"
	PolicyRoundRobin              = "rr"
	PolicyPriority                = "priority-np"
	PolicyPriorityPreemptive      = "priority-p"
	PolicyMultilevelFeedbackQueue = "mlfq"
)

// Options carries the per-policy tuning knobs. Quantum applies to rr only,
// LevelQuanta to mlfq only; both are ignored by the other policies.
type Options struct {
	Quantum     int
	LevelQuanta []int
}

// Schedule validates the batch, simulates it under the named policy and
// returns the timeline with the derived per-process metrics. The input
// jobs are never mutated; every run drives its own private Process copies,
// so concurrent calls are safe. An empty batch yields an empty timeline
// and null averages. Validation failures reject the run before any
// simulation starts.
func Schedule(policy string, jobs []requests.Job, opts Options) (responses.ScheduleResponse, error) {
	if err := requests.ValidateJobs(jobs); err != nil {
		return responses.ScheduleResponse{}, err
	}

	quantum := 0
	var timeline core.Timeline
	switch policy {
	case PolicyFirstComeFirstServe:
		timeline = firstComeFirstServe(newProcesses(jobs))
	case PolicyShortestJobFirst:
		timeline = shortestJobFirst(newProcesses(jobs))
	case PolicyShortestRemainingTime:
		timeline = shortestRemainingTimeFirst(newProcesses(jobs))
	case PolicyRoundRobin:
		if opts.Quantum <= 0 {
			return responses.ScheduleResponse{}, core.Configurationf("round robin time quantum must be positive, got %d", opts.Quantum)
		}
		quantum = opts.Quantum
		timeline = roundRobin(newProcesses(jobs), quantum)
	case PolicyPriority:
		timeline = priorityNonpreemptive(newProcesses(jobs))
	case PolicyPriorityPreemptive:
		timeline = priorityPreemptive(newProcesses(jobs))
	case PolicyMultilevelFeedbackQueue:
		for _, q := range opts.LevelQuanta {
			if q <= 0 {
				return responses.ScheduleResponse{}, core.Configurationf("mlfq level time quantum must be positive, got %d", q)
			}
		}
		timeline = multilevelFeedbackQueue(newProcesses(jobs), opts.LevelQuanta)
	default:
		return responses.ScheduleResponse{}, core.Configurationf("unknown policy %q", policy)
	}

	return buildResponse(policy, quantum, jobs, timeline), nil
}

func newProcesses(jobs []requests.Job) []*core.Process {
	procs := make([]*core.Process, len(jobs))
	for i, job := range jobs {
		procs[i] = core.NewProcess(job.Pid, job.Arrival, job.Burst, job.Priority)
	}
	return procs
}

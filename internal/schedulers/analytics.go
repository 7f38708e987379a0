package schedulers

import (
	"schedsim/internal/core"
	"schedsim/internal/requests"
	"schedsim/internal/responses"
	"schedsim/internal/util"
)

// buildResponse derives the per-process timing rows and batch aggregates
// from a finished timeline. Rows keep the input descriptor order.
func buildResponse(policy string, quantum int, jobs []requests.Job, timeline core.Timeline) responses.ScheduleResponse {
	details := make([]responses.ProcessResponse, 0, len(jobs))
	for _, job := range jobs {
		details = append(details, generateProcessDetails(job, timeline))
	}

	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(details)

	totalTime := timeline.Makespan()
	idleTime := timeline.Occupancy(core.IdleActor)
	var utilization, throughput *float64
	if totalTime > 0 {
		u := 1 - float64(idleTime)/float64(totalTime)
		tp := float64(len(jobs)) / float64(totalTime)
		utilization = &u
		throughput = &tp
	}

	return responses.ScheduleResponse{
		Policy:                policy,
		Quantum:               quantum,
		Timeline:              timeline,
		TotalTime:             totalTime,
		IdleTime:              idleTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		Details:               details,
	}
}

// generateProcessDetails computes one row. Turnaround is completion minus
// arrival, waiting is turnaround minus burst, response is first start minus
// arrival; all null when the pid never appears on the timeline.
func generateProcessDetails(job requests.Job, timeline core.Timeline) responses.ProcessResponse {
	row := responses.ProcessResponse{
		Pid:      job.Pid,
		Arrival:  job.Arrival,
		Burst:    job.Burst,
		Priority: job.Priority,
	}
	start, completion, ok := timeline.Span(job.Pid)
	if !ok {
		return row
	}
	turnAround := completion - job.Arrival
	waiting := turnAround - job.Burst
	response := start - job.Arrival
	row.StartTime = &start
	row.CompletionTime = &completion
	row.TurnAroundTime = &turnAround
	row.WaitingTime = &waiting
	row.ResponseTime = &response
	return row
}

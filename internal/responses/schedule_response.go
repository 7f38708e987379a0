package responses

import "schedsim/internal/core"

// ProcessResponse is the per-process timing row derived from a timeline.
// The pointer fields are null for a process that never reached the CPU.
type ProcessResponse struct {
	Pid            string `json:"pid"`
	Arrival        int    `json:"arrival"`
	Burst          int    `json:"burst"`
	Priority       int    `json:"priority"`
	StartTime      *int   `json:"start_time"`
	CompletionTime *int   `json:"completion_time"`
	TurnAroundTime *int   `json:"turn_around_time"`
	WaitingTime    *int   `json:"waiting_time"`
	ResponseTime   *int   `json:"response_time"`
}

// ScheduleResponse bundles the timeline with the derived analytics.
// Averages are taken over completed rows only and are null when nothing
// completed; utilization and throughput are null for an empty timeline.
type ScheduleResponse struct {
	Policy                string            `json:"policy"`
	Quantum               int               `json:"quantum,omitempty"`
	Timeline              core.Timeline     `json:"timeline"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	CpuUtilization        *float64          `json:"cpu_utilization"`
	CpuThroughput         *float64          `json:"cpu_throughput"`
	AverageWaitingTime    *float64          `json:"average_waiting_time"`
	AverageResponseTime   *float64          `json:"average_response_time"`
	AverageTurnAroundTime *float64          `json:"average_turn_around_time"`
	Details               []ProcessResponse `json:"details"`
}

package requests

import (
	"strconv"
	"strings"

	"schedsim/internal/core"
)

// Job is one validated process descriptor as submitted by a client.
type Job struct {
	Pid      string `json:"pid"`
	Arrival  int    `json:"arrival"`
	Burst    int    `json:"burst"`
	Priority int    `json:"priority"`
}

// ScheduleRequest is the API request body. Descriptors come either as an
// explicit job list or as CSV-style text lines; Quantum overrides the
// configured round robin time quantum when present.
type ScheduleRequest struct {
	Jobs     []Job  `json:"jobs"`
	JobLines string `json:"job_lines"`
	Policy   string `json:"policy"`
	Quantum  *int   `json:"quantum"`
}

// ResolvedJobs returns the explicit job list, or parses JobLines when no
// explicit list was given. An empty request resolves to an empty batch.
func (r *ScheduleRequest) ResolvedJobs() ([]Job, error) {
	if len(r.Jobs) > 0 {
		return r.Jobs, nil
	}
	if strings.TrimSpace(r.JobLines) != "" {
		return ParseJobLines(r.JobLines)
	}
	return nil, nil
}

// ParseJobLines parses descriptor lines of the form
// "pid,arrival,burst[,priority]". Blank lines are skipped and priority
// defaults to 0. Any malformed line rejects the whole batch.
func ParseJobLines(text string) ([]Job, error) {
	var jobs []Job
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) < 3 || len(parts) > 4 {
			return nil, core.Descriptorf("line %q: want pid,arrival,burst[,priority]", line)
		}
		arrival, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, core.Descriptorf("line %q: arrival is not an integer", line)
		}
		burst, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			return nil, core.Descriptorf("line %q: burst is not an integer", line)
		}
		priority := 0
		if len(parts) == 4 {
			priority, err = strconv.Atoi(strings.TrimSpace(parts[3]))
			if err != nil {
				return nil, core.Descriptorf("line %q: priority is not an integer", line)
			}
		}
		jobs = append(jobs, Job{
			Pid:      strings.TrimSpace(parts[0]),
			Arrival:  arrival,
			Burst:    burst,
			Priority: priority,
		})
	}
	return jobs, nil
}

// ValidateJobs enforces the engine's input contract: non-empty unique pids,
// arrival >= 0 and burst > 0. The engine itself assumes validated input.
func ValidateJobs(jobs []Job) error {
	seen := make(map[string]struct{}, len(jobs))
	for _, job := range jobs {
		if job.Pid == "" {
			return core.Descriptorf("empty pid")
		}
		if _, dup := seen[job.Pid]; dup {
			return core.Descriptorf("duplicate pid %q", job.Pid)
		}
		seen[job.Pid] = struct{}{}
		if job.Arrival < 0 {
			return core.Descriptorf("pid %s: arrival must be >= 0, got %d", job.Pid, job.Arrival)
		}
		if job.Burst <= 0 {
			return core.Descriptorf("pid %s: burst must be > 0, got %d", job.Pid, job.Burst)
		}
	}
	return nil
}

package core

// Process is the mutable simulation state of one process during a single
// run. Remaining starts at Burst and is decremented only while the process
// occupies the CPU; Remaining reaching zero is the completion condition.
// Every run works on its own private Process instances, so nothing is
// shared between runs or between policies.
type Process struct {
	Pid       string
	Arrival   int
	Burst     int
	Priority  int // lower value = higher priority
	Remaining int
}

func NewProcess(pid string, arrival, burst, priority int) *Process {
	return &Process{
		Pid:       pid,
		Arrival:   arrival,
		Burst:     burst,
		Priority:  priority,
		Remaining: burst,
	}
}

func (p *Process) Finished() bool {
	return p.Remaining == 0
}

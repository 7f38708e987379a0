package core

// IdleActor marks timeline slices during which no process occupies the CPU.
const IdleActor = "idle"

// Slice is one Gantt chart entry: Actor occupies the CPU over [Start, End).
type Slice struct {
	Actor string `json:"actor"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

func (s Slice) Length() int {
	return s.End - s.Start
}

// Timeline is the chronological CPU occupancy of one simulation run:
// slices are non-overlapping, sorted by start and contiguous over
// [0, Makespan()), with gaps explicitly marked by IdleActor.
type Timeline []Slice

// Makespan returns the end of the last slice, or 0 for an empty timeline.
func (t Timeline) Makespan() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].End
}

// Occupancy returns the total number of ticks attributed to actor.
func (t Timeline) Occupancy(actor string) int {
	total := 0
	for _, s := range t {
		if s.Actor == actor {
			total += s.Length()
		}
	}
	return total
}

// Span returns the first tick actor starts running and the last tick it
// finishes. ok is false when the actor never appears on the timeline.
func (t Timeline) Span(actor string) (start, completion int, ok bool) {
	for _, s := range t {
		if s.Actor != actor {
			continue
		}
		if !ok {
			start = s.Start
			ok = true
		}
		completion = s.End
	}
	return start, completion, ok
}

package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedsim/internal/core"
	"schedsim/internal/requests"
	"schedsim/internal/responses"
)

// assertRow checks the derived timing fields of one completed process row.
func assertRow(t *testing.T, row responses.ProcessResponse, start, completion, turnAround, waiting, response int) {
	t.Helper()
	require.NotNil(t, row.StartTime, "pid %s: start", row.Pid)
	assert.Equal(t, start, *row.StartTime, "pid %s: start", row.Pid)
	assert.Equal(t, completion, *row.CompletionTime, "pid %s: completion", row.Pid)
	assert.Equal(t, turnAround, *row.TurnAroundTime, "pid %s: turnaround", row.Pid)
	assert.Equal(t, waiting, *row.WaitingTime, "pid %s: waiting", row.Pid)
	assert.Equal(t, response, *row.ResponseTime, "pid %s: response", row.Pid)
}

// assertValidTimeline checks the structural invariants every policy must
// honor: slices are contiguous from tick 0, non-overlapping and sorted;
// each pid's total occupancy equals its burst; idle slices end exactly at
// the next pending arrival.
func assertValidTimeline(t *testing.T, jobs []requests.Job, timeline core.Timeline) {
	t.Helper()

	prevEnd := 0
	for i, slice := range timeline {
		assert.Less(t, slice.Start, slice.End, "slice %d: start < end", i)
		assert.Equal(t, prevEnd, slice.Start, "slice %d: timeline must be contiguous", i)
		prevEnd = slice.End

		if slice.Actor == core.IdleActor {
			next := -1
			for _, job := range jobs {
				if job.Arrival > slice.Start && (next == -1 || job.Arrival < next) {
					next = job.Arrival
				}
			}
			assert.Equal(t, next, slice.End, "slice %d: idle must end at the next arrival", i)
		}
	}

	for _, job := range jobs {
		assert.Equal(t, job.Burst, timeline.Occupancy(job.Pid), "pid %s: occupancy must equal burst", job.Pid)
	}
}

package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedsim/internal/core"
	"schedsim/internal/requests"
)

func TestShortestJobFirst_PicksSmallestBurst(t *testing.T) {
	jobs := []requests.Job{
		{Pid: "P1", Arrival: 0, Burst: 7},
		{Pid: "P2", Arrival: 2, Burst: 4},
		{Pid: "P3", Arrival: 4, Burst: 1},
		{Pid: "P4", Arrival: 5, Burst: 4},
	}

	response, err := Schedule(PolicyShortestJobFirst, jobs, Options{})
	require.NoError(t, err)

	// P3 is shortest when P1 completes; P2 beats P4 on arrival.
	want := core.Timeline{
		{Actor: "P1", Start: 0, End: 7},
		{Actor: "P3", Start: 7, End: 8},
		{Actor: "P2", Start: 8, End: 12},
		{Actor: "P4", Start: 12, End: 16},
	}
	assert.Equal(t, want, response.Timeline)
}

func TestShortestJobFirst_IdleJumpToNextArrival(t *testing.T) {
	jobs := []requests.Job{
		{Pid: "A", Arrival: 2, Burst: 3},
		{Pid: "B", Arrival: 10, Burst: 2},
	}

	response, err := Schedule(PolicyShortestJobFirst, jobs, Options{})
	require.NoError(t, err)

	want := core.Timeline{
		{Actor: core.IdleActor, Start: 0, End: 2},
		{Actor: "A", Start: 2, End: 5},
		{Actor: core.IdleActor, Start: 5, End: 10},
		{Actor: "B", Start: 10, End: 12},
	}
	assert.Equal(t, want, response.Timeline)
}

func TestShortestRemainingTimeFirst_PreemptsOnShorterArrival(t *testing.T) {
	jobs := []requests.Job{
		{Pid: "P1", Arrival: 0, Burst: 8},
		{Pid: "P2", Arrival: 1, Burst: 4},
		{Pid: "P3", Arrival: 2, Burst: 9},
		{Pid: "P4", Arrival: 3, Burst: 5},
	}

	response, err := Schedule(PolicyShortestRemainingTime, jobs, Options{})
	require.NoError(t, err)

	want := core.Timeline{
		{Actor: "P1", Start: 0, End: 1},
		{Actor: "P2", Start: 1, End: 5},
		{Actor: "P4", Start: 5, End: 10},
		{Actor: "P1", Start: 10, End: 17},
		{Actor: "P3", Start: 17, End: 26},
	}
	assert.Equal(t, want, response.Timeline)

	// P1 was preempted once: waited 0..0 and 1..10.
	assertRow(t, response.Details[0], 0, 17, 17, 9, 0)
}

func TestShortestRemainingTimeFirst_CoalescesUninterruptedTicks(t *testing.T) {
	jobs := []requests.Job{
		{Pid: "P1", Arrival: 0, Burst: 5},
	}

	response, err := Schedule(PolicyShortestRemainingTime, jobs, Options{})
	require.NoError(t, err)

	want := core.Timeline{
		{Actor: "P1", Start: 0, End: 5},
	}
	assert.Equal(t, want, response.Timeline)
}

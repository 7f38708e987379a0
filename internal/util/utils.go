package util

import "schedsim/internal/responses"

// CalculateAverage averages waiting, response and turnaround time over the
// rows that completed. Rows with null timings are skipped; with no
// completed rows all three averages are nil.
func CalculateAverage(processDetails []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTurnAroundTime *float64) {
	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64
	var completed int

	for _, process := range processDetails {
		if process.TurnAroundTime == nil {
			continue
		}
		waitingTimeSum += float64(*process.WaitingTime)
		responseTimeSum += float64(*process.ResponseTime)
		turnAroundTimeSum += float64(*process.TurnAroundTime)
		completed++
	}

	if completed == 0 {
		return nil, nil, nil
	}

	count := float64(completed)
	avgWaiting := waitingTimeSum / count
	avgResponse := responseTimeSum / count
	avgTurnAround := turnAroundTimeSum / count
	return &avgWaiting, &avgResponse, &avgTurnAround
}

package services

import (
	"delivery-analytics-service/internal/domain"
)

// lateStartAnomalies counts tours that departed at or before their planned
// start yet whose last stop still exceeded the punctuality threshold. That
// combination signals lateness that built up mid-route rather than at
// departure. Each tour counts once, regardless of task count.
func lateStartAnomalies(records []domain.MergedRecord, thresholdMinutes int) int {
	type lastTask struct {
		sequence int
		delta    float64
		known    bool
	}

	tours := make(map[string]*domain.Tour)
	last := make(map[string]lastTask)

	for _, r := range records {
		if r.Tour == nil {
			continue
		}
		id := r.Tour.UniqueID
		tours[id] = r.Tour

		cur, seen := last[id]
		if seen && r.Task.Sequence <= cur.sequence {
			continue
		}
		delta, known := r.Task.DelayMinutes()
		// A MAD-excluded final stop carries no transport lateness to flag.
		last[id] = lastTask{sequence: r.Task.Sequence, delta: delta, known: known && !r.MadExcluded}
	}

	count := 0
	for id, l := range last {
		if !l.known {
			continue
		}
		if tours[id].DepartedOnTime() && l.delta > float64(thresholdMinutes) {
			count++
		}
	}

	return count
}

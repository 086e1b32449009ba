package services

import (
	"fmt"

	"delivery-analytics-service/internal/domain"
)

// saturationSeries compares demand against realized capacity hour by hour:
// for each hour of day, the cumulative count of tasks planned to arrive by
// then minus the cumulative count actually completed by then. A positive
// gap is backlog, a negative one is slack.
func saturationSeries(records []domain.MergedRecord) []domain.SaturationPoint {
	var planned, completed [24]int
	for _, r := range records {
		if r.Task.PlannedArrival != nil {
			planned[r.Task.PlannedArrival.Hour()]++
		}
		if r.Task.RealizedArrival != nil {
			completed[r.Task.RealizedArrival.Hour()]++
		}
	}

	points := make([]domain.SaturationPoint, 0, 24)
	cumPlanned, cumCompleted := 0, 0
	for h := 0; h < 24; h++ {
		cumPlanned += planned[h]
		cumCompleted += completed[h]
		points = append(points, domain.SaturationPoint{
			Hour:      fmt.Sprintf("%02d:00", h),
			Planned:   cumPlanned,
			Completed: cumCompleted,
			Gap:       cumPlanned - cumCompleted,
		})
	}

	return points
}

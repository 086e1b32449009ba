package services

import (
	"fmt"

	"delivery-analytics-service/internal/domain"
)

// buildHistogram buckets delay magnitudes into five fixed ranges whose
// boundaries derive from the punctuality threshold: the on-time band is the
// same one Classify uses, so bucket totals reconcile exactly with the
// late/on-time/early counts.
func buildHistogram(records []domain.MergedRecord, thresholdMinutes int) []domain.HistogramBucket {
	t := thresholdMinutes
	wide := thresholdMinutes + 15

	buckets := []domain.HistogramBucket{
		{Label: fmt.Sprintf("more than %d min early", wide), ToMinutes: intPtr(-wide)},
		{Label: fmt.Sprintf("%d-%d min early", t, wide), FromMinutes: intPtr(-wide), ToMinutes: intPtr(-t)},
		{Label: fmt.Sprintf("on time (within %d min)", t), FromMinutes: intPtr(-t), ToMinutes: intPtr(t)},
		{Label: fmt.Sprintf("%d-%d min late", t, wide), FromMinutes: intPtr(t), ToMinutes: intPtr(wide)},
		{Label: fmt.Sprintf("more than %d min late", wide), FromMinutes: intPtr(wide)},
	}

	for _, r := range records {
		delta, ok := r.Task.DelayMinutes()
		if !ok || r.MadExcluded {
			continue
		}

		var idx int
		switch {
		case delta > float64(wide):
			idx = 4
		case delta > float64(t):
			idx = 3
		case delta >= -float64(t):
			idx = 2
		case delta >= -float64(wide):
			idx = 1
		default:
			idx = 0
		}
		buckets[idx].Count++
	}

	return buckets
}

func intPtr(v int) *int {
	return &v
}

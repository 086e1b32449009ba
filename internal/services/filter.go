package services

import (
	"time"

	"delivery-analytics-service/internal/domain"
	"delivery-analytics-service/internal/lookup"
)

// ApplyFilters reduces the merged record set to the working subset every
// aggregate is computed over.
//
// Each present filter key contributes one independent predicate and the
// predicates combine as a conjunction; an absent key places no restriction.
// Records without a parent tour fail the depot, warehouse, and mobile
// predicates whenever those are active, because the tour carries the fields
// they test. The original relative order is preserved.
func ApplyFilters(records []domain.MergedRecord, filters domain.FilterSet, depots *lookup.DepotTable) []domain.MergedRecord {
	days, periodActive := filters.PeriodDays()

	var cutoff time.Time
	if periodActive {
		latest, ok := latestRealizedDay(records)
		if !ok {
			periodActive = false
		} else {
			// Trailing window: the latest day present in the data counts
			// as day one.
			cutoff = latest.AddDate(0, 0, -(days - 1))
		}
	}

	threshold := float64(filters.Threshold())

	out := make([]domain.MergedRecord, 0, len(records))
	for _, r := range records {
		if periodActive {
			if r.Task.RealizedArrival == nil {
				continue
			}
			if dayOf(*r.Task.RealizedArrival).Before(cutoff) {
				continue
			}
		}

		if filters.Depot != "" {
			if r.Tour == nil || depots.Depot(r.Tour.Warehouse) != filters.Depot {
				continue
			}
		}

		if filters.Warehouse != "" {
			if r.Tour == nil || r.Tour.Warehouse != filters.Warehouse {
				continue
			}
		}

		if filters.Tours100Mobile {
			if r.Tour == nil || !r.Tour.MobileTracked {
				continue
			}
		}

		// MAD exclusion suppresses the attribution of lateness, it does not
		// hide the stop: the record stays in total counts, and on-time or
		// early deliveries on a flagged day are untouched.
		if filters.ExcludeMadDelays && filters.MadFlagged(r.MadKey()) {
			if delta, ok := r.Task.DelayMinutes(); ok && delta > threshold {
				r.MadExcluded = true
			}
		}

		out = append(out, r)
	}

	return out
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// latestRealizedDay anchors the trailing period window on the data itself
// rather than on the wall clock, which keeps repeated runs deterministic.
func latestRealizedDay(records []domain.MergedRecord) (time.Time, bool) {
	var latest time.Time
	found := false
	for _, r := range records {
		if r.Task.RealizedArrival == nil {
			continue
		}
		day := dayOf(*r.Task.RealizedArrival)
		if !found || day.After(latest) {
			latest = day
			found = true
		}
	}
	return latest, found
}

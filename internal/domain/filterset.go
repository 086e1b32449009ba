package domain

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultPunctualityThreshold is the delay magnitude, in minutes, beyond
// which a delivery counts as late (or early) when no threshold filter is set.
const DefaultPunctualityThreshold = 15

// Recognized period filter values. Anything else disables the predicate.
const (
	PeriodAll   = "all"
	PeriodWeek  = "7"
	PeriodMonth = "30"
)

// FilterSet is the sparse set of active filters for one analysis run.
// Zero values mean "no restriction" for that dimension; only the
// punctuality threshold has an engine-side default.
type FilterSet struct {
	Period               string
	Depot                string
	Warehouse            string // exact match on the tour's warehouse
	PunctualityThreshold *int
	MaxWeightThreshold   *float64 // kg
	Tours100Mobile       bool
	ExcludeMadDelays     bool
	MadDelays            map[string]struct{} // "warehouse|YYYY-MM-DD"
}

// Threshold returns the active punctuality threshold in minutes.
func (f FilterSet) Threshold() int {
	if f.PunctualityThreshold != nil {
		return *f.PunctualityThreshold
	}
	return DefaultPunctualityThreshold
}

// PeriodDays returns the trailing-window length in days and whether the
// period predicate is active at all.
func (f FilterSet) PeriodDays() (int, bool) {
	switch f.Period {
	case PeriodWeek:
		return 7, true
	case PeriodMonth:
		return 30, true
	}
	return 0, false
}

// MadFlagged reports whether a "warehouse|date" pair is operator-flagged as
// a preparation delay.
func (f FilterSet) MadFlagged(key string) bool {
	_, ok := f.MadDelays[key]
	return ok
}

// Canonical renders the filter set as a deterministic string, suitable for
// hashing into a cache key. Identical filter sets always produce identical
// encodings regardless of map iteration order.
func (f FilterSet) Canonical() string {
	mads := make([]string, 0, len(f.MadDelays))
	for k := range f.MadDelays {
		mads = append(mads, k)
	}
	sort.Strings(mads)

	var maxWeight string
	if f.MaxWeightThreshold != nil {
		maxWeight = fmt.Sprintf("%.3f", *f.MaxWeightThreshold)
	}

	return strings.Join([]string{
		"period=" + f.Period,
		"depot=" + f.Depot,
		"entrepot=" + f.Warehouse,
		fmt.Sprintf("threshold=%d", f.Threshold()),
		"maxWeight=" + maxWeight,
		fmt.Sprintf("mobile=%t", f.Tours100Mobile),
		fmt.Sprintf("excludeMad=%t", f.ExcludeMadDelays),
		"mad=" + strings.Join(mads, ","),
	}, ";")
}

package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"delivery-analytics-service/internal/domain"
	"delivery-analytics-service/internal/lookup"
)

// ErrNoData signals that the filtered record set is empty. Callers must be
// able to tell this apart from a populated result whose counts happen to be
// zero, so it is a sentinel rather than a zeroed bundle.
var ErrNoData = errors.New("analyze: no records after filtering")

// Classification of one delivery against the punctuality threshold.
type Classification int

const (
	ClassUnknown Classification = iota
	ClassEarly
	ClassOnTime
	ClassLate
)

// Classify buckets a delay (minutes, realized minus planned) against the
// punctuality threshold. A magnitude within the threshold is on time.
func Classify(deltaMinutes float64, thresholdMinutes int) Classification {
	t := float64(thresholdMinutes)
	switch {
	case deltaMinutes > t:
		return ClassLate
	case deltaMinutes < -t:
		return ClassEarly
	default:
		return ClassOnTime
	}
}

// Analyze computes the complete metrics bundle over the filtered record set.
//
// The engine is a pure function: no I/O, no mutation of its inputs, and
// bit-identical output for identical input. Missing optional fields degrade
// the specific metric (the record leaves that denominator) instead of
// aborting the run; the only failure is ErrNoData for an empty input.
func Analyze(
	records []domain.MergedRecord,
	filters domain.FilterSet,
	depots *lookup.DepotTable,
	carriers *lookup.CarrierTable,
) (*domain.AnalysisResult, error) {
	if len(records) == 0 {
		return nil, ErrNoData
	}

	threshold := filters.Threshold()
	maxWeight := filters.MaxWeightThreshold

	global := newGroupStats()
	for _, r := range records {
		global.add(r, threshold, maxWeight)
	}

	res := &domain.AnalysisResult{
		TotalTours:              len(global.tours),
		TotalTasks:              global.taskCount,
		ClassifiedTasks:         global.classified(),
		LateCount:               global.lateCount,
		OnTimeCount:             global.onTimeCount,
		EarlyCount:              global.earlyCount,
		PunctualityRateRealized: ratePct(global.onTimeCount, global.classified()),
		PunctualityRatePlanned:  ratePct(global.plannedOnTime, global.plannedKnown),
		AvgDelayMinutes:         mean(global.delaySum, global.delayCount),
		AvgRating:               mean(global.ratingSum, global.ratingCount),
		OverloadedToursCount:    len(global.overloadedTours),
		LateStartAnomalyCount:   lateStartAnomalies(records, threshold),
		Histogram:               buildHistogram(records, threshold),
		Saturation:              saturationSeries(records),
	}

	res.ByHour = breakdownRows(foldBy(records, threshold, maxWeight, hourKey))
	res.ByTwoHourSlot = breakdownRows(foldBy(records, threshold, maxWeight, slotKey))
	res.ByDayOfWeek = weekdayRows(foldBy(records, threshold, maxWeight, weekdayKey))
	res.ByWarehouse = breakdownRows(foldBy(records, threshold, maxWeight, warehouseKey))
	res.ByDepot = breakdownRows(foldBy(records, threshold, maxWeight, depotKey(depots)))
	res.Drivers = driverRows(foldBy(records, threshold, maxWeight, driverKey), carriers)
	res.Cities = geoRows(foldBy(records, threshold, maxWeight, cityKey))
	res.PostalCodes = geoRows(foldBy(records, threshold, maxWeight, postalKey))

	return res, nil
}

// groupStats is the running accumulator of the generic grouping fold.
// Sums are finalized into rates and averages only after every record has
// been folded, never mid-pass.
type groupStats struct {
	taskCount   int
	lateCount   int
	earlyCount  int
	onTimeCount int

	delaySum   float64
	delayCount int

	ratingSum   float64
	ratingCount int

	plannedOnTime int
	plannedKnown  int

	tours           map[string]struct{}
	overloadedTours map[string]struct{}
}

func newGroupStats() *groupStats {
	return &groupStats{
		tours:           make(map[string]struct{}),
		overloadedTours: make(map[string]struct{}),
	}
}

func (g *groupStats) add(r domain.MergedRecord, threshold int, maxWeight *float64) {
	g.taskCount++

	if delta, ok := r.Task.DelayMinutes(); ok && !r.MadExcluded {
		switch Classify(delta, threshold) {
		case ClassLate:
			g.lateCount++
		case ClassEarly:
			g.earlyCount++
		case ClassOnTime:
			g.onTimeCount++
		}
		g.delaySum += delta
		g.delayCount++
	}

	if r.Task.Rating != nil {
		g.ratingSum += *r.Task.Rating
		g.ratingCount++
	}

	if onTime, ok := r.Task.PlannedWithinWindow(); ok {
		g.plannedKnown++
		if onTime {
			g.plannedOnTime++
		}
	}

	// Tour-level facts count once per distinct tour, independent of how
	// many of its tasks fall into the group.
	if r.Tour != nil {
		g.tours[r.Tour.UniqueID] = struct{}{}
		if r.Tour.Overloaded(maxWeight) {
			g.overloadedTours[r.Tour.UniqueID] = struct{}{}
		}
	}
}

func (g *groupStats) classified() int {
	return g.lateCount + g.onTimeCount + g.earlyCount
}

func (g *groupStats) row(key string) domain.BreakdownRow {
	return domain.BreakdownRow{
		Key:                  key,
		TaskCount:            g.taskCount,
		TourCount:            len(g.tours),
		LateCount:            g.lateCount,
		EarlyCount:           g.earlyCount,
		OnTimeCount:          g.onTimeCount,
		PunctualityRate:      ratePct(g.onTimeCount, g.classified()),
		AvgDelayMinutes:      mean(g.delaySum, g.delayCount),
		AvgRating:            mean(g.ratingSum, g.ratingCount),
		OverloadedToursCount: len(g.overloadedTours),
	}
}

// keyFunc extracts the grouping key for one record. ok=false drops the
// record from that dimension only, never from the totals.
type keyFunc func(domain.MergedRecord) (string, bool)

func foldBy(records []domain.MergedRecord, threshold int, maxWeight *float64, key keyFunc) map[string]*groupStats {
	groups := make(map[string]*groupStats)
	for _, r := range records {
		k, ok := key(r)
		if !ok {
			continue
		}
		g := groups[k]
		if g == nil {
			g = newGroupStats()
			groups[k] = g
		}
		g.add(r, threshold, maxWeight)
	}
	return groups
}

func hourKey(r domain.MergedRecord) (string, bool) {
	if r.Task.RealizedArrival == nil {
		return "", false
	}
	return fmt.Sprintf("%02d:00", r.Task.RealizedArrival.Hour()), true
}

func slotKey(r domain.MergedRecord) (string, bool) {
	if r.Task.RealizedArrival == nil {
		return "", false
	}
	h := r.Task.RealizedArrival.Hour() / 2 * 2
	return fmt.Sprintf("%02dh-%02dh", h, h+2), true
}

func weekdayKey(r domain.MergedRecord) (string, bool) {
	if r.Task.RealizedArrival == nil {
		return "", false
	}
	return r.Task.RealizedArrival.Weekday().String(), true
}

func warehouseKey(r domain.MergedRecord) (string, bool) {
	w := r.Warehouse()
	return w, w != ""
}

func depotKey(depots *lookup.DepotTable) keyFunc {
	return func(r domain.MergedRecord) (string, bool) {
		w := r.Warehouse()
		if w == "" {
			return "", false
		}
		return depots.Depot(w), true
	}
}

func driverKey(r domain.MergedRecord) (string, bool) {
	if r.Tour == nil || r.Tour.Driver == "" {
		return "", false
	}
	return r.Tour.Driver, true
}

func cityKey(r domain.MergedRecord) (string, bool) {
	return r.Task.City, r.Task.City != ""
}

func postalKey(r domain.MergedRecord) (string, bool) {
	return r.Task.PostalCode, r.Task.PostalCode != ""
}

// breakdownRows finalizes a fold into rows sorted by key, which keeps the
// output deterministic across runs.
func breakdownRows(groups map[string]*groupStats) []domain.BreakdownRow {
	keys := sortedKeys(groups)
	rows := make([]domain.BreakdownRow, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, groups[k].row(k))
	}
	return rows
}

// Display order for day-of-week rows is the fixed week order, not
// alphabetical or count order.
var weekOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

func weekdayRows(groups map[string]*groupStats) []domain.BreakdownRow {
	rows := make([]domain.BreakdownRow, 0, len(groups))
	for _, day := range weekOrder {
		if g, ok := groups[day.String()]; ok {
			rows = append(rows, g.row(day.String()))
		}
	}
	return rows
}

func driverRows(groups map[string]*groupStats, carriers *lookup.CarrierTable) []domain.DriverRow {
	keys := sortedKeys(groups)
	rows := make([]domain.DriverRow, 0, len(keys))
	for _, driver := range keys {
		g := groups[driver]
		rows = append(rows, domain.DriverRow{
			Driver:          driver,
			Carrier:         carriers.Carrier(driver),
			TaskCount:       g.taskCount,
			TourCount:       len(g.tours),
			LateCount:       g.lateCount,
			EarlyCount:      g.earlyCount,
			OnTimeCount:     g.onTimeCount,
			PunctualityRate: ratePct(g.onTimeCount, g.classified()),
			AvgDelayMinutes: mean(g.delaySum, g.delayCount),
			AvgRating:       mean(g.ratingSum, g.ratingCount),
		})
	}
	return rows
}

func geoRows(groups map[string]*groupStats) []domain.GeoRow {
	keys := sortedKeys(groups)
	rows := make([]domain.GeoRow, 0, len(keys))
	for _, k := range keys {
		g := groups[k]
		rows = append(rows, domain.GeoRow{
			Key:                     k,
			TaskCount:               g.taskCount,
			LateCount:               g.lateCount,
			PunctualityRatePlanned:  ratePct(g.plannedOnTime, g.plannedKnown),
			PunctualityRateRealized: ratePct(g.onTimeCount, g.classified()),
			AvgDelayMinutes:         mean(g.delaySum, g.delayCount),
		})
	}
	return rows
}

func sortedKeys(groups map[string]*groupStats) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ratePct returns num/den as a percentage, nil for an empty denominator so
// consumers render "N/A" instead of a misleading zero.
func ratePct(num, den int) *float64 {
	if den == 0 {
		return nil
	}
	v := float64(num) / float64(den) * 100
	return &v
}

func mean(sum float64, count int) *float64 {
	if count == 0 {
		return nil
	}
	v := sum / float64(count)
	return &v
}

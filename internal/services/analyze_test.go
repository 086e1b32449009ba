package services

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"delivery-analytics-service/internal/domain"
	"delivery-analytics-service/internal/lookup"
)

func minutesAfter(base time.Time, mins int) *time.Time {
	v := base.Add(time.Duration(mins) * time.Minute)
	return &v
}

func fp(v float64) *float64 { return &v }

func ip(v int) *int { return &v }

func testTables() (*lookup.DepotTable, *lookup.CarrierTable) {
	return lookup.NewDepotTable(nil), lookup.NewCarrierTable(nil, "Internal")
}

// stop builds one merged record with the given delay in minutes.
func stop(tour *domain.Tour, seq int, planned time.Time, delayMin int) domain.MergedRecord {
	return domain.MergedRecord{
		Tour: tour,
		Task: domain.Task{
			TourUniqueID:    tour.UniqueID,
			Sequence:        seq,
			PlannedArrival:  &planned,
			RealizedArrival: minutesAfter(planned, delayMin),
		},
	}
}

func wantFloat(t *testing.T, name string, got *float64, want float64) {
	t.Helper()
	if got == nil {
		t.Fatalf("%s is nil, want %v", name, want)
	}
	if math.Abs(*got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, *got, want)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		delta     float64
		threshold int
		want      Classification
	}{
		{0, 15, ClassOnTime},
		{15, 15, ClassOnTime},
		{-15, 15, ClassOnTime},
		{15.5, 15, ClassLate},
		{-15.5, 15, ClassEarly},
		{60, 15, ClassLate},
		{-60, 15, ClassEarly},
		{10, 5, ClassLate},
	}

	for _, c := range cases {
		if got := Classify(c.delta, c.threshold); got != c.want {
			t.Errorf("Classify(%v, %d) = %v, want %v", c.delta, c.threshold, got, c.want)
		}
	}
}

func TestAnalyzeClassifiesAgainstThreshold(t *testing.T) {
	depots, carriers := testTables()
	tour := &domain.Tour{UniqueID: "T1", Warehouse: "Paris Nord"}

	// One stop 10 minutes late, one 20 minutes late, threshold 15:
	// exactly one late and one on time.
	records := []domain.MergedRecord{
		stop(tour, 1, dayAt(2, 9), 10),
		stop(tour, 2, dayAt(2, 10), 20),
	}

	res, err := Analyze(records, domain.FilterSet{}, depots, carriers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.LateCount != 1 {
		t.Errorf("late count = %d, want 1", res.LateCount)
	}
	if res.OnTimeCount != 1 {
		t.Errorf("on-time count = %d, want 1", res.OnTimeCount)
	}
	if res.EarlyCount != 0 {
		t.Errorf("early count = %d, want 0", res.EarlyCount)
	}
	if res.TotalTasks != 2 || res.TotalTours != 1 {
		t.Errorf("totals = %d tasks / %d tours, want 2/1", res.TotalTasks, res.TotalTours)
	}

	wantFloat(t, "punctuality rate", res.PunctualityRateRealized, 50)
	wantFloat(t, "avg delay", res.AvgDelayMinutes, 15)
}

func TestAnalyzeAvgDelayPreservesSign(t *testing.T) {
	depots, carriers := testTables()
	tour := &domain.Tour{UniqueID: "T1", Warehouse: "Paris Nord"}

	// 30 late and 30 early cancel out in the sign-mixed mean.
	records := []domain.MergedRecord{
		stop(tour, 1, dayAt(2, 9), 30),
		stop(tour, 2, dayAt(2, 10), -30),
	}

	res, err := Analyze(records, domain.FilterSet{}, depots, carriers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantFloat(t, "avg delay", res.AvgDelayMinutes, 0)
	if res.LateCount != 1 || res.EarlyCount != 1 {
		t.Errorf("late/early = %d/%d, want 1/1", res.LateCount, res.EarlyCount)
	}
}

func TestAnalyzeOverloadedTourCountedOnce(t *testing.T) {
	depots, carriers := testTables()
	tour := &domain.Tour{
		UniqueID:       "T1",
		Warehouse:      "Paris Nord",
		CapacityWeight: 500,
		RealizedWeight: 520,
	}

	// Three tasks on the same overloaded tour count the tour once.
	records := []domain.MergedRecord{
		stop(tour, 1, dayAt(2, 9), 0),
		stop(tour, 2, dayAt(2, 10), 0),
		stop(tour, 3, dayAt(2, 11), 0),
	}

	res, err := Analyze(records, domain.FilterSet{}, depots, carriers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.OverloadedToursCount != 1 {
		t.Errorf("overloaded tours = %d, want 1", res.OverloadedToursCount)
	}

	if len(res.ByWarehouse) != 1 {
		t.Fatalf("expected one warehouse row, got %d", len(res.ByWarehouse))
	}
	row := res.ByWarehouse[0]
	if row.OverloadedToursCount != 1 {
		t.Errorf("warehouse overloaded tours = %d, want 1", row.OverloadedToursCount)
	}
	if row.TaskCount != 3 {
		t.Errorf("warehouse task count = %d, want 3", row.TaskCount)
	}
}

func TestAnalyzeMaxWeightThresholdFallback(t *testing.T) {
	depots, carriers := testTables()

	// No declared capacity: the filter threshold applies.
	tour := &domain.Tour{UniqueID: "T1", Warehouse: "Paris Nord", RealizedWeight: 800}
	records := []domain.MergedRecord{stop(tour, 1, dayAt(2, 9), 0)}

	res, err := Analyze(records, domain.FilterSet{MaxWeightThreshold: fp(750)}, depots, carriers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OverloadedToursCount != 1 {
		t.Errorf("overloaded tours = %d, want 1", res.OverloadedToursCount)
	}

	// Declared capacity takes precedence over the threshold.
	within := &domain.Tour{UniqueID: "T2", Warehouse: "Paris Nord", CapacityWeight: 900, RealizedWeight: 800}
	res, err = Analyze([]domain.MergedRecord{stop(within, 1, dayAt(2, 9), 0)}, domain.FilterSet{MaxWeightThreshold: fp(750)}, depots, carriers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OverloadedToursCount != 0 {
		t.Errorf("overloaded tours = %d, want 0 (capacity comparison wins)", res.OverloadedToursCount)
	}
}

func TestAnalyzeEmptyInputReturnsErrNoData(t *testing.T) {
	depots, carriers := testTables()

	_, err := Analyze(nil, domain.FilterSet{}, depots, carriers)
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestAnalyzeNilRatingExcludedFromAverage(t *testing.T) {
	depots, carriers := testTables()
	tour := &domain.Tour{UniqueID: "T1", Warehouse: "Paris Nord"}

	rated := stop(tour, 1, dayAt(2, 9), 0)
	rated.Task.Rating = fp(4)
	unrated := stop(tour, 2, dayAt(2, 10), 0)

	res, err := Analyze([]domain.MergedRecord{rated, unrated}, domain.FilterSet{}, depots, carriers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.TotalTasks != 2 {
		t.Errorf("total tasks = %d, want 2", res.TotalTasks)
	}
	wantFloat(t, "avg rating", res.AvgRating, 4)

	// A group with no ratings at all reads as unavailable, never zero.
	bare := stop(&domain.Tour{UniqueID: "T2", Warehouse: "Lyon Sud"}, 1, dayAt(2, 9), 0)
	res, err = Analyze([]domain.MergedRecord{bare}, domain.FilterSet{}, depots, carriers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.AvgRating != nil {
		t.Errorf("avg rating = %v, want nil", *res.AvgRating)
	}
}

func TestAnalyzeConservationAcrossGroupings(t *testing.T) {
	depots, carriers := testTables()
	paris := &domain.Tour{UniqueID: "T1", Warehouse: "Paris Nord", Driver: "Alice"}
	lyon := &domain.Tour{UniqueID: "T2", Warehouse: "Lyon Sud", Driver: "Bob"}

	var records []domain.MergedRecord
	for i := 0; i < 5; i++ {
		records = append(records, stop(paris, i+1, dayAt(2, 8+i), 5*i))
	}
	for i := 0; i < 4; i++ {
		records = append(records, stop(lyon, i+1, dayAt(3, 9+i), -5*i))
	}

	res, err := Analyze(records, domain.FilterSet{}, depots, carriers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dimensions := map[string][]domain.BreakdownRow{
		"warehouse": res.ByWarehouse,
		"depot":     res.ByDepot,
		"hour":      res.ByHour,
		"slot":      res.ByTwoHourSlot,
		"weekday":   res.ByDayOfWeek,
	}
	for name, rows := range dimensions {
		sum := 0
		for _, row := range rows {
			sum += row.TaskCount
		}
		if sum != res.TotalTasks {
			t.Errorf("%s: per-group task counts sum to %d, want %d", name, sum, res.TotalTasks)
		}
	}

	driverSum := 0
	for _, row := range res.Drivers {
		driverSum += row.TaskCount
	}
	if driverSum != res.TotalTasks {
		t.Errorf("drivers: per-group task counts sum to %d, want %d", driverSum, res.TotalTasks)
	}
}

func TestAnalyzeThresholdMonotonicity(t *testing.T) {
	depots, carriers := testTables()
	tour := &domain.Tour{UniqueID: "T1", Warehouse: "Paris Nord"}

	delays := []int{-45, -25, -10, 0, 5, 12, 18, 25, 45}
	var records []domain.MergedRecord
	for i, d := range delays {
		records = append(records, stop(tour, i+1, dayAt(2, 8), d))
	}

	prevLate, prevEarly := -1, -1
	first := true
	for _, threshold := range []int{5, 15, 30, 60} {
		res, err := Analyze(records, domain.FilterSet{PunctualityThreshold: ip(threshold)}, depots, carriers)
		if err != nil {
			t.Fatalf("threshold %d: unexpected error: %v", threshold, err)
		}

		if !first {
			if res.LateCount > prevLate {
				t.Errorf("threshold %d: late count grew from %d to %d", threshold, prevLate, res.LateCount)
			}
			if res.EarlyCount > prevEarly {
				t.Errorf("threshold %d: early count grew from %d to %d", threshold, prevEarly, res.EarlyCount)
			}
		}
		prevLate, prevEarly = res.LateCount, res.EarlyCount
		first = false
	}
}

func TestAnalyzeHistogramReconciliation(t *testing.T) {
	depots, carriers := testTables()
	tour := &domain.Tour{UniqueID: "T1", Warehouse: "Paris Nord"}

	delays := []int{-50, -20, -5, 0, 10, 16, 29, 31, 90}
	var records []domain.MergedRecord
	for i, d := range delays {
		records = append(records, stop(tour, i+1, dayAt(2, 8), d))
	}
	// One record without timestamps stays out of the histogram entirely.
	records = append(records, domain.MergedRecord{Tour: tour, Task: domain.Task{TourUniqueID: "T1", Sequence: 99}})

	res, err := Analyze(records, domain.FilterSet{}, depots, carriers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sum := 0
	for _, b := range res.Histogram {
		sum += b.Count
	}
	classified := res.LateCount + res.OnTimeCount + res.EarlyCount
	if sum != classified {
		t.Errorf("histogram total = %d, want %d (late+on-time+early)", sum, classified)
	}
	if res.ClassifiedTasks != classified {
		t.Errorf("classified tasks = %d, want %d", res.ClassifiedTasks, classified)
	}

	// Late-side buckets reconcile with the late count, early-side with early.
	lateSide := res.Histogram[3].Count + res.Histogram[4].Count
	if lateSide != res.LateCount {
		t.Errorf("late-side buckets = %d, want %d", lateSide, res.LateCount)
	}
	earlySide := res.Histogram[0].Count + res.Histogram[1].Count
	if earlySide != res.EarlyCount {
		t.Errorf("early-side buckets = %d, want %d", earlySide, res.EarlyCount)
	}
}

func TestAnalyzeMadExclusionRemovesLateCountsOnly(t *testing.T) {
	depots, carriers := testTables()
	tour := &domain.Tour{UniqueID: "T1", Warehouse: "Paris Nord"}

	records := []domain.MergedRecord{
		stop(tour, 1, dayAt(1, 9), 60), // late on the flagged day
		stop(tour, 2, dayAt(1, 10), 0),
	}

	filters := domain.FilterSet{
		ExcludeMadDelays: true,
		MadDelays:        map[string]struct{}{"Paris Nord|2026-03-01": {}},
	}

	baseline, err := Analyze(ApplyFilters(records, domain.FilterSet{}, depots), domain.FilterSet{}, depots, carriers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	excluded, err := Analyze(ApplyFilters(records, filters, depots), filters, depots, carriers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if baseline.LateCount != 1 || excluded.LateCount != 0 {
		t.Errorf("late counts = %d -> %d, want 1 -> 0", baseline.LateCount, excluded.LateCount)
	}
	if excluded.TotalTasks != baseline.TotalTasks {
		t.Errorf("total tasks changed: %d -> %d", baseline.TotalTasks, excluded.TotalTasks)
	}

	if len(excluded.ByWarehouse) != 1 {
		t.Fatalf("expected one warehouse row, got %d", len(excluded.ByWarehouse))
	}
	if excluded.ByWarehouse[0].LateCount != 0 {
		t.Errorf("warehouse late count = %d, want 0", excluded.ByWarehouse[0].LateCount)
	}
	if excluded.ByWarehouse[0].TaskCount != 2 {
		t.Errorf("warehouse task count = %d, want 2", excluded.ByWarehouse[0].TaskCount)
	}

	histSum := 0
	for _, b := range excluded.Histogram {
		histSum += b.Count
	}
	if histSum != excluded.ClassifiedTasks {
		t.Errorf("histogram total = %d, want %d", histSum, excluded.ClassifiedTasks)
	}
}

func TestAnalyzeLateStartAnomaly(t *testing.T) {
	depots, carriers := testTables()

	plannedStart := dayAt(2, 8)
	earlyStart := plannedStart.Add(-5 * time.Minute)
	lateStart := plannedStart.Add(30 * time.Minute)

	// Departed on time, last stop 30 minutes late: the delay built up
	// mid-route.
	anomalous := &domain.Tour{
		UniqueID:      "T1",
		Warehouse:     "Paris Nord",
		PlannedStart:  &plannedStart,
		RealizedStart: &earlyStart,
	}
	// Departed late: whatever happens downstream is not this anomaly.
	lateDeparture := &domain.Tour{
		UniqueID:      "T2",
		Warehouse:     "Paris Nord",
		PlannedStart:  &plannedStart,
		RealizedStart: &lateStart,
	}

	records := []domain.MergedRecord{
		stop(anomalous, 1, dayAt(2, 9), 0),
		stop(anomalous, 2, dayAt(2, 10), 30),
		stop(lateDeparture, 1, dayAt(2, 9), 30),
	}

	res, err := Analyze(records, domain.FilterSet{}, depots, carriers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.LateStartAnomalyCount != 1 {
		t.Errorf("late-start anomalies = %d, want 1", res.LateStartAnomalyCount)
	}
}

func TestAnalyzeSaturationSeries(t *testing.T) {
	depots, carriers := testTables()
	tour := &domain.Tour{UniqueID: "T1", Warehouse: "Paris Nord"}

	// Planned 08:00 and 09:00, completed 09:30 and 10:15.
	records := []domain.MergedRecord{
		{Tour: tour, Task: domain.Task{TourUniqueID: "T1", Sequence: 1, PlannedArrival: tp(dayAt(2, 8)), RealizedArrival: minutesAfter(dayAt(2, 9), 30)}},
		{Tour: tour, Task: domain.Task{TourUniqueID: "T1", Sequence: 2, PlannedArrival: tp(dayAt(2, 9)), RealizedArrival: minutesAfter(dayAt(2, 10), 15)}},
	}

	res, err := Analyze(records, domain.FilterSet{}, depots, carriers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Saturation) != 24 {
		t.Fatalf("expected 24 saturation points, got %d", len(res.Saturation))
	}

	byHour := make(map[string]domain.SaturationPoint, len(res.Saturation))
	for _, p := range res.Saturation {
		byHour[p.Hour] = p
	}

	if p := byHour["08:00"]; p.Planned != 1 || p.Completed != 0 || p.Gap != 1 {
		t.Errorf("08:00 = %+v, want planned 1 completed 0 gap 1", p)
	}
	if p := byHour["09:00"]; p.Planned != 2 || p.Completed != 1 || p.Gap != 1 {
		t.Errorf("09:00 = %+v, want planned 2 completed 1 gap 1", p)
	}
	if p := byHour["10:00"]; p.Planned != 2 || p.Completed != 2 || p.Gap != 0 {
		t.Errorf("10:00 = %+v, want planned 2 completed 2 gap 0", p)
	}
}

func TestAnalyzeWeekdayRowsInWeekOrder(t *testing.T) {
	depots, carriers := testTables()
	tour := &domain.Tour{UniqueID: "T1", Warehouse: "Paris Nord"}

	// March 1st 2026 is a Sunday, March 2nd a Monday.
	records := []domain.MergedRecord{
		stop(tour, 1, dayAt(1, 9), 0),
		stop(tour, 2, dayAt(2, 9), 0),
	}

	res, err := Analyze(records, domain.FilterSet{}, depots, carriers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.ByDayOfWeek) != 2 {
		t.Fatalf("expected 2 weekday rows, got %d", len(res.ByDayOfWeek))
	}
	if res.ByDayOfWeek[0].Key != "Monday" || res.ByDayOfWeek[1].Key != "Sunday" {
		t.Errorf("weekday order = [%s, %s], want [Monday, Sunday]", res.ByDayOfWeek[0].Key, res.ByDayOfWeek[1].Key)
	}
}

func TestAnalyzeGroupKeysFormat(t *testing.T) {
	depots, carriers := testTables()
	tour := &domain.Tour{UniqueID: "T1", Warehouse: "Paris Nord"}

	records := []domain.MergedRecord{stop(tour, 1, dayAt(2, 9), 0)}

	res, err := Analyze(records, domain.FilterSet{}, depots, carriers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.ByHour) != 1 || res.ByHour[0].Key != "09:00" {
		t.Errorf("hour key = %v, want 09:00", res.ByHour)
	}
	if len(res.ByTwoHourSlot) != 1 || res.ByTwoHourSlot[0].Key != "08h-10h" {
		t.Errorf("slot key = %v, want 08h-10h", res.ByTwoHourSlot)
	}
	// No depot rule configured: first token of the warehouse name.
	if len(res.ByDepot) != 1 || res.ByDepot[0].Key != "Paris" {
		t.Errorf("depot key = %v, want Paris", res.ByDepot)
	}
}

func TestAnalyzeDriverRowsCarryCarrier(t *testing.T) {
	depots := lookup.NewDepotTable(nil)
	carriers := lookup.NewCarrierTable([]lookup.CarrierRule{
		{Prefix: "ext-", Carrier: "Colis Express"},
	}, "Internal")

	external := &domain.Tour{UniqueID: "T1", Warehouse: "Paris Nord", Driver: "ext-martin"}
	internal := &domain.Tour{UniqueID: "T2", Warehouse: "Paris Nord", Driver: "durand"}

	records := []domain.MergedRecord{
		stop(external, 1, dayAt(2, 9), 0),
		stop(internal, 1, dayAt(2, 10), 20),
	}

	res, err := Analyze(records, domain.FilterSet{}, depots, carriers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Drivers) != 2 {
		t.Fatalf("expected 2 driver rows, got %d", len(res.Drivers))
	}
	// Rows sort by driver name.
	if res.Drivers[0].Driver != "durand" || res.Drivers[0].Carrier != "Internal" {
		t.Errorf("row 0 = %s/%s, want durand/Internal", res.Drivers[0].Driver, res.Drivers[0].Carrier)
	}
	if res.Drivers[1].Driver != "ext-martin" || res.Drivers[1].Carrier != "Colis Express" {
		t.Errorf("row 1 = %s/%s, want ext-martin/Colis Express", res.Drivers[1].Driver, res.Drivers[1].Carrier)
	}
	if res.Drivers[0].LateCount != 1 {
		t.Errorf("durand late count = %d, want 1", res.Drivers[0].LateCount)
	}
}

func TestAnalyzeGeoRowsPlannedVersusRealized(t *testing.T) {
	depots, carriers := testTables()
	tour := &domain.Tour{UniqueID: "T1", Warehouse: "Paris Nord"}

	planned := dayAt(2, 9)
	windowEnd := planned.Add(30 * time.Minute)
	// Plan respects the window but the driver arrived an hour late.
	r := domain.MergedRecord{
		Tour: tour,
		Task: domain.Task{
			TourUniqueID:    "T1",
			Sequence:        1,
			City:            "Paris",
			PostalCode:      "75011",
			PlannedArrival:  &planned,
			WindowEnd:       &windowEnd,
			RealizedArrival: minutesAfter(planned, 60),
		},
	}

	res, err := Analyze([]domain.MergedRecord{r}, domain.FilterSet{}, depots, carriers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Cities) != 1 || res.Cities[0].Key != "Paris" {
		t.Fatalf("expected one city row for Paris, got %+v", res.Cities)
	}
	wantFloat(t, "planned rate", res.Cities[0].PunctualityRatePlanned, 100)
	wantFloat(t, "realized rate", res.Cities[0].PunctualityRateRealized, 0)

	if len(res.PostalCodes) != 1 || res.PostalCodes[0].Key != "75011" {
		t.Fatalf("expected one postal row for 75011, got %+v", res.PostalCodes)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	depots, carriers := testTables()
	paris := &domain.Tour{UniqueID: "T1", Warehouse: "Paris Nord", Driver: "Alice", CapacityWeight: 500, RealizedWeight: 510}
	lyon := &domain.Tour{UniqueID: "T2", Warehouse: "Lyon Sud", Driver: "Bob"}

	var records []domain.MergedRecord
	for i := 0; i < 6; i++ {
		r := stop(paris, i+1, dayAt(2, 8+i), 10*i-20)
		if i%2 == 0 {
			r.Task.Rating = fp(float64(3 + i%3))
		}
		r.Task.City = "Paris"
		r.Task.PostalCode = "75001"
		records = append(records, r)
	}
	for i := 0; i < 3; i++ {
		r := stop(lyon, i+1, dayAt(3, 9+i), 25)
		r.Task.City = "Lyon"
		r.Task.PostalCode = "69002"
		records = append(records, r)
	}

	filters := domain.FilterSet{PunctualityThreshold: ip(15)}

	first, err := Analyze(records, filters, depots, carriers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Analyze(records, filters, depots, carriers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated analysis differs (-first +second):\n%s", diff)
	}
}

func TestAnalyzeDoesNotMutateInput(t *testing.T) {
	depots, carriers := testTables()
	tour := &domain.Tour{UniqueID: "T1", Warehouse: "Paris Nord"}

	records := []domain.MergedRecord{stop(tour, 1, dayAt(2, 9), 20)}
	before := records[0]

	if _, err := Analyze(records, domain.FilterSet{}, depots, carriers); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff(before, records[0]); diff != "" {
		t.Errorf("input mutated:\n%s", diff)
	}
}

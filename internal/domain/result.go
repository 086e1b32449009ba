package domain

// AnalysisResult is the immutable metrics bundle computed over one filtered
// record set. It is derived entirely from its inputs and recomputed whenever
// the records or the filters change, never patched incrementally.
//
// Averages and rates are pointers so that a group with no usable data reads
// as unavailable rather than as zero.
type AnalysisResult struct {
	TotalTours int
	TotalTasks int

	// Tasks carrying both a planned and a realized arrival.
	ClassifiedTasks int

	LateCount   int
	OnTimeCount int
	EarlyCount  int

	// On-time share of classified tasks, as a percentage.
	PunctualityRateRealized *float64
	// Share of tasks whose planned arrival respects the promised window.
	PunctualityRatePlanned *float64

	// Sign-preserving mean delay in minutes: advances contribute negative
	// values, so balanced late and early volumes pull the mean toward zero.
	AvgDelayMinutes *float64
	AvgRating       *float64

	ByHour        []BreakdownRow // key "HH:00"
	ByTwoHourSlot []BreakdownRow // key "HHh-HHh"
	ByDayOfWeek   []BreakdownRow // fixed Monday..Sunday order
	ByWarehouse   []BreakdownRow
	ByDepot       []BreakdownRow

	Drivers     []DriverRow
	Cities      []GeoRow
	PostalCodes []GeoRow

	Histogram  []HistogramBucket
	Saturation []SaturationPoint

	OverloadedToursCount  int
	LateStartAnomalyCount int
}

// BreakdownRow is one finalized group of the generic aggregation fold.
type BreakdownRow struct {
	Key         string
	TaskCount   int
	TourCount   int
	LateCount   int
	EarlyCount  int
	OnTimeCount int

	PunctualityRate *float64
	AvgDelayMinutes *float64
	AvgRating       *float64

	OverloadedToursCount int
}

// DriverRow is the per-driver performance row. Carrier is a derived display
// attribute resolved through the carrier table, not a grouping key.
type DriverRow struct {
	Driver  string
	Carrier string

	TaskCount   int
	TourCount   int
	LateCount   int
	EarlyCount  int
	OnTimeCount int

	PunctualityRate *float64
	AvgDelayMinutes *float64
	AvgRating       *float64
}

// GeoRow is a per-city or per-postal-code performance row. The planned rate
// measures whether the plan itself respected the promised windows; the
// realized rate measures what actually happened.
type GeoRow struct {
	Key       string
	TaskCount int
	LateCount int

	PunctualityRatePlanned  *float64
	PunctualityRateRealized *float64
	AvgDelayMinutes         *float64
}

// HistogramBucket is one delay-magnitude range. Bounds are in minutes;
// a nil bound means the range is open on that side.
type HistogramBucket struct {
	Label       string
	FromMinutes *int // inclusive
	ToMinutes   *int // exclusive
	Count       int
}

// SaturationPoint compares cumulative planned demand against cumulative
// realized completions at one hour of day. A positive gap is backlog.
type SaturationPoint struct {
	Hour      string // "HH:00"
	Planned   int
	Completed int
	Gap       int
}

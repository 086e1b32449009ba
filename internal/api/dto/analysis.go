package dto

// AnalysisRequest carries the sparse filter set for one analysis run.
// Absent keys place no restriction on their dimension.
type AnalysisRequest struct {
	Period               string   `json:"period"`
	Depot                string   `json:"depot"`
	Entrepot             string   `json:"entrepot"`
	PunctualityThreshold *int     `json:"punctuality_threshold"`
	MaxWeightThreshold   *float64 `json:"max_weight_threshold"`
	Tours100Mobile       bool     `json:"tours_100_mobile"`
	ExcludeMadDelays     bool     `json:"exclude_mad_delays"`
	MadDelays            []string `json:"mad_delays"` // "warehouse|YYYY-MM-DD"
}

// AnalysisResponse wraps the metrics bundle. NoData is the explicit signal
// for an empty filtered set, distinct from a populated-but-zero result.
type AnalysisResponse struct {
	NoData bool                    `json:"no_data"`
	Result *AnalysisResultResponse `json:"result,omitempty"`
}

type AnalysisResultResponse struct {
	TotalTours      int `json:"total_tours"`
	TotalTasks      int `json:"total_tasks"`
	ClassifiedTasks int `json:"classified_tasks"`

	LateCount   int `json:"late_count"`
	OnTimeCount int `json:"on_time_count"`
	EarlyCount  int `json:"early_count"`

	PunctualityRateRealized *float64 `json:"punctuality_rate_realized"`
	PunctualityRatePlanned  *float64 `json:"punctuality_rate_planned"`
	AvgDelayMinutes         *float64 `json:"avg_delay_minutes"`
	AvgRating               *float64 `json:"avg_rating"`

	ByHour        []BreakdownRowResponse `json:"by_hour"`
	ByTwoHourSlot []BreakdownRowResponse `json:"by_two_hour_slot"`
	ByDayOfWeek   []BreakdownRowResponse `json:"by_day_of_week"`
	ByWarehouse   []BreakdownRowResponse `json:"by_warehouse"`
	ByDepot       []BreakdownRowResponse `json:"by_depot"`

	Drivers     []DriverRowResponse `json:"drivers"`
	Cities      []GeoRowResponse    `json:"cities"`
	PostalCodes []GeoRowResponse    `json:"postal_codes"`

	Histogram  []HistogramBucketResponse `json:"histogram"`
	Saturation []SaturationPointResponse `json:"saturation"`

	OverloadedToursCount  int `json:"overloaded_tours_count"`
	LateStartAnomalyCount int `json:"late_start_anomaly_count"`
}

type BreakdownRowResponse struct {
	Key                  string   `json:"key"`
	TaskCount            int      `json:"task_count"`
	TourCount            int      `json:"tour_count"`
	LateCount            int      `json:"late_count"`
	EarlyCount           int      `json:"early_count"`
	OnTimeCount          int      `json:"on_time_count"`
	PunctualityRate      *float64 `json:"punctuality_rate"`
	AvgDelayMinutes      *float64 `json:"avg_delay_minutes"`
	AvgRating            *float64 `json:"avg_rating"`
	OverloadedToursCount int      `json:"overloaded_tours_count"`
}

type DriverRowResponse struct {
	Driver          string   `json:"driver"`
	Carrier         string   `json:"carrier"`
	TaskCount       int      `json:"task_count"`
	TourCount       int      `json:"tour_count"`
	LateCount       int      `json:"late_count"`
	EarlyCount      int      `json:"early_count"`
	OnTimeCount     int      `json:"on_time_count"`
	PunctualityRate *float64 `json:"punctuality_rate"`
	AvgDelayMinutes *float64 `json:"avg_delay_minutes"`
	AvgRating       *float64 `json:"avg_rating"`
}

type GeoRowResponse struct {
	Key                     string   `json:"key"`
	TaskCount               int      `json:"task_count"`
	LateCount               int      `json:"late_count"`
	PunctualityRatePlanned  *float64 `json:"punctuality_rate_planned"`
	PunctualityRateRealized *float64 `json:"punctuality_rate_realized"`
	AvgDelayMinutes         *float64 `json:"avg_delay_minutes"`
}

type HistogramBucketResponse struct {
	Label       string `json:"label"`
	FromMinutes *int   `json:"from_minutes"`
	ToMinutes   *int   `json:"to_minutes"`
	Count       int    `json:"count"`
}

type SaturationPointResponse struct {
	Hour      string `json:"hour"`
	Planned   int    `json:"planned"`
	Completed int    `json:"completed"`
	Gap       int    `json:"gap"`
}

package dto

import "time"

type TourResponse struct {
	UniqueID       string     `json:"unique_id"`
	Warehouse      string     `json:"warehouse"`
	Driver         string     `json:"driver"`
	PlannedStart   *time.Time `json:"planned_start"`
	PlannedEnd     *time.Time `json:"planned_end"`
	RealizedStart  *time.Time `json:"realized_start"`
	RealizedEnd    *time.Time `json:"realized_end"`
	CapacityWeight float64    `json:"capacity_weight"`
	CapacityVolume float64    `json:"capacity_volume"`
	RealizedWeight float64    `json:"realized_weight"`
	RealizedVolume float64    `json:"realized_volume"`
	MobileTracked  bool       `json:"mobile_tracked"`
}

type ListToursResponse struct {
	Tours []TourResponse `json:"tours"`
}

type TaskResponse struct {
	TourUniqueID    string     `json:"tour_unique_id"`
	Sequence        int        `json:"sequence"`
	Warehouse       string     `json:"warehouse"`
	PlannedArrival  *time.Time `json:"planned_arrival"`
	WindowEnd       *time.Time `json:"window_end"`
	RealizedArrival *time.Time `json:"realized_arrival"`
	PostalCode      string     `json:"postal_code"`
	City            string     `json:"city"`
	Rating          *float64   `json:"rating"`
	Comment         *string    `json:"comment"`
	Weight          float64    `json:"weight"`
}

type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

package domain

import "time"

// A Tour is a single delivery round as planned and as realized.
// One Tour owns many Tasks and is immutable once ingested.
type Tour struct {
	UniqueID       string
	Warehouse      string
	Driver         string
	PlannedStart   *time.Time
	PlannedEnd     *time.Time
	RealizedStart  *time.Time
	RealizedEnd    *time.Time
	CapacityWeight float64 // kg, 0 means undeclared
	CapacityVolume float64 // m3, 0 means undeclared
	RealizedWeight float64
	RealizedVolume float64
	MobileTracked  bool
}

// Overloaded reports whether the realized load exceeds the declared capacity.
// When no weight capacity was declared, maxWeight (from the active filters)
// applies instead; the declared capacity takes precedence when both exist.
func (t *Tour) Overloaded(maxWeight *float64) bool {
	switch {
	case t.CapacityWeight > 0:
		if t.RealizedWeight > t.CapacityWeight {
			return true
		}
	case maxWeight != nil:
		if t.RealizedWeight > *maxWeight {
			return true
		}
	}
	return t.CapacityVolume > 0 && t.RealizedVolume > t.CapacityVolume
}

// DepartedOnTime reports whether the tour left at or before its planned start.
// False when either timestamp is missing.
func (t *Tour) DepartedOnTime() bool {
	if t.PlannedStart == nil || t.RealizedStart == nil {
		return false
	}
	return !t.RealizedStart.After(*t.PlannedStart)
}

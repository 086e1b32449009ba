package domain

import "time"

// A Task is one delivery stop within a Tour.
// Rating and Comment are customer feedback and may be absent; a nil rating
// is excluded from every average rather than counted as zero.
type Task struct {
	TourUniqueID    string
	Sequence        int // 1-based position within its tour
	Warehouse       string
	PlannedArrival  *time.Time
	WindowEnd       *time.Time // end of the arrival window promised to the customer
	RealizedArrival *time.Time
	PostalCode      string
	City            string
	Rating          *float64 // 1-5
	Comment         *string
	Weight          float64 // kg assigned to this stop
}

// DelayMinutes returns realized minus planned arrival in minutes.
// The boolean is false when either timestamp is missing; such tasks stay in
// total counts but out of punctuality statistics.
func (t *Task) DelayMinutes() (float64, bool) {
	if t.PlannedArrival == nil || t.RealizedArrival == nil {
		return 0, false
	}
	return t.RealizedArrival.Sub(*t.PlannedArrival).Minutes(), true
}

// PlannedWithinWindow reports whether the planned arrival respects the
// promised window end. The boolean is false when either side is missing.
func (t *Task) PlannedWithinWindow() (bool, bool) {
	if t.PlannedArrival == nil || t.WindowEnd == nil {
		return false, false
	}
	return !t.PlannedArrival.After(*t.WindowEnd), true
}

package domain

// A MergedRecord is a Task enriched with its parent Tour.
// Tour is nil when the task references a tour absent from the ingested set;
// such dangling records are preserved, never dropped.
type MergedRecord struct {
	Task  Task
	Tour  *Tour
	Ordre int // 1-based position in the overall ingested sequence

	// MadExcluded marks a late delivery on an operator-flagged
	// warehouse/day: its lateness is attributed to upstream preparation,
	// so it leaves every delay aggregate while staying in total counts.
	MadExcluded bool
}

// Warehouse resolves the record's warehouse, preferring the parent tour and
// falling back to the warehouse carried on the task itself.
func (r MergedRecord) Warehouse() string {
	if r.Tour != nil && r.Tour.Warehouse != "" {
		return r.Tour.Warehouse
	}
	return r.Task.Warehouse
}

// Date returns the realized delivery day as YYYY-MM-DD, empty when unknown.
func (r MergedRecord) Date() string {
	if r.Task.RealizedArrival == nil {
		return ""
	}
	return r.Task.RealizedArrival.Format("2006-01-02")
}

// MadKey is the "warehouse|date" form used by the preparation-delay
// exclusion list.
func (r MergedRecord) MadKey() string {
	return r.Warehouse() + "|" + r.Date()
}

package domain

// A MadDelay marks one warehouse/day pair where downstream lateness is
// attributed to upstream preparation rather than transport. The list is
// operator-curated and passed to the engine as plain input data.
type MadDelay struct {
	Warehouse string
	Date      string // YYYY-MM-DD
}

// Key is the "warehouse|date" form the filter set carries.
func (m MadDelay) Key() string {
	return m.Warehouse + "|" + m.Date
}

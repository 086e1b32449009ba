package lookup

import "strings"

// CarrierRule maps a driver-name prefix to a carrier.
type CarrierRule struct {
	Prefix  string `json:"prefix"`
	Carrier string `json:"carrier"`
}

// CarrierTable resolves driver names to carriers. Rules are tried in order
// and the first case-insensitive prefix match wins.
type CarrierTable struct {
	rules    []CarrierRule
	fallback string
}

func NewCarrierTable(rules []CarrierRule, fallback string) *CarrierTable {
	return &CarrierTable{rules: rules, fallback: fallback}
}

// Carrier returns the carrier for a driver name, or the table's fallback
// when no rule matches.
func (t *CarrierTable) Carrier(driver string) string {
	lower := strings.ToLower(strings.TrimSpace(driver))
	for _, r := range t.rules {
		p := strings.ToLower(strings.TrimSpace(r.Prefix))
		if p == "" {
			continue
		}
		if strings.HasPrefix(lower, p) {
			return r.Carrier
		}
	}
	return t.fallback
}

package lookup

import "strings"

// PrefixRule maps a warehouse-name prefix to a depot group.
type PrefixRule struct {
	Prefix string `json:"prefix"`
	Depot  string `json:"depot"`
}

// DepotTable resolves warehouse names to depot groups through an explicit
// ordered rule table. The longest case-insensitive prefix wins; on equal
// length the earlier rule wins, which keeps tie-breaking auditable.
type DepotTable struct {
	rules []PrefixRule
}

func NewDepotTable(rules []PrefixRule) *DepotTable {
	return &DepotTable{rules: rules}
}

// Depot returns the depot group for a warehouse name. When no rule matches,
// it falls back to the warehouse name's first whitespace-delimited token.
func (t *DepotTable) Depot(warehouse string) string {
	name := strings.TrimSpace(warehouse)
	lower := strings.ToLower(name)

	best := ""
	bestLen := 0
	for _, r := range t.rules {
		p := strings.ToLower(strings.TrimSpace(r.Prefix))
		if p == "" {
			continue
		}
		if strings.HasPrefix(lower, p) && len(p) > bestLen {
			best = r.Depot
			bestLen = len(p)
		}
	}
	if best != "" {
		return best
	}

	if fields := strings.Fields(name); len(fields) > 0 {
		return fields[0]
	}
	return name
}

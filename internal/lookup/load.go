package lookup

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadDepotRules reads an ordered prefix-rule table from a JSON file.
func LoadDepotRules(path string) ([]PrefixRule, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load depot rules: read %q: %w", path, err)
	}

	var rules []PrefixRule
	if err := json.Unmarshal(bytes, &rules); err != nil {
		return nil, fmt.Errorf("load depot rules: parse json: %w", err)
	}
	return rules, nil
}

// LoadCarrierRules reads an ordered carrier-rule table from a JSON file.
func LoadCarrierRules(path string) ([]CarrierRule, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load carrier rules: read %q: %w", path, err)
	}

	var rules []CarrierRule
	if err := json.Unmarshal(bytes, &rules); err != nil {
		return nil, fmt.Errorf("load carrier rules: parse json: %w", err)
	}
	return rules, nil
}

package lookup

import "testing"

func TestDepotLongestPrefixWins(t *testing.T) {
	table := NewDepotTable([]PrefixRule{
		{Prefix: "Paris", Depot: "IDF"},
		{Prefix: "Paris Nord", Depot: "IDF-NORD"},
	})

	if got := table.Depot("Paris Nord 3"); got != "IDF-NORD" {
		t.Errorf("Depot(Paris Nord 3) = %q, want IDF-NORD", got)
	}
	if got := table.Depot("Paris Sud"); got != "IDF" {
		t.Errorf("Depot(Paris Sud) = %q, want IDF", got)
	}
}

func TestDepotTieGoesToEarlierRule(t *testing.T) {
	table := NewDepotTable([]PrefixRule{
		{Prefix: "Lyon", Depot: "RHONE"},
		{Prefix: "LYON", Depot: "SHADOWED"},
	})

	if got := table.Depot("Lyon Centre"); got != "RHONE" {
		t.Errorf("Depot(Lyon Centre) = %q, want RHONE (first rule on equal length)", got)
	}
}

func TestDepotMatchIsCaseInsensitive(t *testing.T) {
	table := NewDepotTable([]PrefixRule{{Prefix: "marseille", Depot: "PACA"}})

	if got := table.Depot("MARSEILLE EST"); got != "PACA" {
		t.Errorf("Depot(MARSEILLE EST) = %q, want PACA", got)
	}
}

func TestDepotFallsBackToFirstToken(t *testing.T) {
	table := NewDepotTable(nil)

	if got := table.Depot("Bordeaux Lac 2"); got != "Bordeaux" {
		t.Errorf("Depot(Bordeaux Lac 2) = %q, want Bordeaux", got)
	}
	if got := table.Depot("  Nantes  "); got != "Nantes" {
		t.Errorf("Depot with padding = %q, want Nantes", got)
	}
	if got := table.Depot(""); got != "" {
		t.Errorf("Depot(empty) = %q, want empty", got)
	}
}

func TestCarrierFirstMatchWins(t *testing.T) {
	table := NewCarrierTable([]CarrierRule{
		{Prefix: "ext-", Carrier: "Colis Express"},
		{Prefix: "ext-sud", Carrier: "SHADOWED"},
	}, "Internal")

	if got := table.Carrier("ext-sud-martin"); got != "Colis Express" {
		t.Errorf("Carrier(ext-sud-martin) = %q, want Colis Express (first rule wins)", got)
	}
	if got := table.Carrier("EXT-durand"); got != "Colis Express" {
		t.Errorf("Carrier(EXT-durand) = %q, want Colis Express (case-insensitive)", got)
	}
}

func TestCarrierFallback(t *testing.T) {
	table := NewCarrierTable([]CarrierRule{{Prefix: "ext-", Carrier: "Colis Express"}}, "Internal")

	if got := table.Carrier("durand"); got != "Internal" {
		t.Errorf("Carrier(durand) = %q, want Internal", got)
	}
	if got := table.Carrier(""); got != "Internal" {
		t.Errorf("Carrier(empty) = %q, want Internal", got)
	}
}

func TestEmptyPrefixRuleIsIgnored(t *testing.T) {
	depots := NewDepotTable([]PrefixRule{{Prefix: "", Depot: "CATCH-ALL"}})
	if got := depots.Depot("Toulouse Sud"); got != "Toulouse" {
		t.Errorf("empty depot prefix should not match, got %q", got)
	}

	carriers := NewCarrierTable([]CarrierRule{{Prefix: "  ", Carrier: "CATCH-ALL"}}, "Internal")
	if got := carriers.Carrier("durand"); got != "Internal" {
		t.Errorf("blank carrier prefix should not match, got %q", got)
	}
}

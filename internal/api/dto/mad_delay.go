package dto

type MadDelayRequest struct {
	Warehouse string `json:"warehouse"`
	Date      string `json:"date"` // YYYY-MM-DD
}

type MadDelayResponse struct {
	Warehouse string `json:"warehouse"`
	Date      string `json:"date"`
}

type ListMadDelaysResponse struct {
	Entries []MadDelayResponse `json:"entries"`
}

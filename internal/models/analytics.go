package models

// TeamWasteSummary aggregates a team's waste logs. WasteByType always
// contains every known waste type, zero-filled when the team has no entries
// of that type.
type TeamWasteSummary struct {
	TotalEntries  int                   `json:"totalEntries" example:"42"`
	TotalWasteKg  float64               `json:"totalWasteKg" example:"318.4"`
	WasteByType   map[WasteType]float64 `json:"wasteByType"`
	RecentEntries []WasteLog            `json:"recentEntries"`
}

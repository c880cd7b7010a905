package insights

// Summary aggregates a shop's completed repair orders over a window.
type Summary struct {
	RepairOrderCount int64   `json:"repairOrderCount"`
	TotalRevenue     float64 `json:"totalRevenue"`
	AvgTicket        float64 `json:"avgTicket"`
	PartsTotal       float64 `json:"partsTotal"`
	LaborTotal       float64 `json:"laborTotal"`
}

package domain

// RowResult is the unrounded money outcome of a single row
type RowResult struct {
	Revenue  float64 `json:"revenue"`
	SeedCost float64 `json:"seed_cost"`
	Profit   float64 `json:"profit"`
}

// RowBreakdown is one line of the results table
type RowBreakdown struct {
	RowID        string     `json:"row_id"`
	CropName     string     `json:"crop_name"`
	SeedCount    int        `json:"seed_count"`
	HarvestTotal int        `json:"harvest_total"`
	UnitPrice    float64    `json:"unit_price"`
	Distribution Allocation `json:"distribution"`
	RowResult
}

// Skip reasons recorded by the aggregator
const (
	SkipReasonUnknownCrop = "unknown_crop"
	SkipReasonMissingOdds = "missing_probability_row"
)

// SkippedRow is an active row the aggregator could not price
type SkippedRow struct {
	RowID    string `json:"row_id"`
	CropName string `json:"crop_name"`
	Reason   string `json:"reason"`
}

// Totals is the aggregate of all active rows
type Totals struct {
	TotalRevenue  float64        `json:"total_revenue"`
	TotalSeedCost float64        `json:"total_seed_cost"`
	TotalProfit   float64        `json:"total_profit"`
	Breakdown     []RowBreakdown `json:"breakdown"`
	Skipped       []SkippedRow   `json:"skipped,omitempty"`
}

// CapacityResult is the outcome of checking a row against its harvest total
type CapacityResult struct {
	OK        bool `json:"ok"`
	Excess    int  `json:"excess"`
	Harvest   int  `json:"harvest"`
	Allocated int  `json:"allocated"`
}

// Correction describes an automatic reduction applied after an allocation edit
type Correction struct {
	RowID     string  `json:"row_id"`
	Channel   Channel `json:"channel"`
	Requested int     `json:"requested"`
	Applied   int     `json:"applied"`
	Excess    int     `json:"excess"`
	// Remaining is the excess left after the edited channel hit zero
	Remaining int `json:"remaining"`
}

// CropQuote summarizes what a crop is worth per unit under a given skill level and professions
type CropQuote struct {
	Crop          string              `json:"crop"`
	Season        Season              `json:"season"`
	SeedCount     int                 `json:"seed_count"`
	HarvestTotal  int                 `json:"harvest_total"`
	UnitPrice     float64             `json:"unit_price"`
	ChannelPrices map[Channel]float64 `json:"channel_prices"`
}

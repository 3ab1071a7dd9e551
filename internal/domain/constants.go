package domain

// Input limits enforced at the API boundary
const (
	MaxSeedCount    = 100000
	MaxQuantity     = 10000000
	MaxRowsPerState = 64
)

// Session event types published to live subscribers
const (
	EventTypeSessionUpdated      = "session.updated"
	EventTypeAllocationCorrected = "allocation.corrected"
	EventTypeEstimateCalculated  = "estimate.calculated"
)

package handler

// Generic HTTP error messages for client responses.
// These never carry internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
	ErrMsgMissingURLParam       = "Missing %s"
	ErrMsgMissingAPIKey         = "Missing or invalid API key"
)

// User-facing messages for service errors
const (
	ErrMsgGenericServerError      = "Something went wrong"
	ErrMsgUnknownError            = "Unknown error"
	ErrMsgInvalidRequestError     = "Invalid request. Please check your inputs."
	ErrMsgUnavailableError        = "Crop data is not loaded yet. Please try again later."
	ErrMsgSessionNotFoundError    = "Session not found. It may have expired."
	ErrMsgRowNotFoundError        = "Row not found"
	ErrMsgCropNotFoundError       = "Crop not found for this season"
	ErrMsgSkillLevelError         = "No quality odds for that farming level"
	ErrMsgInvalidSeasonError      = "Season must be spring, summer, fall or winter"
	ErrMsgInvalidChannelError     = "Channel must be sold, jarred, kegged or aged"
	ErrMsgLastRowError            = "At least one row is required"
	ErrMsgRowLimitError           = "Every crop for this season is already selected"
	ErrMsgNoActiveRowsError       = "Select at least one crop and enter a seed count"
	ErrMsgDistributionClosedError = "Open the distribution before calculating"
	ErrMsgNoCropSelectedError     = "Select a crop for this row first"
	ErrMsgAllocationInvalidError  = "A row allocates more crops than it harvests"
	ErrMsgChannelUnavailableError = "That product cannot be made from this crop"
)

// Log messages
const (
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgRequestDecoded  = "request decoded"
	LogMsgDecodeFailed    = "Failed to decode request"
	LogMsgReadinessFailed = "Readiness check failed"
)

// Operation names used in logs
const (
	OpListCrops        = "List crops"
	OpQuoteCrop        = "Quote crop"
	OpListOdds         = "List probabilities"
	OpGetOdds          = "Get probabilities"
	OpEstimate         = "Estimate"
	OpCreateSession    = "Create session"
	OpGetSession       = "Get session"
	OpUpdateSettings   = "Update settings"
	OpAddRow           = "Add row"
	OpRemoveRow        = "Remove row"
	OpSelectCrop       = "Select crop"
	OpSetSeedCount     = "Set seed count"
	OpEditChannel      = "Edit channel"
	OpOpenDistribution = "Open distribution"
	OpCalculate        = "Calculate"
	OpResetSession     = "Reset session"
)

// URL parameter names
const (
	URLParamSessionID = "id"
	URLParamRowID     = "rowID"
	URLParamChannel   = "channel"
	URLParamSeason    = "season"
	URLParamName      = "name"
	URLParamLevel     = "level"
)

// Query parameter names
const (
	QueryParamSeason  = "season"
	QueryParamSeeds   = "seeds"
	QueryParamLevel   = "level"
	QueryParamTiller  = "tiller"
	QueryParamArtisan = "artisan"
)

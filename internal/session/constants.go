package session

// Actions reported on session.updated events
const (
	ActionCreated            = "created"
	ActionSettingsUpdated    = "settings_updated"
	ActionRowAdded           = "row_added"
	ActionRowRemoved         = "row_removed"
	ActionCropSelected       = "crop_selected"
	ActionSeedsSet           = "seeds_set"
	ActionChannelEdited      = "channel_edited"
	ActionDistributionOpened = "distribution_opened"
	ActionReset              = "reset"
)

// StoreSchemaVersion is bumped when the stored state shape changes so old entries are dropped
const StoreSchemaVersion = "1.0"

// Store defaults
const (
	DefaultStoreSize = 1024
)

// Log messages
const (
	LogMsgSessionCreated      = "Session created"
	LogMsgSessionUpdated      = "Session updated"
	LogMsgSessionEvicted      = "Session evicted"
	LogMsgAllocationCorrected = "Allocation corrected"
	LogMsgEstimateCalculated  = "Estimate calculated"
	LogMsgPublishFailed       = "Failed to publish session event"
)

// Error format strings
const (
	ErrFmtSessionNotFound    = "%w: %s"
	ErrFmtRowNotFound        = "%w: %s"
	ErrFmtSkillLevel         = "%w: %d"
	ErrFmtSeason             = "%w: '%s'"
	ErrFmtChannel            = "%w: '%s'"
	ErrFmtUnknownCrop        = "%w: '%s' in %s"
	ErrFmtOverCapacity       = "%w: %s allocates %d of %d"
	ErrFmtChannelUnavailable = "%w: %s for %s"
	ErrFmtRowLimit           = "%w: %d of %d"
)

package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Session errors
	ErrMsgSessionNotFound    = "session not found"
	ErrMsgRowNotFound        = "row not found"
	ErrMsgLastRow            = "cannot remove the last row"
	ErrMsgRowLimitReached    = "every crop for this season is already selected"
	ErrMsgNoActiveRows       = "select at least one crop with a seed count"
	ErrMsgDistributionClosed = "distribution has not been opened"
	ErrMsgAllocationInvalid  = "allocation exceeds harvest"
	ErrMsgChannelUnavailable = "channel is not available for this crop"
	ErrMsgNoCropSelected     = "no crop selected"

	// Reference data errors
	ErrMsgCropNotFound       = "crop not found"
	ErrMsgSkillLevelNotFound = "no quality odds for skill level"
	ErrMsgReferenceNotLoaded = "reference data not loaded"

	// Input errors
	ErrMsgInvalidSeason  = "invalid season"
	ErrMsgInvalidChannel = "invalid channel"
	ErrMsgInvalidInput   = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrSessionNotFound    = errors.New(ErrMsgSessionNotFound)
	ErrRowNotFound        = errors.New(ErrMsgRowNotFound)
	ErrLastRow            = errors.New(ErrMsgLastRow)
	ErrRowLimitReached    = errors.New(ErrMsgRowLimitReached)
	ErrNoActiveRows       = errors.New(ErrMsgNoActiveRows)
	ErrDistributionClosed = errors.New(ErrMsgDistributionClosed)
	ErrAllocationInvalid  = errors.New(ErrMsgAllocationInvalid)
	ErrChannelUnavailable = errors.New(ErrMsgChannelUnavailable)
	ErrNoCropSelected     = errors.New(ErrMsgNoCropSelected)

	ErrCropNotFound       = errors.New(ErrMsgCropNotFound)
	ErrSkillLevelNotFound = errors.New(ErrMsgSkillLevelNotFound)
	ErrReferenceNotLoaded = errors.New(ErrMsgReferenceNotLoaded)

	ErrInvalidSeason  = errors.New(ErrMsgInvalidSeason)
	ErrInvalidChannel = errors.New(ErrMsgInvalidChannel)
	ErrInvalidInput   = errors.New(ErrMsgInvalidInput)
)

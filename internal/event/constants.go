package event

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// Metadata keys
const (
	MetadataKeySessionID = "session_id"
	MetadataKeyRequestID = "request_id"
)

// LogMsgHandlerErrorFormat formats the aggregated handler error returned by Publish
const LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"

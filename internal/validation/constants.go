package validation

// Error format strings
const (
	ErrFmtReadData       = "failed to read data file %s: %w"
	ErrFmtLoadSchema     = "failed to load schema %s: %w"
	ErrFmtParseData      = "failed to parse JSON data: %w"
	ErrFmtReadSchema     = "failed to read schema file: %w"
	ErrFmtParseSchema    = "failed to parse schema JSON: %w"
	ErrFmtAddResource    = "failed to add schema resource: %w"
	ErrFmtCompileSchema  = "failed to compile schema: %w"
	ErrFmtSchemaNotFound = "schema file not found: %s (searched from %s)"
	ErrFmtGetwd          = "failed to get current directory: %w"
	ErrFmtSchemaInvalid  = "schema validation failed:\n%s"
	ErrFmtOtherInvalid   = "validation error: %w"
)

const (
	rootLocation  = "(root)"
	projectMarker = "go.mod"
)

package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Business metric names
const (
	MetricNameSessionActions        = "session_actions_total"
	MetricNameActiveSessions        = "sessions_active"
	MetricNameEstimatesCalculated   = "estimates_calculated_total"
	MetricNameEstimateProfit        = "estimate_profit"
	MetricNameAllocationCorrections = "allocation_corrections_total"
	MetricNameRowsSkipped           = "estimate_rows_skipped_total"
	MetricNameCropsLoaded           = "reference_crops_loaded"
	MetricNameSkillLevelsLoaded     = "reference_skill_levels_loaded"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of events published"
)

// Business metric help text
const (
	HelpTextSessionActions        = "Total number of session changes by action"
	HelpTextActiveSessions        = "Number of sessions currently held in memory"
	HelpTextEstimatesCalculated   = "Total number of estimates calculated"
	HelpTextEstimateProfit        = "Total profit of calculated estimates"
	HelpTextAllocationCorrections = "Total number of automatic allocation corrections"
	HelpTextRowsSkipped           = "Total number of active rows an estimate could not price"
	HelpTextCropsLoaded           = "Number of crops in the loaded reference data"
	HelpTextSkillLevelsLoaded     = "Number of skill levels in the loaded probability table"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelAction  = "action"
	LabelSeason  = "season"
	LabelChannel = "channel"
	LabelReason  = "reason"
)

// unmatchedRoute labels requests chi could not route
const unmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ProfitBuckets spans a losing plot up to a large late-game farm, in gold
var ProfitBuckets = []float64{-1000, 0, 500, 1000, 5000, 10000, 50000, 100000, 500000, 1000000}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)

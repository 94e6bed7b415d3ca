package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Game metric names
const (
	MetricNameEggsBroken      = "eggs_broken_total"
	MetricNameRewardsAwarded  = "rewards_awarded_total"
	MetricNameLinksUsed       = "links_used_total"
	MetricNameRewardsClaimed  = "rewards_claimed_total"
	MetricNameClaimedAmount   = "rewards_claimed_amount_total"
	MetricNameGameResets      = "game_resets_total"
	MetricNameLedgerWriteErrs = "ledger_write_errors_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Game metric help text
const (
	HelpTextEggsBroken      = "Total number of eggs broken, by outcome"
	HelpTextRewardsAwarded  = "Sum of numeric rewards won"
	HelpTextLinksUsed       = "Total number of custom links consumed"
	HelpTextRewardsClaimed  = "Total number of successful reward claims"
	HelpTextClaimedAmount   = "Sum of claimed totals"
	HelpTextGameResets      = "Total number of game resets, including those caused by claims"
	HelpTextLedgerWriteErrs = "Total number of failed break ledger writes"
)

// Label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelOutcome = "outcome"
	LabelSource  = "source"
)

// Label values
const (
	OutcomeWin    = "win"
	OutcomeLoss   = "loss"
	SourceLink    = "link"
	SourceDirect  = "direct"
	UnmatchedPath = "unmatched"
)

// HTTPLatencyBuckets covers 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)

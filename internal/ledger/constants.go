package ledger

// Log messages - service events
const (
	LogMsgFailedToDecode = "Ledger could not decode event payload"
	LogMsgFailedToRecord = "Failed to record event in break ledger"
	LogMsgBreakRecorded  = "Break recorded in ledger"
	LogMsgClaimRecorded  = "Claim recorded in ledger"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting break ledger cleanup job"
	LogMsgCleanupJobFailed    = "Break ledger cleanup failed"
	LogMsgCleanupJobCompleted = "Break ledger cleanup completed"
)

// Log field keys
const (
	LogFieldType          = "type"
	LogFieldEggID         = "egg_id"
	LogFieldError         = "error"
	LogFieldRetentionDays = "retentionDays"
	LogFieldDuration      = "duration"
	LogFieldDeletedCount  = "deletedCount"
)

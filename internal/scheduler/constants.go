package scheduler

import "time"

// Job names
const (
	JobNameDeadlineRollover = "deadline-rollover"
	JobNameLedgerCleanup    = "ledger-cleanup"
)

// DefaultCleanupInterval is how often the break ledger is pruned
const DefaultCleanupInterval = 24 * time.Hour

// Log messages
const (
	LogMsgJobScheduled     = "Scheduled job"
	LogMsgJobFailed        = "Scheduled job failed"
	LogMsgSchedulerStarted = "Scheduler started"
	LogMsgSchedulerStopped = "Scheduler stopped"
	LogMsgSchedulerStopErr = "Scheduler did not stop cleanly"
)

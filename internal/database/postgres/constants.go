package postgres

// Error Messages - ledger writes
const (
	ErrMsgFailedToRecordBreak  = "failed to record egg break"
	ErrMsgFailedToRecordClaim  = "failed to record reward claim"
	ErrMsgFailedToQueryBreaks  = "failed to query egg breaks"
	ErrMsgFailedToScanBreak    = "failed to scan egg break"
	ErrMsgFailedToCleanupTable = "failed to clean up %s"
)

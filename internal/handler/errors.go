package handler

// Generic HTTP error messages for client responses. They never carry
// internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
	ErrMsgInvalidURLParam       = "Invalid %s"
)

// Success messages
const (
	MsgLinkDeleted = "Link deleted"
)

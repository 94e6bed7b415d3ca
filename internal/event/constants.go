package event

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// LogMsgHandlerErrorFormat is used when one or more subscribers fail
const LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"

package messages

// Logging messages.
const (
	LoggingLevelInvalidFmt  = "unknown log level %q (valid: debug, info, warn, error)"
	LoggingFormatInvalidFmt = "unknown log format %q (valid: console, json)"
	LoggingBuildFailedFmt   = "build logger: %w"
)

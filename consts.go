package logging

const (
	emptyString     = ""
	unknownFunction = "unknown"

	emptyCategory Category = emptyString

	// envPrefix scopes the environment variables that override configuration
	// file values, e.g. CARDINAL_LOG_LEVEL.
	envPrefix = "CARDINAL_LOG"

	// fallbackFileName is used when the executable name cannot be resolved.
	fallbackFileName = "app"
)

// Field names used by the bundled structured sinks.
const (
	fieldCategory     = "category"
	fieldFunction     = "function"
	fieldFile         = "file"
	fieldLine         = "line"
	fieldErrorChain   = "error_chain"
	fieldErrorRoot    = "error_root"
	fieldErrorHistory = "error_history"
)

const (
	errMsgNilConfig     = "Logging config is nil."
	errMsgConfigInvalid = "Logging configuration is invalid."
	errMsgNoChannels    = "No logging channels enabled."
	errMsgNoLogFilePath = "Log file path is empty."
	errMsgAbsLogFileDir = "Log file directory must be relative, not absolute."
)

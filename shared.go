package logging

import "sync"

var (
	shared     *Logger
	sharedOnce sync.Once
)

// Shared returns the process-wide logger, creating it with an empty sink
// registry on first use. Every call returns the same instance, so sinks
// registered through one handle are visible through all of them.
func Shared() *Logger {
	sharedOnce.Do(func() {
		shared = New()
	})
	return shared
}

// AddSink registers s on the shared logger.
func AddSink(s Sink) {
	Shared().AddSink(s)
}

// AddSinks registers the given sinks on the shared logger, preserving order.
func AddSinks(sinks ...Sink) {
	Shared().AddSinks(sinks...)
}

// RemoveSink removes s from the shared logger and reports whether a sink
// was removed.
func RemoveSink(s Sink) bool {
	return Shared().RemoveSink(s)
}

// Log dispatches an already formatted message on the shared logger with an
// explicitly supplied origin.
func Log(sev Severity, category Category, origin Origin, message string) {
	Shared().Log(sev, category, origin, message)
}

// Logf formats and dispatches a message on the shared logger with an
// explicitly supplied origin.
func Logf(sev Severity, category Category, origin Origin, format string, args ...interface{}) {
	Shared().Logf(sev, category, origin, format, args...)
}

// Debug emits a debug record in the default category on the shared logger,
// capturing the caller as origin.
func Debug(format string, args ...interface{}) {
	Shared().logf(2, SeverityDebug, emptyCategory, format, args)
}

// DebugCategory emits a debug record in the given category on the shared
// logger, capturing the caller as origin.
func DebugCategory(category Category, format string, args ...interface{}) {
	Shared().logf(2, SeverityDebug, category, format, args)
}

// Info emits an info record in the default category on the shared logger,
// capturing the caller as origin.
func Info(format string, args ...interface{}) {
	Shared().logf(2, SeverityInfo, emptyCategory, format, args)
}

// InfoCategory emits an info record in the given category on the shared
// logger, capturing the caller as origin.
func InfoCategory(category Category, format string, args ...interface{}) {
	Shared().logf(2, SeverityInfo, category, format, args)
}

// Warning emits a warning record in the default category on the shared
// logger, capturing the caller as origin.
func Warning(format string, args ...interface{}) {
	Shared().logf(2, SeverityWarning, emptyCategory, format, args)
}

// WarningCategory emits a warning record in the given category on the
// shared logger, capturing the caller as origin.
func WarningCategory(category Category, format string, args ...interface{}) {
	Shared().logf(2, SeverityWarning, category, format, args)
}

// Error emits an error record in the default category on the shared logger,
// capturing the caller as origin.
func Error(format string, args ...interface{}) {
	Shared().logf(2, SeverityError, emptyCategory, format, args)
}

// ErrorCategory emits an error record in the given category on the shared
// logger, capturing the caller as origin.
func ErrorCategory(category Category, format string, args ...interface{}) {
	Shared().logf(2, SeverityError, category, format, args)
}

// Dump logs the contents of v at debug level on the shared logger.
func Dump(v interface{}) {
	Shared().dump(v, Caller(1))
}

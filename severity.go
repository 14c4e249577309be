package logging

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Severity is the importance level of a log record. Severities are ordered:
// SeverityDebug < SeverityInfo < SeverityWarning < SeverityError, so they can
// be compared directly when filtering.
type Severity int8

const (
	// SeverityDebug is for information useful while debugging, such as method
	// entry and exit points or intermediate values.
	SeverityDebug Severity = iota
	// SeverityInfo is for generally useful information, such as lifecycle
	// events and configuration summaries.
	SeverityInfo
	// SeverityWarning is for conditions the program can recover from but that
	// likely indicate a problem, such as retries or fallback paths.
	SeverityWarning
	// SeverityError is for failures of the current operation.
	SeverityError
)

var severityNames = [...]string{"debug", "info", "warning", "error"}

// Valid reports whether s is one of the declared severities.
func (s Severity) Valid() bool {
	return s >= SeverityDebug && s <= SeverityError
}

// String returns the lower-case severity name, or "unknown" for values
// outside the declared range.
func (s Severity) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return severityNames[s]
}

// ParseSeverity parses a severity name, case-insensitively. "warn" is
// accepted as an alias for "warning". Returns SeverityDebug and an error if
// the name is not recognised.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return SeverityDebug, nil
	case "info":
		return SeverityInfo, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	}
	return SeverityDebug, errors.Errorf("unknown severity %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, errors.Errorf("cannot marshal severity value %d", int8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// zerologLevel maps s onto the equivalent zerolog level for the bundled
// writer sinks.
func (s Severity) zerologLevel() zerolog.Level {
	switch s {
	case SeverityDebug:
		return zerolog.DebugLevel
	case SeverityInfo:
		return zerolog.InfoLevel
	case SeverityWarning:
		return zerolog.WarnLevel
	case SeverityError:
		return zerolog.ErrorLevel
	}
	return zerolog.NoLevel
}

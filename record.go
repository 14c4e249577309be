package logging

import (
	"strconv"
	"strings"
	"time"
)

// Category groups related log records so sinks can segment output by
// subsystem. Categories are free-form; a few common ones are declared below.
type Category string

const (
	// CategoryGeneral is applied whenever an emission omits the category.
	CategoryGeneral Category = "General"
	// CategoryNetwork marks records from transport and request plumbing.
	CategoryNetwork Category = "Network"
)

// Record is a single log statement, fully resolved: the message is already
// formatted and the origin already captured. Records are passed to sinks by
// value and must not be retained mutably.
type Record struct {
	// Time is when the record was created.
	Time time.Time
	// Severity is the record's importance level.
	Severity Severity
	// Category groups the record; never empty after dispatch.
	Category Category
	// Origin is the call site the record was emitted from.
	Origin Origin
	// Message is the final, formatted message text.
	Message string
	// Err is the first error value found among the formatting arguments, if
	// any. Structured sinks use it to attach cause-chain fields.
	Err error
}

// Label renders the record in the canonical single-line form used by plain
// text sinks:
//
//	[NETWORK] -fetch.Users(87) request timed out
//
// The category is upper-cased, the function name is stripped to its last
// path element and the line number follows in parentheses.
func (r Record) Label() string {
	buf := sprintPool.Get().(*strings.Builder)
	buf.Reset()
	defer sprintPool.Put(buf)

	buf.WriteByte('[')
	buf.WriteString(strings.ToUpper(string(r.Category)))
	buf.WriteString("] -")
	buf.WriteString(r.Origin.shortFunction())
	buf.WriteByte('(')
	buf.WriteString(strconv.Itoa(r.Origin.Line))
	buf.WriteString(") ")
	buf.WriteString(r.Message)
	return buf.String()
}

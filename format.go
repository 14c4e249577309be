package logging

import (
	"fmt"
	"strings"
	"sync"
)

// sprintPool is a buffer pool for message and label assembly to reduce
// allocations on the hot path.
var sprintPool = sync.Pool{
	New: func() interface{} {
		return new(strings.Builder)
	},
}

// formatMessage produces the final record message from a printf-style
// template. With no arguments the template passes through untouched, which is
// also the pre-formatted path. Argument count mismatches never fail: fmt
// renders bounded %!verb(MISSING) and %!(EXTRA ...) markers instead.
func formatMessage(format string, args []interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(normalizeFormat(format), args...)
}

// normalizeFormat rewrites the "%@" object placeholder, common in templates
// ported from mobile codebases, to "%v". A literal "%%" escape is left alone
// so "%%@" still renders as "%@".
func normalizeFormat(format string) string {
	if !strings.Contains(format, "%@") {
		return format
	}

	buf := sprintPool.Get().(*strings.Builder)
	buf.Reset()
	defer sprintPool.Put(buf)

	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' || i+1 >= len(format) {
			buf.WriteByte(c)
			continue
		}
		switch format[i+1] {
		case '%':
			buf.WriteString("%%")
			i++
		case '@':
			buf.WriteString("%v")
			i++
		default:
			buf.WriteByte(c)
		}
	}
	return buf.String()
}

// firstErrorArg returns the first non-nil error among the formatting
// arguments, so sinks can enrich the record with cause-chain fields.
func firstErrorArg(args []interface{}) error {
	for _, a := range args {
		if err, ok := a.(error); ok && err != nil {
			return err
		}
	}
	return nil
}

package logging

import (
	"path"
	"runtime"
)

// Origin identifies the call site a record was emitted from.
type Origin struct {
	// File is the full path of the source file.
	File string
	// Function is the fully qualified function name as reported by the
	// runtime, e.g. "github.com/acme/app/fetch.Users".
	Function string
	// Line is the line number within File.
	Line int
}

// Caller captures the origin skip frames above the caller of Caller itself.
// skip 0 is the immediate caller. If the runtime cannot resolve the frame,
// the zero Origin with Function set to "unknown" is returned.
func Caller(skip int) Origin {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Origin{Function: unknownFunction}
	}
	o := Origin{File: file, Function: unknownFunction, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		o.Function = fn.Name()
	}
	return o
}

// shortFunction returns the function name without its package path prefix,
// keeping the final "pkg.Func" element. Runtime function names always use
// forward slashes, so path.Base is correct on every platform.
func (o Origin) shortFunction() string {
	if o.Function == emptyString {
		return unknownFunction
	}
	return path.Base(o.Function)
}

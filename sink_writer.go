package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// WriterSink renders records as structured zerolog output on an io.Writer.
// Records below the configured minimum severity are dropped. Construct with
// NewWriterSink or NewConsoleSink.
type WriterSink struct {
	logger zerolog.Logger
	min    Severity
}

// NewWriterSink returns a sink writing one zerolog JSON line per record to
// w. Records below min are dropped. The writer must be safe for concurrent
// use, which every zerolog writer and lumberjack logger already is.
func NewWriterSink(w io.Writer, min Severity) *WriterSink {
	return &WriterSink{
		logger: zerolog.New(w),
		min:    min,
	}
}

// ConsoleSinkOptions configures a human-readable console sink.
type ConsoleSinkOptions struct {
	// Out is the destination, os.Stderr when nil.
	Out io.Writer
	// MinSeverity drops records below this level.
	MinSeverity Severity
	// NoColor disables ANSI colouring.
	NoColor bool
	// TimeFormat overrides the timestamp column format.
	TimeFormat string
}

// NewConsoleSink returns a sink rendering records for terminals via
// zerolog's console writer.
func NewConsoleSink(opts ConsoleSinkOptions) *WriterSink {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	cw := zerolog.ConsoleWriter{Out: out, NoColor: opts.NoColor}
	if opts.TimeFormat != emptyString {
		cw.TimeFormat = opts.TimeFormat
	}
	return NewWriterSink(cw, opts.MinSeverity)
}

// Receive implements Sink. For records carrying an error, the output is
// enriched with the full cause chain (outermost -> root), the root cause
// string and a joined human-readable history.
func (s *WriterSink) Receive(rec Record) {
	if s == nil || rec.Severity < s.min {
		return
	}

	ev := s.logger.WithLevel(rec.Severity.zerologLevel()).
		Time(zerolog.TimestampFieldName, rec.Time).
		Str(fieldCategory, string(rec.Category)).
		Str(fieldFunction, rec.Origin.Function).
		Str(fieldFile, rec.Origin.File).
		Int(fieldLine, rec.Origin.Line)

	if rec.Err != nil {
		chain, root := errorChain(rec.Err)
		ev = ev.Err(rec.Err).
			Strs(fieldErrorChain, chain).
			Str(fieldErrorRoot, root).
			Str(fieldErrorHistory, joinChain(chain))
	}

	ev.Msg(rec.Message)
}

package logging

import (
	"fmt"
	"io"
	"reflect"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

// Logger is the process-facing logging facade. It owns an ordered registry
// of sinks and is the only dispatch path for records: every emission builds
// one Record and fans it out to every registered sink in registration order.
//
// The zero value is ready to use and dispatches to nothing until a sink is
// registered. Use Shared for the process-wide instance or New for an
// independent one.
type Logger struct {
	mu    sync.RWMutex
	sinks []Sink

	closed    atomic.Bool
	activeOps atomic.Int32
	wg        sync.WaitGroup

	defaultCategory Category
	shutdownTimeout time.Duration
	shutdownWarning bool
}

// New returns an independent logger with an empty sink registry.
func New() *Logger {
	return &Logger{}
}

// NewWithConfig builds a logger with sinks assembled from cfg: a rolling
// file sink when file logging is enabled and a console sink when console
// logging is enabled. At least one channel must be enabled.
func NewWithConfig(cfg Config) (*Logger, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	minSev, err := ParseSeverity(cfg.Level)
	if err != nil {
		return nil, errors.Wrap(err, "setting logging level")
	}

	l := New()
	l.defaultCategory = Category(cfg.DefaultCategory)
	l.shutdownTimeout = time.Duration(cfg.ShutdownTimeoutMS) * time.Millisecond
	l.shutdownWarning = cfg.ShutdownTimeoutWarning

	var sinks []Sink
	if cfg.FileLogging {
		fileSink, err := NewFileSink(FileSinkOptions{
			Path:        cfg.logFilePath(),
			MinSeverity: minSev,
			MaxSizeMB:   cfg.LogFileMaxSizeMB,
			MaxBackups:  cfg.LogFileMaxBackups,
			MaxAgeDays:  cfg.LogFileMaxAgeDays,
			Compress:    cfg.LogFileCompress,
		})
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, fileSink)
	}
	if cfg.ConsoleLogging {
		sinks = append(sinks, NewConsoleSink(ConsoleSinkOptions{
			MinSeverity: minSev,
			NoColor:     cfg.ConsoleNoColor,
			TimeFormat:  cfg.ConsoleTimeFormat,
		}))
	}
	if len(sinks) == 0 {
		return nil, errors.New(errMsgNoChannels)
	}

	l.AddSinks(sinks...)
	return l, nil
}

// AddSink appends s to the sink registry. Registration order is delivery
// order. Duplicates are not coalesced: a sink registered twice receives
// every record twice. A nil sink is ignored.
func (l *Logger) AddSink(s Sink) {
	if l == nil || s == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	next := make([]Sink, len(l.sinks), len(l.sinks)+1)
	copy(next, l.sinks)
	l.sinks = append(next, s)
}

// AddSinks appends the given sinks in argument order, preserving their
// relative order in the registry. Nil entries are skipped.
func (l *Logger) AddSinks(sinks ...Sink) {
	if l == nil || len(sinks) == 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	next := make([]Sink, len(l.sinks), len(l.sinks)+len(sinks))
	copy(next, l.sinks)
	for _, s := range sinks {
		if s == nil {
			continue
		}
		next = append(next, s)
	}
	l.sinks = next
}

// RemoveSink removes the first registered sink identical to s and reports
// whether one was removed. Identity is interface equality, so only sinks
// with a comparable dynamic type can be removed; a SinkFunc always reports
// false.
func (l *Logger) RemoveSink(s Sink) bool {
	if l == nil || s == nil || !reflect.TypeOf(s).Comparable() {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, registered := range l.sinks {
		if registered != s {
			continue
		}
		next := make([]Sink, 0, len(l.sinks)-1)
		next = append(next, l.sinks[:i]...)
		next = append(next, l.sinks[i+1:]...)
		l.sinks = next
		return true
	}
	return false
}

// Log dispatches an already formatted message with an explicitly supplied
// origin. The message passes through verbatim, even if it contains percent
// signs. Use Caller to capture an origin at the call site.
func (l *Logger) Log(sev Severity, category Category, origin Origin, message string) {
	if l == nil {
		return
	}
	l.dispatch(sev, category, origin, message, nil)
}

// Logf formats a printf-style template and dispatches the result with an
// explicitly supplied origin.
func (l *Logger) Logf(sev Severity, category Category, origin Origin, format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.dispatch(sev, category, origin, formatMessage(format, args), firstErrorArg(args))
}

// Debug emits a debug record in the default category, capturing the caller
// as origin.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(2, SeverityDebug, emptyCategory, format, args)
}

// DebugCategory emits a debug record in the given category, capturing the
// caller as origin.
func (l *Logger) DebugCategory(category Category, format string, args ...interface{}) {
	l.logf(2, SeverityDebug, category, format, args)
}

// Info emits an info record in the default category, capturing the caller
// as origin.
func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(2, SeverityInfo, emptyCategory, format, args)
}

// InfoCategory emits an info record in the given category, capturing the
// caller as origin.
func (l *Logger) InfoCategory(category Category, format string, args ...interface{}) {
	l.logf(2, SeverityInfo, category, format, args)
}

// Warning emits a warning record in the default category, capturing the
// caller as origin.
func (l *Logger) Warning(format string, args ...interface{}) {
	l.logf(2, SeverityWarning, emptyCategory, format, args)
}

// WarningCategory emits a warning record in the given category, capturing
// the caller as origin.
func (l *Logger) WarningCategory(category Category, format string, args ...interface{}) {
	l.logf(2, SeverityWarning, category, format, args)
}

// Error emits an error record in the default category, capturing the caller
// as origin.
func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(2, SeverityError, emptyCategory, format, args)
}

// ErrorCategory emits an error record in the given category, capturing the
// caller as origin.
func (l *Logger) ErrorCategory(category Category, format string, args ...interface{}) {
	l.logf(2, SeverityError, category, format, args)
}

// logf is the shared body of the severity entry points. calldepth is the
// number of frames between logf and the user call whose origin should be
// recorded; the entry points above sit one frame up, so they pass 2.
func (l *Logger) logf(calldepth int, sev Severity, cat Category, format string, args []interface{}) {
	if l == nil || l.closed.Load() || !l.hasSinks() {
		return
	}
	l.dispatch(sev, cat, Caller(calldepth), formatMessage(format, args), firstErrorArg(args))
}

// dispatch assembles the record and fans it out to the current sink
// snapshot. Delivery happens outside the registry lock, on the emitting
// goroutine, in registration order.
func (l *Logger) dispatch(sev Severity, cat Category, origin Origin, msg string, err error) {
	rec := Record{
		Time:     time.Now(),
		Severity: sev,
		Category: l.categoryOrDefault(cat),
		Origin:   origin,
		Message:  msg,
		Err:      err,
	}

	sinks, ok := l.begin()
	if !ok {
		return
	}
	defer l.end()

	for _, s := range sinks {
		deliver(s, rec)
	}
}

// deliver invokes a single sink, containing any panic so a faulty sink can
// never crash the emitting caller or starve the sinks after it.
func deliver(s Sink, rec Record) {
	if s == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	s.Receive(rec)
}

// begin registers an in-flight dispatch and returns the current sink
// snapshot. Registry mutations always publish a fresh slice, so iterating
// the snapshot after the lock is released never observes a partial update.
func (l *Logger) begin() ([]Sink, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed.Load() {
		return nil, false
	}
	l.activeOps.Add(1)
	l.wg.Add(1)
	return l.sinks, true
}

func (l *Logger) end() {
	l.activeOps.Add(-1)
	l.wg.Done()
}

func (l *Logger) hasSinks() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.sinks) > 0
}

func (l *Logger) categoryOrDefault(cat Category) Category {
	if cat != emptyCategory {
		return cat
	}
	if l.defaultCategory != emptyCategory {
		return l.defaultCategory
	}
	return CategoryGeneral
}

// ActiveOperations reports the number of dispatches currently in flight.
func (l *Logger) ActiveOperations() int32 {
	if l == nil {
		return 0
	}
	return l.activeOps.Load()
}

// Close stops dispatching, waits for in-flight dispatches to drain and then
// closes every sink that implements io.Closer, returning the first close
// error. The drain wait is bounded by the configured shutdown timeout; when
// the timeout elapses and the timeout warning is enabled, a warning record
// is fanned out to the detached sinks without waiting on them. Close is
// idempotent and safe to call concurrently.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}

	l.mu.Lock()
	if l.closed.Load() {
		l.mu.Unlock()
		return nil
	}
	l.closed.Store(true)
	sinks := l.sinks
	l.sinks = nil
	l.mu.Unlock()

	if stillOpen := l.drain(); stillOpen > 0 && l.shutdownWarning {
		rec := Record{
			Time:     time.Now(),
			Severity: SeverityWarning,
			Category: l.categoryOrDefault(emptyCategory),
			Origin:   Caller(0),
			Message:  fmt.Sprintf("Logger shutdown timeout exceeded; %d operations still in flight.", stillOpen),
		}
		// The timeout usually means a dispatch is stuck inside a sink, so
		// the warning must not wait on any of them.
		for _, s := range sinks {
			go deliver(s, rec)
		}
	}

	var firstErr error
	for _, s := range sinks {
		c, ok := s.(io.Closer)
		if !ok {
			continue
		}
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = errors.Wrap(err, "closing sink")
		}
	}
	return firstErr
}

// drain waits for in-flight dispatches, bounded by the shutdown timeout. A
// non-positive timeout waits indefinitely. Returns the number of operations
// still in flight when the timeout fired, or zero after a clean drain.
func (l *Logger) drain() int32 {
	if l.shutdownTimeout <= 0 {
		l.wg.Wait()
		return 0
	}

	done := make(chan struct{})
	go func() {
		l.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return 0
	case <-time.After(l.shutdownTimeout):
		select {
		case <-done:
			// Drained right on the deadline.
			return 0
		default:
		}
		if n := l.activeOps.Load(); n > 0 {
			return n
		}
		// The counter can hit zero between the deadline and the load while
		// the final dispatch is still releasing the wait group.
		return 1
	}
}

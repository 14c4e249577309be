package logging

// Sink receives fully resolved log records dispatched by a Logger. A sink
// decides entirely for itself what to do with a record: write it, filter it,
// forward it or drop it.
//
// Receive is called from whichever goroutine emitted the record, outside the
// registry lock, so implementations must tolerate concurrent calls. Receive
// must not call back into the dispatching Logger. A panic inside Receive is
// contained by the dispatcher and never reaches the emitting caller.
//
// A sink that also implements io.Closer is closed when its owning Logger is
// closed.
type Sink interface {
	Receive(rec Record)
}

// SinkFunc adapts a plain function to the Sink interface.
//
// Function values are not comparable, so a SinkFunc cannot be removed with
// RemoveSink; register a pointer-backed sink if removal is needed.
type SinkFunc func(rec Record)

// Receive implements Sink.
func (f SinkFunc) Receive(rec Record) {
	if f == nil {
		return
	}
	f(rec)
}

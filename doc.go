// Package logging provides a process-wide logging facade that fans every
// log record out to an ordered set of pluggable sinks.
//
// Records carry a severity, a category, the exact call site they were
// emitted from and a fully formatted message. Registration order is delivery
// order, a record is dispatched to every registered sink, and a faulty sink
// can never crash the emitting caller.
//
// Key features
//   - Severity entry points (Debug, Info, Warning, Error) that capture the
//     true caller, with Category variants for subsystem tagging
//   - A shared process-wide instance plus independent instances for tests
//   - Bundled sinks: zerolog console and JSON writers, a lumberjack rolling
//     file and a zap forwarder
//   - Error history enrichment: records carrying an error are written with
//     the full cause chain (outermost -> root), the root cause string and a
//     joined human-readable history
//   - Graceful shutdown that waits for in-flight dispatches (bounded timeout)
//
// Typical usage
//
//	logging.AddSink(logging.NewConsoleSink(logging.ConsoleSinkOptions{}))
//	logging.Info("cache warmed in %dms", elapsed)
//	logging.ErrorCategory(logging.CategoryNetwork, "fetch failed: %v", err)
//
// Or with an owned instance assembled from configuration:
//
//	cfg, err := logging.LoadConfig("logging.yaml")
//	if err != nil {
//		return err
//	}
//	log, err := logging.NewWithConfig(cfg)
//	if err != nil {
//		return err
//	}
//	defer log.Close()
//
//	log.InfoCategory(logging.CategoryNetwork, "connected to %s", addr)
package logging

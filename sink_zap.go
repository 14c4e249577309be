package logging

import "go.uber.org/zap"

// ZapSink forwards records to an existing zap logger, so applications
// already standardised on zap can receive facade records without a second
// output pipeline. Severity maps onto the matching zap level; origin and
// category travel as structured fields.
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink returns a sink forwarding to logger. A nil logger is replaced
// with a no-op one.
func NewZapSink(logger *zap.Logger) *ZapSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	// Caller annotation would point at this file, not the record's origin,
	// so it is disabled; the origin already travels as fields.
	return &ZapSink{logger: logger.WithOptions(zap.WithCaller(false))}
}

// Receive implements Sink.
func (s *ZapSink) Receive(rec Record) {
	if s == nil || s.logger == nil {
		return
	}

	fields := []zap.Field{
		zap.String(fieldCategory, string(rec.Category)),
		zap.String(fieldFunction, rec.Origin.Function),
		zap.String(fieldFile, rec.Origin.File),
		zap.Int(fieldLine, rec.Origin.Line),
	}
	if rec.Err != nil {
		chain, root := errorChain(rec.Err)
		fields = append(fields,
			zap.Error(rec.Err),
			zap.Strings(fieldErrorChain, chain),
			zap.String(fieldErrorRoot, root),
			zap.String(fieldErrorHistory, joinChain(chain)),
		)
	}

	switch rec.Severity {
	case SeverityDebug:
		s.logger.Debug(rec.Message, fields...)
	case SeverityInfo:
		s.logger.Info(rec.Message, fields...)
	case SeverityWarning:
		s.logger.Warn(rec.Message, fields...)
	case SeverityError:
		s.logger.Error(rec.Message, fields...)
	default:
		s.logger.Info(rec.Message, fields...)
	}
}

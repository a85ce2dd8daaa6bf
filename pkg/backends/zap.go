package backends

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wayneeseguin/linelog/pkg/types"
)

var _ Sink[struct{}] = (*ZapSink)(nil)

// ZapSink forwards rendered lines to a zap logger, for programs that already
// ship their logs through zap. The rendered line becomes the zap message;
// no fields are attached.
type ZapSink struct {
	OverrideTemplate
	logger *zap.Logger
}

// NewZapSink wraps logger. A nil logger discards everything.
func NewZapSink(logger *zap.Logger) *ZapSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapSink{logger: logger}
}

// ZapLevel maps a severity onto the zap level it is written at.
func ZapLevel(s types.Severity) zapcore.Level {
	switch s {
	case types.Error:
		return zapcore.ErrorLevel
	case types.Warning:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}

// CanEmit defers to the level enabler of the wrapped logger.
func (z *ZapSink) CanEmit(r *Record) bool {
	return z.logger.Core().Enabled(ZapLevel(r.Severity()))
}

// Emit writes the rendered line at the mapped level.
func (z *ZapSink) Emit(r Record) struct{} {
	if ce := z.logger.Check(ZapLevel(r.Severity()), z.RenderRecord(r)); ce != nil {
		ce.Write()
	}
	return struct{}{}
}

// ZapErrorHandler reports dropped file sink lines as zap warnings.
func ZapErrorHandler(logger *zap.Logger) types.ErrorHandler {
	return func(err *types.SinkError) {
		logger.Warn("linelog: dropped log line",
			zap.String("op", err.Op),
			zap.String("path", err.Path),
			zap.Time("at", err.Timestamp),
			zap.Error(err.Err),
		)
	}
}

package linelog

import (
	"fmt"

	"github.com/wayneeseguin/linelog/pkg/backends"
	"github.com/wayneeseguin/linelog/pkg/formatters"
	"github.com/wayneeseguin/linelog/pkg/types"
)

// Log builds a record from tmpl, severity and message and hands it to sink.
// The boolean is false when the sink declined the record, in which case the
// returned R is its zero value.
func Log[R any](sink backends.Sink[R], severity types.Severity, message string, tmpl formatters.Template) (R, bool) {
	rec := backends.NewRecord(tmpl, severity, message)
	if !sink.CanEmit(&rec) {
		var zero R
		return zero, false
	}
	return sink.Emit(rec), true
}

// ErrorTo logs message at Error severity to sink, recording the caller.
func ErrorTo[R any](sink backends.Sink[R], message string) (R, bool) {
	return Log(sink, types.Error, message, Caller(1))
}

// ErrorfTo is ErrorTo with fmt.Sprintf formatting.
func ErrorfTo[R any](sink backends.Sink[R], format string, args ...interface{}) (R, bool) {
	return Log(sink, types.Error, fmt.Sprintf(format, args...), Caller(1))
}

// WarningTo logs message at Warning severity to sink, recording the caller.
func WarningTo[R any](sink backends.Sink[R], message string) (R, bool) {
	return Log(sink, types.Warning, message, Caller(1))
}

// WarningfTo is WarningTo with fmt.Sprintf formatting.
func WarningfTo[R any](sink backends.Sink[R], format string, args ...interface{}) (R, bool) {
	return Log(sink, types.Warning, fmt.Sprintf(format, args...), Caller(1))
}

// StateChangeTo logs message at StateChange severity to sink, recording the caller.
func StateChangeTo[R any](sink backends.Sink[R], message string) (R, bool) {
	return Log(sink, types.StateChange, message, Caller(1))
}

// StateChangefTo is StateChangeTo with fmt.Sprintf formatting.
func StateChangefTo[R any](sink backends.Sink[R], format string, args ...interface{}) (R, bool) {
	return Log(sink, types.StateChange, fmt.Sprintf(format, args...), Caller(1))
}

// InfoTo logs message at Information severity to sink, recording the caller.
func InfoTo[R any](sink backends.Sink[R], message string) (R, bool) {
	return Log(sink, types.Information, message, Caller(1))
}

// InfofTo is InfoTo with fmt.Sprintf formatting.
func InfofTo[R any](sink backends.Sink[R], format string, args ...interface{}) (R, bool) {
	return Log(sink, types.Information, fmt.Sprintf(format, args...), Caller(1))
}

// Error logs message at Error severity to the default sink. It reports
// whether the record got past the sink's restrictions.
func Error(message string) bool {
	return LogDefault(types.Error, message, Caller(1))
}

// Errorf is Error with fmt.Sprintf formatting.
func Errorf(format string, args ...interface{}) bool {
	return LogDefault(types.Error, fmt.Sprintf(format, args...), Caller(1))
}

// Warning logs message at Warning severity to the default sink.
func Warning(message string) bool {
	return LogDefault(types.Warning, message, Caller(1))
}

// Warningf is Warning with fmt.Sprintf formatting.
func Warningf(format string, args ...interface{}) bool {
	return LogDefault(types.Warning, fmt.Sprintf(format, args...), Caller(1))
}

// StateChange logs message at StateChange severity to the default sink.
func StateChange(message string) bool {
	return LogDefault(types.StateChange, message, Caller(1))
}

// StateChangef is StateChange with fmt.Sprintf formatting.
func StateChangef(format string, args ...interface{}) bool {
	return LogDefault(types.StateChange, fmt.Sprintf(format, args...), Caller(1))
}

// Info logs message at Information severity to the default sink.
func Info(message string) bool {
	return LogDefault(types.Information, message, Caller(1))
}

// Infof is Info with fmt.Sprintf formatting.
func Infof(format string, args ...interface{}) bool {
	return LogDefault(types.Information, fmt.Sprintf(format, args...), Caller(1))
}

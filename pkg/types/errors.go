package types

import (
	"fmt"
	"time"
)

// Operations reported in SinkError.Op.
const (
	OpOpen  = "open"
	OpLock  = "lock"
	OpWrite = "write"
	OpFlush = "flush"
	OpClose = "close"
)

// SinkError describes a failure inside a sink.
type SinkError struct {
	Op        string    // The operation that failed
	Path      string    // The file or destination involved, if any
	Err       error     // The underlying error
	Timestamp time.Time // When the error occurred
}

// NewSinkError stamps a SinkError with the current time.
func NewSinkError(op, path string, err error) *SinkError {
	return &SinkError{Op: op, Path: path, Err: err, Timestamp: time.Now()}
}

// Error implements the error interface
func (e *SinkError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("linelog: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("linelog: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *SinkError) Unwrap() error {
	return e.Err
}

// Cause lets github.com/pkg/errors.Cause walk through a SinkError.
func (e *SinkError) Cause() error {
	return e.Err
}

// ErrorHandler receives emission failures that a sink decided not to panic on.
type ErrorHandler func(err *SinkError)

// DiscardErrors drops every error. It is the default for file sinks: a log
// line that cannot be written is lost rather than disturbing the host program.
var DiscardErrors ErrorHandler = func(*SinkError) {}

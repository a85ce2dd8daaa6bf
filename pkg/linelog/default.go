package linelog

import (
	"sync"

	"github.com/wayneeseguin/linelog/pkg/backends"
	"github.com/wayneeseguin/linelog/pkg/formatters"
	"github.com/wayneeseguin/linelog/pkg/types"
)

// defaultSink is the process-wide FileSink behind the package-level helpers.
// Every access goes through mu; the sink itself has no locking.
var defaultSink = struct {
	mu   sync.Mutex
	sink *backends.FileSink
}{
	sink: backends.NewFileSink(),
}

// LogDefault sends a record to the default sink while holding its lock, and
// reports whether the sink accepted it.
func LogDefault(severity types.Severity, message string, tmpl formatters.Template) bool {
	defaultSink.mu.Lock()
	defer defaultSink.mu.Unlock()

	_, ok := Log[struct{}](defaultSink.sink, severity, message, tmpl)
	return ok
}

// WithDefaultSink runs fn with exclusive access to the default sink. fn must
// not call any other package-level function of linelog.
func WithDefaultSink(fn func(*backends.FileSink)) {
	defaultSink.mu.Lock()
	defer defaultSink.mu.Unlock()
	fn(defaultSink.sink)
}

// SetOutputFile points the default sink at path. On failure the previous
// file, if any, stays in use.
func SetOutputFile(path string) error {
	defaultSink.mu.Lock()
	defer defaultSink.mu.Unlock()
	return defaultSink.sink.Open(path)
}

// CloseOutputFile flushes and closes the default sink's file. Later log calls
// are dropped until SetOutputFile is called again.
func CloseOutputFile() error {
	defaultSink.mu.Lock()
	defer defaultSink.mu.Unlock()
	return defaultSink.sink.Close()
}

// OutputFile returns the path the default sink writes to, or "".
func OutputFile() string {
	defaultSink.mu.Lock()
	defer defaultSink.mu.Unlock()
	return defaultSink.sink.Path()
}

// RestrictLogLevels stops the default sink from emitting the given severities.
func RestrictLogLevels(levels ...types.Severity) {
	defaultSink.mu.Lock()
	defer defaultSink.mu.Unlock()
	defaultSink.sink.RestrictLevels(levels...)
}

// AllowLogLevels lifts restrictions set by RestrictLogLevels.
func AllowLogLevels(levels ...types.Severity) {
	defaultSink.mu.Lock()
	defer defaultSink.mu.Unlock()
	defaultSink.sink.AllowLevels(levels...)
}

// RestrictedLogLevels returns the default sink's deny-list.
func RestrictedLogLevels() []types.Severity {
	defaultSink.mu.Lock()
	defer defaultSink.mu.Unlock()
	return defaultSink.sink.RestrictedLevels()
}

// SetDefaultOverride installs tmpl as the default sink's override template.
func SetDefaultOverride(tmpl formatters.Template) {
	defaultSink.mu.Lock()
	defer defaultSink.mu.Unlock()
	defaultSink.sink.SetOverride(tmpl)
}

// ClearDefaultOverride removes the default sink's override template.
func ClearDefaultOverride() {
	defaultSink.mu.Lock()
	defer defaultSink.mu.Unlock()
	defaultSink.sink.ClearOverride()
}

// SetPanicOnFail selects whether a failed write on the default sink panics.
func SetPanicOnFail(b bool) {
	defaultSink.mu.Lock()
	defer defaultSink.mu.Unlock()
	defaultSink.sink.SetPanicOnFail(b)
}

// SetErrorHandler installs h to observe lines the default sink failed to
// write. nil restores the discarding handler.
func SetErrorHandler(h types.ErrorHandler) {
	defaultSink.mu.Lock()
	defer defaultSink.mu.Unlock()
	defaultSink.sink.SetErrorHandler(h)
}

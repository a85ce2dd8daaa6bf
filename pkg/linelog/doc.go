// Package linelog writes single-line, human-readable log messages laid out by
// a token template.
//
// A log call builds a template describing the call site, bundles it with a
// severity and message into a record, asks the sink whether the record may
// be emitted and, if so, emits it. Three sinks ship with the library:
//
//   - backends.FileSink appends each line to a file
//   - backends.StringSink returns the rendered line
//   - backends.ZapSink forwards the line to a zap logger
//
// Any type implementing backends.Sink can be used as well.
//
// Basic Usage:
//
//	if err := linelog.SetOutputFile("/var/log/app.log"); err != nil {
//		log.Fatal(err)
//	}
//	defer linelog.CloseOutputFile()
//
//	linelog.Info("Application started")
//	linelog.Errorf("connect to %s failed", host)
//
// which writes lines such as
//
//	[14:03:27] (example.com/app 42:) Information: Application started
//
// Default Sink:
//
// The package-level functions (Error, Warning, StateChange, Info and the
// configuration helpers) share one FileSink guarded by a mutex. Each call holds
// the mutex for that call only, so lines from concurrent goroutines never
// interleave but their order is whatever order they took the lock in. Until
// SetOutputFile succeeds the default sink has nowhere to write and log calls
// are silently dropped.
//
// Explicit Sinks:
//
//	sink := backends.NewStringSink()
//	line, ok := linelog.InfoTo(sink, "ready")
//
// Sinks other than the default one carry no locking; share them between
// goroutines only under your own mutex.
//
// Templates:
//
//	tmpl := formatters.New().
//		Append(formatters.Timestamp("%Y-%m-%dT%H:%M:%S")).
//		Append(formatters.Char(' ')).
//		Append(formatters.SeverityLabel()).
//		Append(formatters.Literal(" - ")).
//		Append(formatters.MessageBody())
//	linelog.SetDefaultOverride(tmpl)
//
// An override template is merged over the call-site template on every call:
// fields the override sets win, the rest (line, file, module) still come from
// the call site.
//
// Configuration:
//
// ConfigFromEnv reads LINELOG_FILE, LINELOG_RESTRICT, LINELOG_PANIC_ON_FAIL,
// LINELOG_UTC and LINELOG_TIME_PATTERN; Configure applies a Config to the
// default sink.
package linelog

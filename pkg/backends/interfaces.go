package backends

import (
	"github.com/wayneeseguin/linelog/pkg/formatters"
)

// Sink is a destination for log records. R is whatever Emit hands back to
// the caller: FileSink returns nothing useful (struct{}), StringSink returns
// the rendered line.
//
// Sinks carry no synchronization of their own. A sink shared between
// goroutines must be guarded by the caller; the package-level default sink
// in pkg/linelog is.
type Sink[R any] interface {
	// CanEmit reports whether the record would be emitted. It must only look
	// at the sink configuration and the record severity.
	CanEmit(r *Record) bool

	// Emit renders and delivers the record. The record is consumed; callers
	// should not reuse it.
	Emit(r Record) R
}

// AllowAll can be embedded in a sink that never filters records.
type AllowAll struct{}

// CanEmit always returns true.
func (AllowAll) CanEmit(*Record) bool { return true }

// OverrideTemplate holds an optional template that a sink merges over every
// record's own template, the override winning wherever it sets a field.
// Embed it to give a sink SetOverride, ClearOverride and Override.
type OverrideTemplate struct {
	tmpl formatters.Template
	set  bool
}

// SetOverride installs t as the override template.
func (o *OverrideTemplate) SetOverride(t formatters.Template) {
	o.tmpl = t
	o.set = true
}

// ClearOverride removes the override template.
func (o *OverrideTemplate) ClearOverride() {
	o.tmpl = formatters.Template{}
	o.set = false
}

// Override returns the override template and whether one is installed.
func (o *OverrideTemplate) Override() (formatters.Template, bool) {
	return o.tmpl, o.set
}

// RenderRecord renders r through the override merged with r's template.
func (o *OverrideTemplate) RenderRecord(r Record) string {
	if !o.set {
		return r.Render()
	}
	return formatters.Merged(o.tmpl, r.Template()).Render(r.Severity(), r.Message())
}

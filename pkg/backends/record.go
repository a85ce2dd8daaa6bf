package backends

import (
	"github.com/wayneeseguin/linelog/pkg/formatters"
	"github.com/wayneeseguin/linelog/pkg/types"
)

// Record is one log call: the template describing the line, the severity
// and the message. The message is kept verbatim, whatever it contains.
type Record struct {
	template formatters.Template
	severity types.Severity
	message  string
}

// NewRecord bundles a template, severity and message.
func NewRecord(tmpl formatters.Template, severity types.Severity, message string) Record {
	return Record{template: tmpl, severity: severity, message: message}
}

// Template returns the record's own template.
func (r Record) Template() formatters.Template { return r.template }

// Severity returns the record's severity.
func (r Record) Severity() types.Severity { return r.severity }

// Message returns the message body.
func (r Record) Message() string { return r.message }

// Render renders the record with its own template.
func (r Record) Render() string {
	return r.template.Render(r.severity, r.message)
}

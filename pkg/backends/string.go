package backends

var _ Sink[string] = (*StringSink)(nil)

// StringSink renders records and hands the line back instead of writing it
// anywhere. It is handy in tests and wherever the caller wants the text.
type StringSink struct {
	AllowAll
	OverrideTemplate
}

// NewStringSink creates a string sink without an override template.
func NewStringSink() *StringSink {
	return &StringSink{}
}

// Emit returns the rendered line, without a trailing newline.
func (s *StringSink) Emit(r Record) string {
	return s.RenderRecord(r)
}

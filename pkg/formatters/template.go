package formatters

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/wayneeseguin/linelog/pkg/types"
)

// DefaultTimePattern is the timestamp pattern used by Default.
const DefaultTimePattern = "%k:%M:%S"

// ErrIndexOutOfRange is the panic value (wrapped) for Token and SetToken
// calls with an index outside the token sequence.
var ErrIndexOutOfRange = errors.New("template: token index out of range")

type optional[T any] struct {
	value T
	set   bool
}

func some[T any](v T) optional[T] {
	return optional[T]{value: v, set: true}
}

func (o optional[T]) get() (T, bool) {
	return o.value, o.set
}

// or returns o when it holds a value and fallback otherwise.
func (o optional[T]) or(fallback optional[T]) optional[T] {
	if o.set {
		return o
	}
	return fallback
}

// Template describes the layout of a rendered log line: an ordered token
// sequence plus the call-site values and the optional frozen time those
// tokens draw on.
//
// Template is a value type. Every With* method returns a modified copy and
// leaves the receiver untouched, so a template can be shared as a base:
//
//	base := formatters.Default().UTC()
//	line := base.WithLine(42).WithModulePath("app/server").Render(types.Error, "boom")
//
// The zero value is an empty template that renders to "".
type Template struct {
	tokens   []Token
	column   optional[int]
	line     optional[int]
	file     optional[string]
	module   optional[string]
	frozen   optional[time.Time]
	location *time.Location
}

// New returns an empty template.
func New() Template {
	return Template{}
}

// FromTokens returns a template rendering tokens in order.
func FromTokens(tokens ...Token) Template {
	return Template{tokens: append([]Token(nil), tokens...)}
}

// Default returns the canonical layout
//
//	[HH:MM:SS] (module line:column) Severity: message
//
// with no call-site fields set.
func Default() Template {
	return FromTokens(
		Char('['),
		Timestamp(DefaultTimePattern),
		Literal("] ("),
		ModulePath(),
		Char(' '),
		LineNumber(),
		Char(':'),
		ColumnNumber(),
		Literal(") "),
		SeverityLabel(),
		Literal(": "),
		MessageBody(),
	)
}

// WithColumn sets the column rendered by ColumnNumber tokens.
func (t Template) WithColumn(column int) Template {
	t.column = some(column)
	return t
}

// WithLine sets the line rendered by LineNumber tokens.
func (t Template) WithLine(line int) Template {
	t.line = some(line)
	return t
}

// WithFile sets the path rendered by FilePath tokens.
func (t Template) WithFile(file string) Template {
	t.file = some(file)
	return t
}

// WithModulePath sets the module rendered by ModulePath tokens.
func (t Template) WithModulePath(module string) Template {
	t.module = some(module)
	return t
}

// WithFrozenTime pins every timestamp token to ts instead of the current time.
func (t Template) WithFrozenTime(ts time.Time) Template {
	t.frozen = some(ts)
	return t
}

// ClearFrozenTime makes timestamp tokens read the clock again.
func (t Template) ClearFrozenTime() Template {
	t.frozen = optional[time.Time]{}
	return t
}

// InLocation converts both frozen and live times to loc before formatting.
// A nil loc leaves times in whatever location they carry (time.Local for
// the live clock).
func (t Template) InLocation(loc *time.Location) Template {
	t.location = loc
	return t
}

// UTC is shorthand for InLocation(time.UTC).
func (t Template) UTC() Template {
	return t.InLocation(time.UTC)
}

// Append adds tok to the end of the token sequence.
func (t Template) Append(tok Token) Template {
	tokens := make([]Token, len(t.tokens), len(t.tokens)+1)
	copy(tokens, t.tokens)
	t.tokens = append(tokens, tok)
	return t
}

// PopLast removes the last token, if any.
func (t Template) PopLast() Template {
	if len(t.tokens) > 0 {
		t.tokens = t.tokens[:len(t.tokens)-1:len(t.tokens)-1]
	}
	return t
}

// Column returns the column and whether one is set.
func (t Template) Column() (int, bool) { return t.column.get() }

// Line returns the line and whether one is set.
func (t Template) Line() (int, bool) { return t.line.get() }

// File returns the file path and whether one is set.
func (t Template) File() (string, bool) { return t.file.get() }

// ModulePath returns the module path and whether one is set.
func (t Template) ModulePath() (string, bool) { return t.module.get() }

// FrozenTime returns the pinned timestamp and whether one is set.
func (t Template) FrozenTime() (time.Time, bool) { return t.frozen.get() }

// Location returns the location timestamps are converted to, or nil.
func (t Template) Location() *time.Location { return t.location }

// Len returns the number of tokens.
func (t Template) Len() int {
	return len(t.tokens)
}

// Tokens returns a copy of the token sequence.
func (t Template) Tokens() []Token {
	return append([]Token(nil), t.tokens...)
}

// Token returns the token at index i. It panics with an error wrapping
// ErrIndexOutOfRange when i is outside [0, Len()).
func (t Template) Token(i int) Token {
	t.checkIndex(i)
	return t.tokens[i]
}

// SetToken returns a copy of t with the token at index i replaced. It panics
// like Token for an invalid index.
func (t Template) SetToken(i int, tok Token) Template {
	t.checkIndex(i)
	tokens := t.Tokens()
	tokens[i] = tok
	t.tokens = tokens
	return t
}

func (t Template) checkIndex(i int) {
	if i < 0 || i >= len(t.tokens) {
		panic(errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, len(t.tokens)))
	}
}

// Equal reports whether every field of t and other matches, tokens included.
// Frozen times are compared with time.Time.Equal.
func (t Template) Equal(other Template) bool {
	if len(t.tokens) != len(other.tokens) {
		return false
	}
	for i := range t.tokens {
		if t.tokens[i] != other.tokens[i] {
			return false
		}
	}
	if t.column != other.column || t.line != other.line ||
		t.file != other.file || t.module != other.module {
		return false
	}
	if t.frozen.set != other.frozen.set ||
		(t.frozen.set && !t.frozen.value.Equal(other.frozen.value)) {
		return false
	}
	// (*time.Location)(nil).String() reports "UTC", so nil must be checked first.
	if t.location == nil || other.location == nil {
		return t.location == other.location
	}
	return t.location.String() == other.location.String()
}

// Merged combines two templates field by field. Each field takes the value
// from preferred when preferred sets it, otherwise the value from fallback.
// The token sequence is never combined: fallback's tokens are used only when
// preferred has none at all.
func Merged(preferred, fallback Template) Template {
	tokens := preferred.tokens
	if len(tokens) == 0 {
		tokens = fallback.tokens
	}
	location := preferred.location
	if location == nil {
		location = fallback.location
	}
	return Template{
		tokens:   append([]Token(nil), tokens...),
		column:   preferred.column.or(fallback.column),
		line:     preferred.line.or(fallback.line),
		file:     preferred.file.or(fallback.file),
		module:   preferred.module.or(fallback.module),
		frozen:   preferred.frozen.or(fallback.frozen),
		location: location,
	}
}

// Render produces the log line for severity and message. Tokens are
// concatenated without separators and no trailing newline is added.
//
// Each timestamp token reads the clock on its own when no frozen time is
// set, so two such tokens in one template can differ by a few nanoseconds.
func (t Template) Render(severity types.Severity, message string) string {
	if len(t.tokens) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(64 + len(message))

	for _, tok := range t.tokens {
		switch tok.Kind {
		case KindLineNumber:
			if t.line.set {
				b.WriteString(strconv.Itoa(t.line.value))
			}
		case KindColumnNumber:
			if t.column.set {
				b.WriteString(strconv.Itoa(t.column.value))
			}
		case KindModulePath:
			b.WriteString(t.module.value)
		case KindFilePath:
			b.WriteString(t.file.value)
		case KindSeverity:
			b.WriteString(severity.Label())
		case KindMessage:
			b.WriteString(message)
		case KindTimestamp:
			b.WriteString(formatTime(tok.Value, t.instant()))
		case KindChar:
			b.WriteRune(tok.Rune)
		case KindLiteral:
			b.WriteString(tok.Value)
		}
	}

	return b.String()
}

func (t Template) instant() time.Time {
	ts := t.frozen.value
	if !t.frozen.set {
		ts = now()
	}
	if t.location != nil {
		ts = ts.In(t.location)
	}
	return ts
}

package formatters

import "strconv"

// Kind identifies what a Token renders.
type Kind uint8

const (
	// KindLineNumber renders the template's line number.
	KindLineNumber Kind = iota
	// KindColumnNumber renders the template's column number.
	KindColumnNumber
	// KindModulePath renders the template's module (package) path.
	KindModulePath
	// KindFilePath renders the template's source file path.
	KindFilePath
	// KindSeverity renders the record severity label.
	KindSeverity
	// KindMessage renders the message body verbatim.
	KindMessage
	// KindTimestamp renders a time using the token's strftime pattern.
	KindTimestamp
	// KindChar renders a single literal rune.
	KindChar
	// KindLiteral renders a literal string.
	KindLiteral
)

var kindNames = [...]string{
	KindLineNumber:   "LineNumber",
	KindColumnNumber: "ColumnNumber",
	KindModulePath:   "ModulePath",
	KindFilePath:     "FilePath",
	KindSeverity:     "SeverityLabel",
	KindMessage:      "MessageBody",
	KindTimestamp:    "Timestamp",
	KindChar:         "Char",
	KindLiteral:      "Literal",
}

// String returns the kind name.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Token is one element of a Template. Tokens are comparable with ==.
// Value holds the pattern of a KindTimestamp token or the text of a
// KindLiteral token; Rune holds the character of a KindChar token.
type Token struct {
	Kind  Kind
	Value string
	Rune  rune
}

// LineNumber renders the template's line, or nothing when unset.
func LineNumber() Token { return Token{Kind: KindLineNumber} }

// ColumnNumber renders the template's column, or nothing when unset.
func ColumnNumber() Token { return Token{Kind: KindColumnNumber} }

// ModulePath renders the template's module path.
func ModulePath() Token { return Token{Kind: KindModulePath} }

// FilePath renders the template's file path.
func FilePath() Token { return Token{Kind: KindFilePath} }

// SeverityLabel renders the record's severity label.
func SeverityLabel() Token { return Token{Kind: KindSeverity} }

// MessageBody renders the record's message verbatim.
func MessageBody() Token { return Token{Kind: KindMessage} }

// Timestamp returns a token rendering the frozen or current time with a
// strftime pattern such as "%Y-%m-%d %H:%M:%S".
func Timestamp(pattern string) Token {
	return Token{Kind: KindTimestamp, Value: pattern}
}

// Char returns a token rendering r verbatim.
func Char(r rune) Token {
	return Token{Kind: KindChar, Rune: r}
}

// Literal returns a token rendering s verbatim.
func Literal(s string) Token {
	return Token{Kind: KindLiteral, Value: s}
}

// String is meant for debugging and test failure output.
func (t Token) String() string {
	switch t.Kind {
	case KindTimestamp, KindLiteral:
		return t.Kind.String() + "(" + strconv.Quote(t.Value) + ")"
	case KindChar:
		return t.Kind.String() + "(" + strconv.QuoteRune(t.Rune) + ")"
	}
	return t.Kind.String()
}

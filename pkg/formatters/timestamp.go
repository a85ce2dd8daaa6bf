package formatters

import (
	"strconv"
	"sync"
	"time"

	"github.com/lestrrat-go/strftime"
)

// now is the clock used when a template has no frozen time.
var now = time.Now

// compiled caches strftime patterns; templates are rebuilt on every log call
// but the set of patterns in a program is small.
var compiled sync.Map // pattern -> compiledPattern

// extraDirectives go beyond strftime(3):
//
//	%L  milliseconds, 3 digits
//	%f  nanoseconds since the last whole second, 9 digits
//	%s  seconds since the Unix epoch
//	%P  "am" or "pm"
var extraDirectives = []strftime.Option{
	strftime.WithMilliseconds('L'),
	strftime.WithSpecification('f', strftime.AppendFunc(appendNanoseconds)),
	strftime.WithUnixSeconds('s'),
	strftime.WithSpecification('P', strftime.AppendFunc(appendLowerAMPM)),
}

func appendNanoseconds(b []byte, t time.Time) []byte {
	ns := strconv.Itoa(t.Nanosecond())
	for i := len(ns); i < 9; i++ {
		b = append(b, '0')
	}
	return append(b, ns...)
}

func appendLowerAMPM(b []byte, t time.Time) []byte {
	if t.Hour() < 12 {
		return append(b, "am"...)
	}
	return append(b, "pm"...)
}

type compiledPattern struct {
	f   *strftime.Strftime
	err error
}

func compilePattern(pattern string) compiledPattern {
	if c, ok := compiled.Load(pattern); ok {
		return c.(compiledPattern)
	}
	f, err := strftime.New(pattern, extraDirectives...)
	c, _ := compiled.LoadOrStore(pattern, compiledPattern{f: f, err: err})
	return c.(compiledPattern)
}

// ValidatePattern reports whether pattern can be used by a Timestamp token.
func ValidatePattern(pattern string) error {
	return compilePattern(pattern).err
}

// formatTime renders t with pattern. A pattern that does not compile is
// written out verbatim so a bad template still produces a readable line.
func formatTime(pattern string, t time.Time) string {
	c := compilePattern(pattern)
	if c.err != nil {
		return pattern
	}
	return c.f.FormatString(t)
}

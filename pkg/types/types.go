package types

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Severity is the level attached to every log record.
// The values carry no ordering: filtering is done with an explicit deny-list,
// never with a threshold.
type Severity int

const (
	// Error marks a failure.
	Error Severity = iota
	// Warning marks an unexpected but recoverable condition.
	Warning
	// StateChange marks a transition in application state.
	StateChange
	// Information marks a purely informational message.
	Information
)

// ErrUnknownSeverity is returned by ParseSeverity for unrecognised input.
var ErrUnknownSeverity = errors.New("unknown severity")

// Label returns the fixed textual name of the severity.
func (s Severity) Label() string {
	switch s {
	case Error:
		return "Error"
	case Warning:
		return "Warning"
	case StateChange:
		return "StateChange"
	case Information:
		return "Information"
	}
	// Only reachable through an out-of-range conversion such as Severity(42).
	return "Severity(" + strconv.Itoa(int(s)) + ")"
}

// String implements fmt.Stringer.
func (s Severity) String() string {
	return s.Label()
}

// Valid reports whether s is one of the four declared severities.
func (s Severity) Valid() bool {
	return s >= Error && s <= Information
}

// AllSeverities returns every severity in declaration order.
func AllSeverities() []Severity {
	return []Severity{Error, Warning, StateChange, Information}
}

// ParseSeverity converts a name into a Severity. Matching is case-insensitive
// and accepts a few common spellings:
//
//	"error", "err"
//	"warning", "warn"
//	"statechange", "state_change", "state-change"
//	"information", "info"
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "error", "err":
		return Error, nil
	case "warning", "warn":
		return Warning, nil
	case "statechange", "state_change", "state-change":
		return StateChange, nil
	case "information", "info":
		return Information, nil
	}
	return 0, errors.Wrapf(ErrUnknownSeverity, "parse %q", name)
}

// ParseSeverities parses a comma-separated list such as "warning,info".
// Empty elements are skipped.
func ParseSeverities(list string) ([]Severity, error) {
	var out []Severity
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		sev, err := ParseSeverity(part)
		if err != nil {
			return nil, err
		}
		out = append(out, sev)
	}
	return out, nil
}

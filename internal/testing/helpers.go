// Package testing holds helpers shared by the linelog test suites.
package testing

import (
	"os"
	"strconv"
	"testing"
)

const (
	// EnvIntegration enables tests that spawn processes or otherwise leave
	// the sandbox of a single test binary.
	EnvIntegration = "LINELOG_RUN_INTEGRATION_TESTS"

	// EnvHelperProcess carries the role of a test binary that a test
	// re-executed as a child process; see HelperProcess.
	EnvHelperProcess = "LINELOG_HELPER_PROCESS"
)

// Integration reports whether integration tests were requested. -short
// always wins.
func Integration() bool {
	if testing.Short() {
		return false
	}
	enabled, err := strconv.ParseBool(os.Getenv(EnvIntegration))
	return err == nil && enabled
}

// SkipIfUnit skips the test unless integration tests were requested.
func SkipIfUnit(t *testing.T, message ...string) {
	t.Helper()
	if Integration() {
		return
	}
	msg := "Skipping integration test; set " + EnvIntegration + "=true to run it"
	if len(message) > 0 {
		msg = message[0]
	}
	t.Skip(msg)
}

// HelperProcess returns the role a re-executed test binary was started with,
// or "" in a normal test run.
func HelperProcess() string {
	return os.Getenv(EnvHelperProcess)
}

package linelog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wayneeseguin/linelog/pkg/backends"
)

const pkgPath = "github.com/wayneeseguin/linelog/pkg/linelog"

var frozen = time.Date(2003, time.July, 1, 10, 52, 37, 0, time.UTC)

// useFreshDefaultSink gives the test a new default sink and restores a fresh
// one when the test ends.
func useFreshDefaultSink(t *testing.T) {
	t.Helper()

	reset := func() {
		defaultSink.mu.Lock()
		defer defaultSink.mu.Unlock()
		_ = defaultSink.sink.Close()
		defaultSink.sink = backends.NewFileSink()
	}
	reset()
	t.Cleanup(reset)
}

func tempLogPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "app.log")
}

func readLines(t *testing.T, path string) []string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	if len(content) == 0 {
		return nil
	}
	require.True(t, strings.HasSuffix(string(content), "\n"), "file must end with a newline")
	return strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
}

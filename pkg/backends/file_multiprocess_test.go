package backends_test

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testhelpers "github.com/wayneeseguin/linelog/internal/testing"
	"github.com/wayneeseguin/linelog/pkg/backends"
	"github.com/wayneeseguin/linelog/pkg/formatters"
	"github.com/wayneeseguin/linelog/pkg/types"
)

const (
	envHelperPath = "LINELOG_HELPER_PATH"
	envHelperID   = "LINELOG_HELPER_ID"

	writerProcesses = 4
	linesPerWriter  = 200
)

var padding = strings.Repeat("x", 512)

// TestHelperWriter is the body of each child process started by
// TestFileSinkMultiProcess.
func TestHelperWriter(t *testing.T) {
	if testhelpers.HelperProcess() != "writer" {
		t.Skip("helper process only")
	}

	sink, err := backends.OpenFileSink(os.Getenv(envHelperPath))
	require.NoError(t, err)
	defer sink.Close()
	sink.SetPanicOnFail(true)
	sink.SetOverride(formatters.FromTokens(formatters.MessageBody()))

	id := os.Getenv(envHelperID)
	for i := 0; i < linesPerWriter; i++ {
		msg := fmt.Sprintf("writer=%s seq=%04d %s", id, i, padding)
		sink.Emit(backends.NewRecord(formatters.New(), types.Information, msg))
	}
}

func TestFileSinkMultiProcess(t *testing.T) {
	testhelpers.SkipIfUnit(t, "Skipping multi-process file test in unit mode")

	path := filepath.Join(t.TempDir(), "shared.log")

	cmds := make([]*exec.Cmd, 0, writerProcesses)
	for i := 0; i < writerProcesses; i++ {
		cmd := exec.Command(os.Args[0], "-test.run=^TestHelperWriter$") // #nosec G204 - re-executes the test binary
		cmd.Env = append(os.Environ(),
			testhelpers.EnvHelperProcess+"=writer",
			envHelperPath+"="+path,
			envHelperID+"="+strconv.Itoa(i),
		)
		require.NoError(t, cmd.Start())
		cmds = append(cmds, cmd)
	}
	for i, cmd := range cmds {
		require.NoError(t, cmd.Wait(), "writer %d", i)
	}

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	require.Len(t, lines, writerProcesses*linesPerWriter)

	perWriter := make(map[string]int)
	for _, line := range lines {
		var id, seq int
		_, err := fmt.Sscanf(line, "writer=%d seq=%d", &id, &seq)
		require.NoError(t, err, "corrupted line %q", line)
		require.True(t, strings.HasSuffix(line, " "+padding), "torn line %q", line)
		perWriter[strconv.Itoa(id)]++
	}
	for i := 0; i < writerProcesses; i++ {
		assert.Equal(t, linesPerWriter, perWriter[strconv.Itoa(i)], "writer %d", i)
	}
}

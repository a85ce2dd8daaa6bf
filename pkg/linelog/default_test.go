package linelog

import (
	"fmt"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayneeseguin/linelog/pkg/backends"
	"github.com/wayneeseguin/linelog/pkg/formatters"
	"github.com/wayneeseguin/linelog/pkg/types"
)

func TestDefaultSinkWithoutFile(t *testing.T) {
	useFreshDefaultSink(t)

	assert.Empty(t, OutputFile())
	assert.True(t, Info("dropped"), "accepted even though nothing is written")
	assert.NoError(t, CloseOutputFile())
}

func TestDefaultSinkWritesLines(t *testing.T) {
	useFreshDefaultSink(t)
	path := tempLogPath(t)

	require.NoError(t, SetOutputFile(path))
	assert.Equal(t, path, OutputFile())
	SetDefaultOverride(formatters.FromTokens(
		formatters.ModulePath(),
		formatters.Char(' '),
		formatters.LineNumber(),
		formatters.Char(' '),
		formatters.SeverityLabel(),
		formatters.Literal(": "),
		formatters.MessageBody(),
	))

	_, _, line, _ := runtime.Caller(0)
	assert.True(t, Error("first"))
	assert.True(t, Warningf("second %d", 2))
	assert.True(t, StateChange("third"))
	assert.True(t, Infof("%s", "fourth"))
	assert.True(t, Errorf("fifth"))
	assert.True(t, Warning("sixth"))
	assert.True(t, StateChangef("seventh"))
	assert.True(t, Info("eighth"))

	want := []string{
		fmt.Sprintf("%s %d Error: first", pkgPath, line+1),
		fmt.Sprintf("%s %d Warning: second 2", pkgPath, line+2),
		fmt.Sprintf("%s %d StateChange: third", pkgPath, line+3),
		fmt.Sprintf("%s %d Information: fourth", pkgPath, line+4),
		fmt.Sprintf("%s %d Error: fifth", pkgPath, line+5),
		fmt.Sprintf("%s %d Warning: sixth", pkgPath, line+6),
		fmt.Sprintf("%s %d StateChange: seventh", pkgPath, line+7),
		fmt.Sprintf("%s %d Information: eighth", pkgPath, line+8),
	}
	assert.Equal(t, want, readLines(t, path))
}

func TestDefaultSinkMatchesStringSink(t *testing.T) {
	useFreshDefaultSink(t)
	path := tempLogPath(t)
	require.NoError(t, SetOutputFile(path))

	override := formatters.Default().WithFrozenTime(frozen).UTC()
	SetDefaultOverride(override)
	stringSink := backends.NewStringSink()
	stringSink.SetOverride(override)

	callSite := formatters.Default().WithModulePath("my_crate::file").WithLine(123).WithColumn(4)

	var want []string
	for _, sev := range types.AllSeverities() {
		msg := "message at " + sev.Label()
		require.True(t, LogDefault(sev, msg, callSite))
		line, ok := Log[string](stringSink, sev, msg, callSite)
		require.True(t, ok)
		want = append(want, line)
	}

	assert.Equal(t, want, readLines(t, path))
	assert.Equal(t, "[10:52:37] (my_crate::file 123:4) Error: message at Error", want[0])
}

func TestDefaultSinkRestrictions(t *testing.T) {
	useFreshDefaultSink(t)
	path := tempLogPath(t)
	require.NoError(t, SetOutputFile(path))
	SetDefaultOverride(formatters.FromTokens(formatters.MessageBody()))

	RestrictLogLevels(types.Information, types.StateChange)
	RestrictLogLevels(types.Information)
	assert.Equal(t, []types.Severity{types.Information, types.StateChange}, RestrictedLogLevels())

	assert.False(t, Info("hidden info"))
	assert.False(t, StateChange("hidden state"))
	assert.True(t, Warning("visible warning"))

	AllowLogLevels(types.Information, types.Error)
	assert.Equal(t, []types.Severity{types.StateChange}, RestrictedLogLevels())
	assert.True(t, Info("visible info"))

	assert.Equal(t, []string{"visible warning", "visible info"}, readLines(t, path))
}

func TestDefaultSinkOverrideClear(t *testing.T) {
	useFreshDefaultSink(t)
	path := tempLogPath(t)
	require.NoError(t, SetOutputFile(path))

	SetDefaultOverride(formatters.FromTokens(formatters.MessageBody()))
	Info("plain")
	ClearDefaultOverride()
	LogDefault(types.Error, "templated", formatters.FromTokens(formatters.SeverityLabel(), formatters.Char('|'), formatters.MessageBody()))

	assert.Equal(t, []string{"plain", "Error|templated"}, readLines(t, path))
}

func TestSetOutputFileFailureKeepsOld(t *testing.T) {
	useFreshDefaultSink(t)
	path := tempLogPath(t)
	require.NoError(t, SetOutputFile(path))
	SetDefaultOverride(formatters.FromTokens(formatters.MessageBody()))

	err := SetOutputFile(filepath.Join(t.TempDir(), "missing", "app.log"))
	require.Error(t, err)
	var sinkErr *types.SinkError
	assert.ErrorAs(t, err, &sinkErr)
	assert.Equal(t, types.OpOpen, sinkErr.Op)

	Info("still here")
	assert.Equal(t, path, OutputFile())
	assert.Equal(t, []string{"still here"}, readLines(t, path))
}

func TestSetOutputFileReplaces(t *testing.T) {
	useFreshDefaultSink(t)
	first, second := tempLogPath(t), tempLogPath(t)
	SetDefaultOverride(formatters.FromTokens(formatters.MessageBody()))

	require.NoError(t, SetOutputFile(first))
	Info("one")
	require.NoError(t, SetOutputFile(second))
	Info("two")
	require.NoError(t, CloseOutputFile())
	Info("three")

	assert.Equal(t, []string{"one"}, readLines(t, first))
	assert.Equal(t, []string{"two"}, readLines(t, second))
	assert.Empty(t, OutputFile())
}

func TestDefaultSinkSettings(t *testing.T) {
	useFreshDefaultSink(t)

	SetPanicOnFail(true)
	var handled int
	SetErrorHandler(func(*types.SinkError) { handled++ })

	WithDefaultSink(func(fs *backends.FileSink) {
		assert.True(t, fs.PanicOnFail())
	})

	SetPanicOnFail(false)
	SetErrorHandler(nil)
	WithDefaultSink(func(fs *backends.FileSink) {
		assert.False(t, fs.PanicOnFail())
	})
	assert.Zero(t, handled)
}

func TestDefaultSinkConcurrentLines(t *testing.T) {
	useFreshDefaultSink(t)
	path := tempLogPath(t)
	require.NoError(t, SetOutputFile(path))
	SetDefaultOverride(formatters.FromTokens(formatters.MessageBody()))

	const goroutines = 16
	const perGoroutine = 100

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				Infof("goroutine=%02d line=%03d", g, i)
			}
		}(g)
	}
	wg.Wait()

	lines := readLines(t, path)
	require.Len(t, lines, goroutines*perGoroutine)

	seen := make(map[string]bool, len(lines))
	for _, line := range lines {
		assert.False(t, seen[line], "duplicate line %q", line)
		seen[line] = true
	}
	for g := 0; g < goroutines; g++ {
		for i := 0; i < perGoroutine; i++ {
			assert.True(t, seen[fmt.Sprintf("goroutine=%02d line=%03d", g, i)])
		}
	}
}

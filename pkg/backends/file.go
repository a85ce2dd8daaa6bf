package backends

import (
	"bufio"
	"os"
	"path/filepath"
	"slices"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/wayneeseguin/linelog/pkg/types"
)

// DefaultBufferSize for file operations
const DefaultBufferSize = 4 * 1024

var _ Sink[struct{}] = (*FileSink)(nil)

// FileSink appends one line per record to a file.
//
// A new FileSink has no file. Emitting before Open, or after Close, does
// nothing. Every Emit writes the line and a trailing newline, then flushes
// before returning, holding an advisory flock on the file so that separate
// processes appending to the same path do not interleave partial lines.
//
// Write failures are lost by default. SetPanicOnFail(true) turns them into
// a panic with a *types.SinkError; SetErrorHandler observes them instead.
type FileSink struct {
	OverrideTemplate

	file   *os.File
	writer *bufio.Writer
	lock   *flock.Flock
	path   string

	panicOnFail bool
	restricted  []types.Severity
	onError     types.ErrorHandler
}

// NewFileSink creates a file sink with no file open.
func NewFileSink() *FileSink {
	return &FileSink{onError: types.DiscardErrors}
}

// OpenFileSink creates a file sink and opens path.
func OpenFileSink(path string) (*FileSink, error) {
	fs := NewFileSink()
	if err := fs.Open(path); err != nil {
		return nil, err
	}
	return fs, nil
}

// Open opens path for appending, creating the file if needed. Missing parent
// directories are not created. A file that is already open is closed once
// the new one opened successfully; if opening fails the old file stays in use.
func (fs *FileSink) Open(path string) error {
	cleanPath := filepath.Clean(path)

	file, err := os.OpenFile(cleanPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644) // #nosec G302 - log files need to be readable
	if err != nil {
		return errors.WithStack(types.NewSinkError(types.OpOpen, cleanPath, err))
	}

	if fs.file != nil {
		oldPath := fs.path
		if err := fs.Close(); err != nil {
			fs.report(types.NewSinkError(types.OpClose, oldPath, err))
		}
	}

	fs.file = file
	fs.writer = bufio.NewWriterSize(file, DefaultBufferSize)
	fs.lock = flock.New(cleanPath)
	fs.path = cleanPath
	return nil
}

// Close releases the file. Closing a sink with no open file is a no-op.
func (fs *FileSink) Close() error {
	if fs.file == nil {
		return nil
	}

	var err error
	if ferr := fs.writer.Flush(); ferr != nil {
		err = multierr.Append(err, errors.Wrap(ferr, "flush"))
	}
	if lerr := fs.lock.Close(); lerr != nil {
		err = multierr.Append(err, errors.Wrap(lerr, "unlock"))
	}
	if cerr := fs.file.Close(); cerr != nil {
		err = multierr.Append(err, errors.Wrap(cerr, "close file"))
	}

	fs.file = nil
	fs.writer = nil
	fs.lock = nil
	fs.path = ""
	return err
}

// IsOpen reports whether the sink currently has a file.
func (fs *FileSink) IsOpen() bool {
	return fs.file != nil
}

// Path returns the path of the open file, or "" when none is open.
func (fs *FileSink) Path() string {
	return fs.path
}

// SetPanicOnFail selects whether a failed write or flush panics. The default
// is false: the line is dropped and reported to the error handler.
func (fs *FileSink) SetPanicOnFail(b bool) {
	fs.panicOnFail = b
}

// PanicOnFail returns the current failure policy.
func (fs *FileSink) PanicOnFail() bool {
	return fs.panicOnFail
}

// SetErrorHandler installs h to observe dropped lines. A nil h restores
// types.DiscardErrors.
func (fs *FileSink) SetErrorHandler(h types.ErrorHandler) {
	if h == nil {
		h = types.DiscardErrors
	}
	fs.onError = h
}

// RestrictLevels stops records with any of the given severities from being
// emitted. Severities already restricted are left alone.
func (fs *FileSink) RestrictLevels(levels ...types.Severity) {
	for _, level := range levels {
		if !slices.Contains(fs.restricted, level) {
			fs.restricted = append(fs.restricted, level)
		}
	}
}

// AllowLevels lifts restrictions added by RestrictLevels. Severities that
// were not restricted are ignored.
func (fs *FileSink) AllowLevels(levels ...types.Severity) {
	for _, level := range levels {
		if i := slices.Index(fs.restricted, level); i >= 0 {
			fs.restricted = slices.Delete(fs.restricted, i, i+1)
		}
	}
}

// RestrictedLevels returns a copy of the deny-list in insertion order.
func (fs *FileSink) RestrictedLevels() []types.Severity {
	return slices.Clone(fs.restricted)
}

// CanEmit reports false for restricted severities.
func (fs *FileSink) CanEmit(r *Record) bool {
	return !slices.Contains(fs.restricted, r.Severity())
}

// Emit appends the rendered record to the file.
func (fs *FileSink) Emit(r Record) struct{} {
	if fs.file == nil {
		return struct{}{}
	}

	if err := fs.writeLine(fs.RenderRecord(r)); err != nil {
		if fs.panicOnFail {
			panic(err)
		}
		fs.report(err)
	}
	return struct{}{}
}

func (fs *FileSink) writeLine(line string) *types.SinkError {
	if err := fs.lock.Lock(); err != nil {
		return types.NewSinkError(types.OpLock, fs.path, err)
	}
	defer func() {
		_ = fs.lock.Unlock() // Best effort unlock
	}()

	if _, err := fs.writer.WriteString(line); err != nil {
		return fs.discardBuffered(types.OpWrite, err)
	}
	if err := fs.writer.WriteByte('\n'); err != nil {
		return fs.discardBuffered(types.OpWrite, err)
	}
	if err := fs.writer.Flush(); err != nil {
		return fs.discardBuffered(types.OpFlush, err)
	}
	return nil
}

// discardBuffered drops whatever the failed line left in the buffer. A
// bufio.Writer refuses all further writes once it has seen an error, so
// without the reset one failure would silence the sink for good.
func (fs *FileSink) discardBuffered(op string, err error) *types.SinkError {
	fs.writer.Reset(fs.file)
	return types.NewSinkError(op, fs.path, err)
}

func (fs *FileSink) report(err *types.SinkError) {
	if fs.onError != nil {
		fs.onError(err)
	}
}

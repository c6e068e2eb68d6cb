package app

import (
	"fmt"

	"github.com/specialistvlad/gotail/internal/fsutil"
)

// FileOpenError means a configured file could not be opened. It is
// recoverable: the file is reported and skipped, and later files still run.
type FileOpenError struct {
	Path string
	Err  error
}

// Error formats the diagnostic as "<path>: <system error description>".
func (e *FileOpenError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, fsutil.Reason(e.Err))
}

// Unwrap returns the underlying open error.
func (e *FileOpenError) Unwrap() error {
	return e.Err
}

// FatalIOError means reading a file failed after it was opened, during
// either the scan or the extraction pass. It ends the whole run.
type FatalIOError struct {
	Path string
	Op   string
	Err  error
}

// Error describes the failed operation and its cause.
func (e *FatalIOError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Op, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *FatalIOError) Unwrap() error {
	return e.Err
}

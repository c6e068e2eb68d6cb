package fsutil

import (
	"errors"
	"io"
	"io/fs"
	"os"
)

// File is a handle usable by both passes: sequential reads for the scan and
// line extraction, and seeking for byte extraction.
type File interface {
	io.ReadSeekCloser
}

// Opener acquires file handles by name.
type Opener interface {
	Open(name string) (File, error)
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(name string) (File, error)

// Open calls f(name).
func (f OpenerFunc) Open(name string) (File, error) {
	return f(name)
}

// OS opens files from the local file system.
type OS struct{}

// Open opens name read-only. Directories are rejected up front, because
// reading one fails only later and that would turn a skippable file into a
// fatal read error.
func (OS) Open(name string) (File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	if info.IsDir() {
		f.Close()
		return nil, &fs.PathError{Op: "open", Path: name, Err: ErrIsDirectory}
	}
	return f, nil
}

// ErrIsDirectory is returned by OS.Open for directories.
var ErrIsDirectory = errors.New("is a directory")

// Reason strips the operation and path from err when it is an *fs.PathError,
// leaving the system description such as "no such file or directory".
func Reason(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}

package app

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/gotail/internal/ctxlog"
	"github.com/specialistvlad/gotail/internal/extent"
	"github.com/specialistvlad/gotail/internal/extract"
)

// Summary is the aggregate outcome of a run.
type Summary struct {
	Processed int
	Skipped   []*FileOpenError
}

// Run tails every configured file in order. Files that cannot be opened are
// reported on the error writer and skipped. A read failure on an opened file
// is returned as a *FatalIOError and no further files are attempted.
func (a *App) Run(ctx context.Context) (Summary, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	var (
		sum           Summary
		headerPrinted bool
	)
	for _, path := range a.config.Files {
		f, err := a.opener.Open(path)
		if err != nil {
			openErr := &FileOpenError{Path: path, Err: err}
			fmt.Fprintln(a.errW, openErr.Error())
			a.logger.Debug("Skipping file that could not be opened.", "path", path, "error", err)
			sum.Skipped = append(sum.Skipped, openErr)
			continue
		}

		if a.config.ShowHeaders() {
			a.printHeader(path, headerPrinted)
			headerPrinted = true
		}

		err = a.tailFile(ctx, path, f)
		if cerr := f.Close(); cerr != nil && err == nil {
			a.logger.Warn("Failed to close file.", "path", path, "error", cerr)
		}
		if err != nil {
			a.logger.Error("Aborting run.", "path", path, "error", err)
			return sum, err
		}
		sum.Processed++
	}

	a.logger.Debug("App.Run method finished.", "processed", sum.Processed, "skipped", len(sum.Skipped))
	return sum, nil
}

// printHeader writes the "==> path <==" separator, preceded by a blank line
// once an earlier header has been printed.
func (a *App) printHeader(path string, afterAnother bool) {
	if afterAnother {
		fmt.Fprintln(a.outW)
	}
	fmt.Fprintf(a.outW, "==> %s <==\n", path)
}

// tailFile scans a fresh handle of path to learn its extent, then extracts
// from f, which must still be at its start.
func (a *App) tailFile(ctx context.Context, path string, f io.ReadSeeker) error {
	ext, err := a.scan(path)
	if err != nil {
		return err
	}
	a.logger.Debug("File scanned.", "path", path, "lines", ext.Lines, "bytes", ext.Bytes)

	if a.config.ByteMode() {
		if err := extract.Bytes(ctx, a.outW, f, a.config.Bytes, ext.Bytes); err != nil {
			return &FatalIOError{Path: path, Op: "extract bytes", Err: err}
		}
		return nil
	}
	if err := extract.Lines(ctx, a.outW, f, a.config.Lines, ext.Lines); err != nil {
		return &FatalIOError{Path: path, Op: "extract lines", Err: err}
	}
	return nil
}

// scan counts the lines and bytes of path using its own handle, independent
// of the one used for extraction.
func (a *App) scan(path string) (extent.Extent, error) {
	f, err := a.opener.Open(path)
	if err != nil {
		return extent.Extent{}, &FatalIOError{Path: path, Op: "reopen for scan", Err: err}
	}
	defer f.Close()

	ext, err := extent.Scan(f)
	if err != nil {
		return extent.Extent{}, &FatalIOError{Path: path, Op: "scan", Err: err}
	}
	return ext, nil
}

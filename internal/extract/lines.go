package extract

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/gotail/internal/count"
	"github.com/specialistvlad/gotail/internal/ctxlog"
	"github.com/specialistvlad/gotail/internal/extent"
)

// Lines writes every line of r from the start position resolved against
// totalLines through to the end of the stream. Lines are copied verbatim,
// terminators included. r must be positioned at its beginning.
func Lines(ctx context.Context, w io.Writer, r io.Reader, spec count.Spec, totalLines int64) (err error) {
	logger := ctxlog.FromContext(ctx)

	start, ok := count.Resolve(spec, totalLines)
	if !ok {
		logger.Debug("Nothing to emit in line mode.", "spec", spec, "total_lines", totalLines)
		return nil
	}
	logger.Debug("Extracting lines.", "spec", spec, "total_lines", totalLines, "start", start)

	out := NewLossyWriter(w)
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to flush output: %w", cerr)
		}
	}()

	var (
		lr   = extent.NewLineReader(r)
		line = int64(-1)
	)
	for {
		chunk, starts, rerr := lr.Next()
		if errors.Is(rerr, io.EOF) {
			return nil
		}
		if rerr != nil {
			return fmt.Errorf("failed to read line %d: %w", line+1, rerr)
		}
		if starts {
			line++
		}
		if line < start {
			continue
		}
		if _, werr := out.Write(chunk); werr != nil {
			return fmt.Errorf("failed to write line %d: %w", line, werr)
		}
	}
}

package extract

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/gotail/internal/count"
	"github.com/specialistvlad/gotail/internal/ctxlog"
)

// Bytes seeks r directly to the start offset resolved against totalBytes and
// copies the rest of the stream to w. No bytes before the offset are read.
func Bytes(ctx context.Context, w io.Writer, r io.ReadSeeker, spec count.Spec, totalBytes int64) (err error) {
	logger := ctxlog.FromContext(ctx)

	start, ok := count.Resolve(spec, totalBytes)
	if !ok {
		logger.Debug("Nothing to emit in byte mode.", "spec", spec, "total_bytes", totalBytes)
		return nil
	}
	logger.Debug("Extracting bytes.", "spec", spec, "total_bytes", totalBytes, "start", start)

	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek to byte %d: %w", start, err)
	}

	out := NewLossyWriter(w)
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to flush output: %w", cerr)
		}
	}()

	if _, err := io.Copy(out, r); err != nil {
		return fmt.Errorf("failed to copy from byte %d: %w", start, err)
	}
	return nil
}

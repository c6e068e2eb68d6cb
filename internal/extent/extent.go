// Package extent computes the size of an input in lines and bytes with a
// single bounded-memory pass.
package extent

import (
	"errors"
	"fmt"
	"io"
)

// Extent is the total size of one input. It is computed once per file and
// never changes afterwards.
type Extent struct {
	Lines int64
	Bytes int64
}

// Scan reads r to the end and counts its lines and bytes. A trailing chunk
// without a terminator still counts as a line.
func Scan(r io.Reader) (Extent, error) {
	var (
		lr  = NewLineReader(r)
		ext Extent
	)
	for {
		chunk, starts, err := lr.Next()
		if errors.Is(err, io.EOF) {
			return ext, nil
		}
		if err != nil {
			return ext, fmt.Errorf("scan failed after %d bytes: %w", ext.Bytes, err)
		}
		if starts {
			ext.Lines++
		}
		ext.Bytes += int64(len(chunk))
	}
}

package extent

import (
	"bufio"
	"errors"
	"io"
)

// BufferSize bounds the scratch memory used by a LineReader. Lines longer
// than this are delivered in several chunks.
const BufferSize = 64 * 1024

// LineReader splits a stream into chunks delimited by '\n', keeping the
// terminator. It never holds more than BufferSize bytes of the stream.
type LineReader struct {
	br  *bufio.Reader
	mid bool
}

// NewLineReader returns a LineReader reading from r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{br: bufio.NewReaderSize(r, BufferSize)}
}

// Next returns the next chunk and whether it begins a new line. The chunk is
// only valid until the following call. At the end of the stream Next returns
// io.EOF with an empty chunk; a final chunk without a terminator is returned
// normally first.
func (lr *LineReader) Next() ([]byte, bool, error) {
	chunk, err := lr.br.ReadSlice('\n')
	switch {
	case err == nil, errors.Is(err, bufio.ErrBufferFull):
	case errors.Is(err, io.EOF):
		if len(chunk) == 0 {
			return nil, false, io.EOF
		}
	default:
		return nil, false, err
	}

	starts := !lr.mid
	lr.mid = chunk[len(chunk)-1] != '\n'
	return chunk, starts, nil
}

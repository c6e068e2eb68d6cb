package extract

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// NewLossyWriter returns a writer that decodes UTF-8 on its way to w,
// replacing invalid sequences with U+FFFD. Close must be called to flush a
// trailing incomplete sequence; it does not close w.
func NewLossyWriter(w io.Writer) io.WriteCloser {
	return transform.NewWriter(w, unicode.UTF8.NewDecoder())
}

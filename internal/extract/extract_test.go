package extract

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/specialistvlad/gotail/internal/count"
	"github.com/specialistvlad/gotail/internal/extent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const abc = "a\nb\nc\n"

func tailLines(t *testing.T, content, token string) string {
	t.Helper()
	ext, err := extent.Scan(strings.NewReader(content))
	require.NoError(t, err)

	var out bytes.Buffer
	err = Lines(context.Background(), &out, strings.NewReader(content), count.MustParse(token), ext.Lines)
	require.NoError(t, err)
	return out.String()
}

func tailBytes(t *testing.T, content, token string) string {
	t.Helper()
	ext, err := extent.Scan(strings.NewReader(content))
	require.NoError(t, err)

	var out bytes.Buffer
	err = Bytes(context.Background(), &out, strings.NewReader(content), count.MustParse(token), ext.Bytes)
	require.NoError(t, err)
	return out.String()
}

func TestLines(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		token    string
		expected string
	}{
		{name: "last two", content: abc, token: "2", expected: "b\nc\n"},
		{name: "explicit last two", content: abc, token: "-2", expected: "b\nc\n"},
		{name: "from second", content: abc, token: "+2", expected: "b\nc\n"},
		{name: "from first", content: abc, token: "+1", expected: abc},
		{name: "plus zero prints nothing", content: abc, token: "+0", expected: ""},
		{name: "zero prints everything", content: abc, token: "0", expected: abc},
		{name: "more than available", content: abc, token: "10", expected: abc},
		{name: "start past the end", content: abc, token: "+4", expected: ""},
		{name: "empty input", content: "", token: "10", expected: ""},
		{name: "empty input with all", content: "", token: "0", expected: ""},
		{name: "unterminated last line", content: "a\nb\nc", token: "1", expected: "c"},
		{name: "blank lines kept", content: "x\n\n\ny\n", token: "3", expected: "\n\ny\n"},
		{name: "crlf kept", content: "a\r\nb\r\n", token: "1", expected: "b\r\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tailLines(t, tc.content, tc.token))
		})
	}
}

func TestLines_LastTenOfMany(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 25; i++ {
		sb.WriteString(strings.Repeat("z", i))
		sb.WriteString("\n")
	}

	out := tailLines(t, sb.String(), "10")
	assert.Equal(t, 10, strings.Count(out, "\n"))
	assert.True(t, strings.HasPrefix(out, strings.Repeat("z", 15)+"\n"))
}

func TestLines_LongLineSpanningChunks(t *testing.T) {
	long := strings.Repeat("q", 2*extent.BufferSize+3)
	content := "head\n" + long + "\ntail\n"

	assert.Equal(t, long+"\ntail\n", tailLines(t, content, "2"))
	assert.Equal(t, "tail\n", tailLines(t, content, "+3"))
}

func TestBytes(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		token    string
		expected string
	}{
		{name: "last three", content: abc, token: "3", expected: "\nc\n"},
		{name: "from third", content: abc, token: "+3", expected: "b\nc\n"},
		{name: "zero prints everything", content: abc, token: "0", expected: abc},
		{name: "plus zero prints nothing", content: abc, token: "+0", expected: ""},
		{name: "more than available", content: abc, token: "100", expected: abc},
		{name: "start past the end", content: abc, token: "+7", expected: ""},
		{name: "last byte", content: abc, token: "+6", expected: "\n"},
		{name: "empty input", content: "", token: "3", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tailBytes(t, tc.content, tc.token))
		})
	}
}

func TestBytes_SplitMultibyteIsReplaced(t *testing.T) {
	// "é" is 0xC3 0xA9; starting on the continuation byte leaves it invalid.
	content := "café\n"
	assert.Equal(t, "�\n", tailBytes(t, content, "2"))
	assert.Equal(t, "é\n", tailBytes(t, content, "3"))
}

func TestLines_InvalidUTF8IsReplaced(t *testing.T) {
	content := "ok\nbad\xff\n\xc3"
	assert.Equal(t, "bad�\n�", tailLines(t, content, "2"))
}

func TestLossyWriter_ValidPassesThrough(t *testing.T) {
	var out bytes.Buffer
	w := NewLossyWriter(&out)
	_, err := w.Write([]byte("héllo, 世界\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Equal(t, "héllo, 世界\n", out.String())
}

func TestLossyWriter_SequenceAcrossWrites(t *testing.T) {
	var out bytes.Buffer
	w := NewLossyWriter(&out)
	_, err := w.Write([]byte{'a', 0xC3})
	require.NoError(t, err)
	_, err = w.Write([]byte{0xA9, 'b'})
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Equal(t, "aéb", out.String())
}

func TestLines_ReadErrorPropagates(t *testing.T) {
	boom := errors.New("device went away")
	r := io.MultiReader(strings.NewReader("a\n"), iotest.ErrReader(boom))

	var out bytes.Buffer
	err := Lines(context.Background(), &out, r, count.MustParse("+1"), 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "a\n", out.String())
}

type failingSeeker struct {
	io.Reader
	err error
}

func (f failingSeeker) Seek(int64, int) (int64, error) { return 0, f.err }

func TestBytes_SeekErrorPropagates(t *testing.T) {
	boom := errors.New("not seekable")
	r := failingSeeker{Reader: strings.NewReader(abc), err: boom}

	var out bytes.Buffer
	err := Bytes(context.Background(), &out, r, count.MustParse("3"), 6)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, out.String())
}

func TestBytes_NothingToEmitDoesNotSeek(t *testing.T) {
	r := failingSeeker{Reader: strings.NewReader(abc), err: errors.New("must not seek")}

	var out bytes.Buffer
	require.NoError(t, Bytes(context.Background(), &out, r, count.MustParse("+0"), 6))
	assert.Empty(t, out.String())
}

package fileio_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klondiff/klondiff/internal/fileio"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestRead_TextFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "a.txt", []byte("one\ntwo\nthree\n"))

	src, err := fileio.Read(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, path, src.Path)
	assert.Equal(t, []string{"one", "two", "three"}, src.Lines)
	assert.False(t, src.NoTrailingNewline)
	assert.False(t, src.Binary)
}

func TestRead_MissingFinalNewline(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "a.txt", []byte("one\ntwo"))

	src, err := fileio.Read(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"one", "two"}, src.Lines)
	assert.True(t, src.NoTrailingNewline)
}

func TestRead_CRLF(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "a.txt", []byte("one\r\ntwo\r\n"))

	src, err := fileio.Read(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"one", "two"}, src.Lines)
	assert.False(t, src.NoTrailingNewline)
}

func TestRead_EmptyFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "empty.txt", nil)

	src, err := fileio.Read(context.Background(), path)
	require.NoError(t, err)

	assert.Empty(t, src.Lines)
	assert.False(t, src.NoTrailingNewline)
	assert.False(t, src.Binary)
}

func TestRead_BinaryFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "blob.bin", []byte{0x00, 0x01, 0x02, 0xff, 0xfe})

	src, err := fileio.Read(context.Background(), path)
	require.NoError(t, err)

	assert.True(t, src.Binary)
	assert.Empty(t, src.Lines)
}

func TestRead_NotFound(t *testing.T) {
	t.Parallel()

	_, err := fileio.Read(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fileio.ErrNotFound)
}

func TestRead_Directory(t *testing.T) {
	t.Parallel()

	_, err := fileio.Read(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, fileio.ErrIsDirectory)
}

func TestRead_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := writeFile(t, "a.txt", []byte("one\n"))
	_, err := fileio.Read(ctx, path)
	assert.Error(t, err)
}

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		content       string
		expected      []string
		noFinalEOL    bool
	}{
		{"empty", "", nil, false},
		{"single line", "a\n", []string{"a"}, false},
		{"no final newline", "a", []string{"a"}, true},
		{"blank interior line", "a\n\nb\n", []string{"a", "", "b"}, false},
		{"lone newline", "\n", []string{""}, false},
		{"mixed endings", "a\r\nb\n", []string{"a", "b"}, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			lines, noEOL := fileio.SplitLines([]byte(testCase.content))
			assert.Equal(t, testCase.expected, lines)
			assert.Equal(t, testCase.noFinalEOL, noEOL)
		})
	}
}

func TestBinaryEqual(t *testing.T) {
	t.Parallel()

	a := &fileio.Source{Content: []byte{0x00, 0x01}}
	b := &fileio.Source{Content: []byte{0x00, 0x01}}
	c := &fileio.Source{Content: []byte{0x00, 0x02}}

	assert.True(t, fileio.BinaryEqual(a, b))
	assert.False(t, fileio.BinaryEqual(a, c))
	assert.False(t, fileio.BinaryEqual(a, &fileio.Source{}))
}

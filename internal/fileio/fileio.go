// Package fileio loads comparison inputs from files or standard input.
// It splits content into lines, tracks line ending details needed for
// faithful output, and detects binary content.
package fileio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// StdinPath is the pseudo-path that selects standard input.
const StdinPath = "-"

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")
)

// Source holds one side of a comparison.
type Source struct {
	// Path is the path the content was read from ("-" for stdin).
	Path string

	// Lines is the content split into lines with line endings removed.
	Lines []string

	// NoTrailingNewline is true when the content does not end with a
	// newline. Output marks such files with "\ No newline at end of file".
	NoTrailingNewline bool

	// Binary is true when the content looks binary rather than text.
	Binary bool

	// Content is the raw content, retained for binary comparison.
	Content []byte
}

// Read loads a comparison input from path, or from standard input when
// path is "-".
func Read(ctx context.Context, path string) (*Source, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("read input: %w", ctx.Err())
	default:
	}

	if path == StdinPath {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return newSource(path, content), nil
	}

	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return newSource(path, content), nil
}

// newSource builds a Source from raw content.
func newSource(path string, content []byte) *Source {
	src := &Source{
		Path:    path,
		Content: content,
		Binary:  len(content) > 0 && enry.IsBinary(content),
	}

	if !src.Binary {
		src.Lines, src.NoTrailingNewline = SplitLines(content)
	}

	return src
}

// SplitLines splits content into lines. Both LF and CRLF endings are
// removed. The second return value is true when the content is
// non-empty and does not end with a newline.
func SplitLines(content []byte) ([]string, bool) {
	if len(content) == 0 {
		return nil, false
	}

	text := string(content)
	noTrailingNewline := !strings.HasSuffix(text, "\n")

	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines, noTrailingNewline
}

// BinaryEqual reports whether two sources have identical raw content.
// It is meaningful only when at least one side is binary.
func BinaryEqual(a, b *Source) bool {
	if len(a.Content) != len(b.Content) {
		return false
	}
	return string(a.Content) == string(b.Content)
}

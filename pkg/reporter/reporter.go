// Package reporter formats comparison results for output.
package reporter

import (
	"context"
	"fmt"

	"github.com/klondiff/klondiff/pkg/textdiff"
)

// Compile-time interface checks.
var (
	_ Reporter = (*TextReporter)(nil)
	_ Reporter = (*JSONReporter)(nil)
)

// Comparison bundles everything needed to report one compared pair.
type Comparison struct {
	// LabelA and LabelB are the display names for the two sides.
	LabelA string
	LabelB string

	// Meta holds extra header lines written before the labels, such as
	// the "diff --git" and "index" lines in git external-diff mode.
	Meta []string

	// ALines and BLines are the compared line sequences.
	ALines []string
	BLines []string

	// NoNewlineA and NoNewlineB are true when the respective side does
	// not end with a newline.
	NoNewlineA bool
	NoNewlineB bool

	// Result is the comparison result.
	Result *textdiff.Result
}

// Reporter formats and writes a comparison result.
type Reporter interface {
	// Report writes formatted output for the given comparison.
	// It returns the number of change hunks reported and any write errors.
	Report(ctx context.Context, cmp *Comparison) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	// Default writer to stdout if not specified
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	// Validate and handle format
	format := opts.Format
	if format == "" {
		format = FormatText
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// changeHunkCount counts the hunks that represent a change.
func changeHunkCount(result *textdiff.Result) int {
	var count int
	for _, hunk := range result.Hunks {
		if hunk.Kind != textdiff.HunkEqual {
			count++
		}
	}
	return count
}

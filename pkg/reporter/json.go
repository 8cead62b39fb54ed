package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/klondiff/klondiff/pkg/textdiff"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string      `json:"version"`
	PathA   string      `json:"pathA"`
	PathB   string      `json:"pathB"`
	Hunks   []JSONHunk  `json:"hunks"`
	Summary JSONSummary `json:"summary"`
}

// JSONHunk represents a single hunk with its rendered lines.
type JSONHunk struct {
	Kind   string     `json:"kind"`
	AStart int        `json:"aStart"`
	ACount int        `json:"aCount"`
	BStart int        `json:"bStart"`
	BCount int        `json:"bCount"`
	Lines  []JSONLine `json:"lines"`
}

// JSONLine represents one rendered output line.
type JSONLine struct {
	Side  string     `json:"side"`
	Text  string     `json:"text"`
	ALine int        `json:"aLine,omitempty"`
	BLine int        `json:"bLine,omitempty"`
	Spans []JSONSpan `json:"spans,omitempty"`
}

// JSONSpan is a tagged byte range within a line.
type JSONSpan struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Tag   string `json:"tag"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	Additions int  `json:"additions"`
	Deletions int  `json:"deletions"`
	Changed   bool `json:"changed"`
}

// JSONReporter formats comparison results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, cmp *Comparison) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := buildJSONOutput(cmp)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return changeHunkCount(cmp.Result), nil
}

func buildJSONOutput(cmp *Comparison) *JSONOutput {
	result := cmp.Result

	output := &JSONOutput{
		Version: "1.0.0",
		PathA:   cmp.LabelA,
		PathB:   cmp.LabelB,
		Hunks:   make([]JSONHunk, 0, len(result.Hunks)),
		Summary: JSONSummary{
			Additions: result.Additions,
			Deletions: result.Deletions,
			Changed:   result.Changed(),
		},
	}

	pos := 0
	for _, hunk := range result.Hunks {
		jsonHunk := JSONHunk{
			Kind:   hunk.Kind.String(),
			AStart: hunk.ALo + 1,
			ACount: hunk.AHi - hunk.ALo,
			BStart: hunk.BLo + 1,
			BCount: hunk.BHi - hunk.BLo,
		}

		n := renderedLineCount(hunk)
		for _, line := range result.Lines[pos : pos+n] {
			jsonLine := JSONLine{
				Side: line.Side.String(),
				Text: line.Text,
			}
			if line.AIndex >= 0 {
				jsonLine.ALine = line.AIndex + 1
			}
			if line.BIndex >= 0 {
				jsonLine.BLine = line.BIndex + 1
			}
			for _, span := range line.Spans {
				jsonLine.Spans = append(jsonLine.Spans, JSONSpan{
					Start: span.Start,
					End:   span.End,
					Tag:   spanTagName(span.Tag),
				})
			}
			jsonHunk.Lines = append(jsonHunk.Lines, jsonLine)
		}
		pos += n

		output.Hunks = append(output.Hunks, jsonHunk)
	}

	return output
}

// spanTagName maps span tags to their JSON names.
func spanTagName(tag textdiff.SpanTag) string {
	switch tag {
	case textdiff.SpanUnchanged:
		return "unchanged"
	case textdiff.SpanChanged:
		return "changed"
	case textdiff.SpanIndentChanged:
		return "indent"
	default:
		return "unknown"
	}
}

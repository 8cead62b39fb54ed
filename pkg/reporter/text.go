package reporter

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/klondiff/klondiff/internal/logging"
	"github.com/klondiff/klondiff/internal/ui/pretty"
	"github.com/klondiff/klondiff/pkg/textdiff"
)

// defaultHeaderWidth caps hunk headers when the output is not a terminal.
const defaultHeaderWidth = 80

// noNewlineMarker follows the last line of a file that does not end
// with a newline, as in classic unified output.
const noNewlineMarker = `\ No newline at end of file`

// TextReporter formats comparison results as unified-style terminal
// output. Replaced lines are interleaved pairwise with the edited
// portions highlighted.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// hunkGroup is a run of hunks shown under one header: change hunks
// plus the short equal hunks between them.
type hunkGroup struct {
	first int
	last  int
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, cmp *Comparison) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	result := cmp.Result
	changes := changeHunkCount(result)
	if changes == 0 {
		return 0, nil
	}

	for _, meta := range cmp.Meta {
		fmt.Fprintln(r.bw, r.styles.Meta.Render(meta))
	}
	fmt.Fprintln(r.bw, r.styles.Meta.Render("--- "+cmp.LabelA))
	fmt.Fprintln(r.bw, r.styles.Meta.Render("+++ "+cmp.LabelB))

	segments := splitSegments(result)
	for _, group := range groupHunks(result.Hunks, r.opts.Context) {
		r.writeGroup(cmp, group, segments)
	}

	if r.opts.CheckStyle {
		r.reportStyle(ctx, cmp)
	}

	return changes, nil
}

// reportStyle runs the style check over the new side of the diff.
func (r *TextReporter) reportStyle(ctx context.Context, cmp *Comparison) {
	issues := CheckStyle(cmp.Result.Lines)

	logger := logging.FromContext(ctx)
	for _, issue := range issues {
		switch issue.Kind {
		case StyleLongLine:
			logger.Warn("line too long",
				logging.FieldPath, cmp.LabelB,
				logging.FieldLine, issue.Line,
				logging.FieldWidth, issue.Width)
		default:
			logger.Warn(string(issue.Kind),
				logging.FieldPath, cmp.LabelB,
				logging.FieldLine, issue.Line)
		}
	}

	fmt.Fprint(r.bw, r.styles.FormatStyleSummary(len(issues)))
}

// splitSegments slices the flat render line sequence into one segment
// per hunk. Render order follows hunk order, and each hunk contributes
// a fixed number of lines, so the split is positional.
func splitSegments(result *textdiff.Result) [][]textdiff.RenderLine {
	segments := make([][]textdiff.RenderLine, len(result.Hunks))
	pos := 0
	for i, h := range result.Hunks {
		n := renderedLineCount(h)
		segments[i] = result.Lines[pos : pos+n]
		pos += n
	}
	return segments
}

// renderedLineCount returns how many output lines a hunk produces.
func renderedLineCount(h textdiff.Hunk) int {
	switch h.Kind {
	case textdiff.HunkEqual, textdiff.HunkDelete:
		return h.AHi - h.ALo
	case textdiff.HunkInsert:
		return h.BHi - h.BLo
	default: // replace
		return (h.AHi - h.ALo) + (h.BHi - h.BLo)
	}
}

// groupHunks collects change hunks into display groups. Two changes
// separated by an equal run no longer than twice the context width
// share a group, with the equal run shown in full between them.
func groupHunks(hunks []textdiff.Hunk, contextLines int) []hunkGroup {
	var groups []hunkGroup

	i := 0
	for i < len(hunks) {
		if hunks[i].Kind == textdiff.HunkEqual {
			i++
			continue
		}

		group := hunkGroup{first: i, last: i}
		j := i + 1
		for j < len(hunks) {
			if hunks[j].Kind != textdiff.HunkEqual {
				group.last = j
				j++
				continue
			}
			// Equal hunk: absorb it only if it is short and another
			// change follows.
			if j+1 < len(hunks) && hunks[j].AHi-hunks[j].ALo <= 2*contextLines {
				group.last = j + 1
				j += 2
				continue
			}
			break
		}

		groups = append(groups, group)
		i = group.last + 1
	}

	return groups
}

// writeGroup emits one header plus the group's lines with surrounding
// context.
func (r *TextReporter) writeGroup(cmp *Comparison, group hunkGroup, segments [][]textdiff.RenderLine) {
	hunks := cmp.Result.Hunks

	// Leading context comes from the tail of the preceding equal hunk.
	var leading []textdiff.RenderLine
	if group.first > 0 && hunks[group.first-1].Kind == textdiff.HunkEqual {
		seg := segments[group.first-1]
		n := min(r.opts.Context, len(seg))
		leading = seg[len(seg)-n:]
	}

	// Trailing context comes from the head of the following equal hunk.
	var trailing []textdiff.RenderLine
	if group.last+1 < len(hunks) && hunks[group.last+1].Kind == textdiff.HunkEqual {
		seg := segments[group.last+1]
		n := min(r.opts.Context, len(seg))
		trailing = seg[:n]
	}

	aLo := hunks[group.first].ALo - len(leading)
	bLo := hunks[group.first].BLo - len(leading)

	aCount := len(leading) + len(trailing)
	bCount := aCount
	for i := group.first; i <= group.last; i++ {
		aCount += hunks[i].AHi - hunks[i].ALo
		bCount += hunks[i].BHi - hunks[i].BLo
	}

	r.writeHeader(cmp, aLo, aCount, bLo, bCount)

	for _, line := range leading {
		r.writeLine(cmp, line)
	}
	for i := group.first; i <= group.last; i++ {
		for _, line := range segments[i] {
			r.writeLine(cmp, line)
		}
	}
	for _, line := range trailing {
		r.writeLine(cmp, line)
	}
}

// writeHeader emits the @@ range header with optional function context.
func (r *TextReporter) writeHeader(cmp *Comparison, aLo, aCount, bLo, bCount int) {
	header := fmt.Sprintf("@@ -%s +%s @@",
		formatRange(aLo, aCount), formatRange(bLo, bCount))

	if funcCtx := functionContext(cmp.ALines, aLo); funcCtx != "" {
		budget := r.headerWidth() - runewidth.StringWidth(header) - 1
		if budget > 0 {
			header += " " + runewidth.Truncate(funcCtx, budget, "")
		}
	}

	fmt.Fprintln(r.bw, r.styles.HunkHeader.Render(header))
}

// formatRange renders one side of a hunk header. Line numbers are
// 1-based; a count of 1 is left implicit and a count of 0 points at
// the line before the gap.
func formatRange(lo, count int) string {
	switch count {
	case 0:
		return fmt.Sprintf("%d,0", lo)
	case 1:
		return fmt.Sprintf("%d", lo+1)
	default:
		return fmt.Sprintf("%d,%d", lo+1, count)
	}
}

// functionContext scans backward from aLo for the nearest line that
// starts at column zero with an identifier character, the same
// heuristic diff -p uses to label hunks.
func functionContext(aLines []string, aLo int) string {
	for i := aLo - 1; i >= 0; i-- {
		line := aLines[i]
		if line == "" {
			continue
		}
		c := line[0]
		if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return line
		}
	}
	return ""
}

// headerWidth returns the width budget for hunk headers.
func (r *TextReporter) headerWidth() int {
	if f, ok := r.opts.Writer.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return defaultHeaderWidth
}

// writeLine emits one diff body line with its prefix and styling.
func (r *TextReporter) writeLine(cmp *Comparison, line textdiff.RenderLine) {
	switch line.Side {
	case textdiff.SideBoth:
		fmt.Fprintln(r.bw, " "+line.Text)
	case textdiff.SideA:
		fmt.Fprintln(r.bw, "-"+r.styleSpans(line, r.styles.Removed))
	case textdiff.SideB:
		fmt.Fprintln(r.bw, "+"+r.styleSpans(line, r.styles.Added))
	}

	r.writeNoNewlineMarkers(cmp, line)
}

// writeNoNewlineMarkers emits the missing-newline marker after the
// final line of a side that does not end with a newline.
func (r *TextReporter) writeNoNewlineMarkers(cmp *Comparison, line textdiff.RenderLine) {
	lastA := cmp.NoNewlineA && line.AIndex == len(cmp.ALines)-1 && line.Side != textdiff.SideB
	lastB := cmp.NoNewlineB && line.BIndex == len(cmp.BLines)-1 && line.Side != textdiff.SideA

	if lastA || lastB {
		fmt.Fprintln(r.bw, noNewlineMarker)
	}
}

// styleSpans renders a changed line, coloring each span by its tag.
// Trailing whitespace on new lines is highlighted separately so it
// stands out.
func (r *TextReporter) styleSpans(line textdiff.RenderLine, changed lipgloss.Style) string {
	text := line.Text
	if text == "" {
		return ""
	}

	trailingStart := len(text)
	if line.Side == textdiff.SideB {
		trailingStart = len(strings.TrimRight(text, " \t"))
	}

	var sb strings.Builder
	for _, span := range line.Spans {
		style := r.spanStyle(span.Tag, changed)

		headEnd := min(span.End, max(span.Start, trailingStart))
		if span.Start < headEnd {
			sb.WriteString(style.Render(text[span.Start:headEnd]))
		}

		tailStart := max(span.Start, trailingStart)
		if tailStart < span.End {
			sb.WriteString(r.styles.TrailingSpace.Render(text[tailStart:span.End]))
		}
	}
	return sb.String()
}

// spanStyle maps a span tag to its style.
func (r *TextReporter) spanStyle(tag textdiff.SpanTag, changed lipgloss.Style) lipgloss.Style {
	switch tag {
	case textdiff.SpanUnchanged:
		return r.styles.ChangedSame
	case textdiff.SpanIndentChanged:
		return r.styles.IndentChanged
	default:
		return changed
	}
}

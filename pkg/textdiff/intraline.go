package textdiff

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// SpanTag classifies a contiguous substring of a rendered line.
type SpanTag int

const (
	// SpanUnchanged marks text present on both sides of a changed line.
	SpanUnchanged SpanTag = iota

	// SpanChanged marks added, removed or substituted content.
	SpanChanged

	// SpanIndentChanged marks a leading whitespace run whose length or
	// composition changed, so renderers can treat indentation-only
	// shifts differently from content edits.
	SpanIndentChanged
)

// Span is a tagged byte range [Start,End) of one rendered line. The
// spans of a line are contiguous, non-overlapping and cover the whole
// line.
type Span struct {
	Start int
	End   int
	Tag   SpanTag
}

// Intra-line tuning, taken over from the original colordiff behavior:
// common runs shorter than minCommonRun are folded into the surrounding
// change, and if no common run of at least minAnchorRun exists the
// whole line is treated as replaced.
const (
	minCommonRun = 3
	minAnchorRun = 5
)

// diffLine aligns the characters of an old and new line and classifies
// the resulting spans. Concatenating the returned spans of either side
// reconstructs that side's text exactly.
func diffLine(oldText, newText string) (spansOld, spansNew []Span) {
	oldIndent, oldRest := splitIndent(oldText)
	newIndent, newRest := splitIndent(newText)

	if oldIndent == newIndent {
		// Unchanged indentation is diffed with the rest of the line.
		oldIndent, newIndent = "", ""
		oldRest, newRest = oldText, newText
	} else {
		spansOld = appendSpan(spansOld, 0, len(oldIndent), SpanIndentChanged)
		spansNew = appendSpan(spansNew, 0, len(newIndent), SpanIndentChanged)
	}

	oldBase, newBase := len(oldIndent), len(newIndent)

	if oldRest == newRest {
		spansOld = appendSpan(spansOld, oldBase, oldBase+len(oldRest), SpanUnchanged)
		spansNew = appendSpan(spansNew, newBase, newBase+len(newRest), SpanUnchanged)
		return spansOld, spansNew
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldRest, newRest, false)
	diffs = dmp.DiffCleanupMerge(diffs)
	diffs = dropShortCommonRuns(diffs)

	spansOld = appendDiffSpans(spansOld, diffs, oldBase, diffmatchpatch.DiffDelete)
	spansNew = appendDiffSpans(spansNew, diffs, newBase, diffmatchpatch.DiffInsert)
	return spansOld, spansNew
}

// pairable reports whether two lines share enough content for a
// positional old/new pairing to be worth showing. Lines with no common
// run of at least minAnchorRun read better as a plain delete plus
// insert than as a pair highlighted everywhere.
func pairable(oldText, newText string) bool {
	if foldWhitespace(oldText) == foldWhitespace(newText) {
		return true
	}
	dmp := diffmatchpatch.New()
	for _, d := range dmp.DiffMain(oldText, newText, false) {
		if d.Type == diffmatchpatch.DiffEqual && len(d.Text) >= minAnchorRun {
			return true
		}
	}
	return false
}

// splitIndent splits a line into its leading whitespace run and the
// remainder.
func splitIndent(s string) (indent, rest string) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return s[:i], s[i:]
}

// dropShortCommonRuns demotes equal runs shorter than minCommonRun to
// changed content, and gives up on intra-line alignment entirely when
// the longest equal run is below minAnchorRun. Highlighting a couple
// of coincidental characters inside an otherwise rewritten line reads
// worse than marking the whole line changed.
func dropShortCommonRuns(diffs []diffmatchpatch.Diff) []diffmatchpatch.Diff {
	longest := 0
	for _, d := range diffs {
		if d.Type == diffmatchpatch.DiffEqual && len(d.Text) > longest {
			longest = len(d.Text)
		}
	}

	out := make([]diffmatchpatch.Diff, 0, len(diffs))
	for _, d := range diffs {
		if d.Type == diffmatchpatch.DiffEqual &&
			(longest < minAnchorRun || len(d.Text) < minCommonRun) {
			// Count the run on both sides.
			out = append(out,
				diffmatchpatch.Diff{Type: diffmatchpatch.DiffDelete, Text: d.Text},
				diffmatchpatch.Diff{Type: diffmatchpatch.DiffInsert, Text: d.Text},
			)
			continue
		}
		out = append(out, d)
	}
	return out
}

// appendDiffSpans converts one side of a diffmatchpatch result to
// spans. changedType selects which non-equal runs belong to this side.
func appendDiffSpans(spans []Span, diffs []diffmatchpatch.Diff, base int, changedType diffmatchpatch.Operation) []Span {
	off := base
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			spans = appendSpan(spans, off, off+len(d.Text), SpanUnchanged)
			off += len(d.Text)
		case changedType:
			spans = appendSpan(spans, off, off+len(d.Text), SpanChanged)
			off += len(d.Text)
		}
	}
	return spans
}

// appendSpan adds a span, skipping empty ranges and merging runs that
// continue the previous span with the same tag.
func appendSpan(spans []Span, start, end int, tag SpanTag) []Span {
	if start >= end {
		return spans
	}
	if n := len(spans); n > 0 && spans[n-1].Tag == tag && spans[n-1].End == start {
		spans[n-1].End = end
		return spans
	}
	return append(spans, Span{Start: start, End: end, Tag: tag})
}

// wholeLineSpan tags an entire line with a single span; empty lines get
// no spans.
func wholeLineSpan(text string, tag SpanTag) []Span {
	if text == "" {
		return nil
	}
	return []Span{{Start: 0, End: len(text), Tag: tag}}
}

// spanText returns the substring a span covers.
func spanText(line string, s Span) string {
	return line[s.Start:s.End]
}

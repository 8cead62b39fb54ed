package reporter

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/klondiff/klondiff/pkg/textdiff"
)

// styleMaxWidth is the display width beyond which a line is flagged.
const styleMaxWidth = 79

// StyleIssueKind identifies a class of style issue.
type StyleIssueKind string

const (
	StyleTrailingSpace      StyleIssueKind = "trailing whitespace"
	StyleHardTab            StyleIssueKind = "hard tab in indentation"
	StyleLongLine           StyleIssueKind = "long line"
	StyleSpuriousWhitespace StyleIssueKind = "spurious whitespace change"
)

// StyleIssue is one style finding on a new-side line.
type StyleIssue struct {
	// Line is the 1-based line number in the new file.
	Line int

	// Kind identifies the issue.
	Kind StyleIssueKind

	// Width is the display width of the line, set for long line issues.
	Width int
}

// CheckStyle scans the new side of a rendered comparison for style
// issues. Only added and changed lines are checked, so pre-existing
// issues in untouched code are not reported.
func CheckStyle(lines []textdiff.RenderLine) []StyleIssue {
	var issues []StyleIssue

	for i, line := range lines {
		if line.Side != textdiff.SideB {
			continue
		}

		lineNum := line.BIndex + 1
		text := line.Text

		if strings.TrimRight(text, " \t") != text {
			issues = append(issues, StyleIssue{Line: lineNum, Kind: StyleTrailingSpace})
		}

		indent := text[:len(text)-len(strings.TrimLeft(text, " \t"))]
		if strings.Contains(indent, "\t") {
			issues = append(issues, StyleIssue{Line: lineNum, Kind: StyleHardTab})
		}

		if width := runewidth.StringWidth(text); width > styleMaxWidth {
			issues = append(issues, StyleIssue{Line: lineNum, Kind: StyleLongLine, Width: width})
		}

		// Within a replace hunk the old line of a pair immediately
		// precedes the new one and shares its slot. A pair that agrees
		// once trailing whitespace is stripped changed nothing visible.
		if i > 0 && lines[i-1].Side == textdiff.SideA && lines[i-1].Slot == line.Slot {
			old := lines[i-1].Text
			if old != text && strings.TrimRight(old, " \t") == strings.TrimRight(text, " \t") {
				issues = append(issues, StyleIssue{Line: lineNum, Kind: StyleSpuriousWhitespace})
			}
		}
	}

	return issues
}

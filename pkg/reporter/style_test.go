package reporter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klondiff/klondiff/pkg/reporter"
	"github.com/klondiff/klondiff/pkg/textdiff"
)

func newLine(text string, bIndex int) textdiff.RenderLine {
	return textdiff.RenderLine{Side: textdiff.SideB, Text: text, AIndex: -1, BIndex: bIndex}
}

func TestCheckStyle_TrailingWhitespace(t *testing.T) {
	t.Parallel()

	issues := reporter.CheckStyle([]textdiff.RenderLine{newLine("x := 1  ", 4)})

	require.Len(t, issues, 1)
	assert.Equal(t, reporter.StyleTrailingSpace, issues[0].Kind)
	assert.Equal(t, 5, issues[0].Line)
}

func TestCheckStyle_HardTabIndent(t *testing.T) {
	t.Parallel()

	issues := reporter.CheckStyle([]textdiff.RenderLine{newLine("\tindented", 0)})

	require.Len(t, issues, 1)
	assert.Equal(t, reporter.StyleHardTab, issues[0].Kind)
}

func TestCheckStyle_LongLine(t *testing.T) {
	t.Parallel()

	long := "x := " + strings.Repeat("y", 90)
	issues := reporter.CheckStyle([]textdiff.RenderLine{newLine(long, 2)})

	require.Len(t, issues, 1)
	assert.Equal(t, reporter.StyleLongLine, issues[0].Kind)
	assert.Equal(t, 95, issues[0].Width)
}

func TestCheckStyle_SpuriousWhitespaceChange(t *testing.T) {
	t.Parallel()

	pair := func(oldText, newText string) []textdiff.RenderLine {
		return []textdiff.RenderLine{
			{Side: textdiff.SideA, Text: oldText, Slot: 0, AIndex: 3, BIndex: -1},
			{Side: textdiff.SideB, Text: newText, Slot: 0, AIndex: -1, BIndex: 3},
		}
	}

	t.Run("trailing whitespace is the only change", func(t *testing.T) {
		issues := reporter.CheckStyle(pair("x := compute(input)  ", "x := compute(input)"))
		require.Len(t, issues, 1)
		assert.Equal(t, reporter.StyleSpuriousWhitespace, issues[0].Kind)
		assert.Equal(t, 4, issues[0].Line)
	})

	t.Run("real edits are not flagged", func(t *testing.T) {
		issues := reporter.CheckStyle(pair("x := compute(old)", "x := compute(new)"))
		assert.Empty(t, issues)
	})

	t.Run("identical pair is not flagged", func(t *testing.T) {
		issues := reporter.CheckStyle(pair("x := compute(input)", "x := compute(input)"))
		assert.Empty(t, issues)
	})
}

func TestCheckStyle_IgnoresOldAndContextLines(t *testing.T) {
	t.Parallel()

	lines := []textdiff.RenderLine{
		{Side: textdiff.SideA, Text: "old trailing  ", AIndex: 0, BIndex: -1},
		{Side: textdiff.SideBoth, Text: "context trailing  ", AIndex: 1, BIndex: 1},
	}

	assert.Empty(t, reporter.CheckStyle(lines))
}

func TestCheckStyle_MultipleIssuesOnOneLine(t *testing.T) {
	t.Parallel()

	issues := reporter.CheckStyle([]textdiff.RenderLine{newLine("\tcode ", 0)})

	require.Len(t, issues, 2)
}

func TestCheckStyle_CleanLines(t *testing.T) {
	t.Parallel()

	lines := []textdiff.RenderLine{
		newLine("short and tidy", 0),
		newLine("    space indented", 1),
	}

	assert.Empty(t, reporter.CheckStyle(lines))
}

package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klondiff/klondiff/pkg/reporter"
	"github.com/klondiff/klondiff/pkg/textdiff"
)

func renderJSON(t *testing.T, a, b []string) *reporter.JSONOutput {
	t.Helper()

	result, err := textdiff.Diff(a, b, textdiff.DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{
		Writer: &buf,
		Format: reporter.FormatJSON,
	})
	require.NoError(t, err)

	_, err = rep.Report(context.Background(), &reporter.Comparison{
		LabelA: "a.txt",
		LabelB: "b.txt",
		ALines: a,
		BLines: b,
		Result: result,
	})
	require.NoError(t, err)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	return &output
}

func TestJSONReporter_DisjointLines(t *testing.T) {
	t.Parallel()

	output := renderJSON(t, []string{"foo"}, []string{"bar"})

	assert.Equal(t, "a.txt", output.PathA)
	assert.Equal(t, "b.txt", output.PathB)

	require.Len(t, output.Hunks, 2)
	assert.Equal(t, "delete", output.Hunks[0].Kind)
	assert.Equal(t, "insert", output.Hunks[1].Kind)

	assert.Equal(t, 1, output.Summary.Additions)
	assert.Equal(t, 1, output.Summary.Deletions)
	assert.True(t, output.Summary.Changed)
}

func TestJSONReporter_IncludesAllHunks(t *testing.T) {
	t.Parallel()

	a := []string{"alpha line one", "beta line two", "gamma line three"}
	b := []string{"alpha line one", "beta line 2.0", "gamma line three"}

	output := renderJSON(t, a, b)

	require.Len(t, output.Hunks, 3)
	assert.Equal(t, "equal", output.Hunks[0].Kind)
	assert.Equal(t, "replace", output.Hunks[1].Kind)
	assert.Equal(t, "equal", output.Hunks[2].Kind)

	// Replace hunk carries paired lines with spans
	replace := output.Hunks[1]
	require.Len(t, replace.Lines, 2)
	assert.Equal(t, "a", replace.Lines[0].Side)
	assert.Equal(t, "b", replace.Lines[1].Side)
	assert.Equal(t, 2, replace.Lines[0].ALine)
	assert.Equal(t, 2, replace.Lines[1].BLine)
	assert.NotEmpty(t, replace.Lines[0].Spans)
}

func TestJSONReporter_IdenticalFiles(t *testing.T) {
	t.Parallel()

	lines := []string{"alpha line", "beta line"}
	output := renderJSON(t, lines, lines)

	require.Len(t, output.Hunks, 1)
	assert.Equal(t, "equal", output.Hunks[0].Kind)
	assert.False(t, output.Summary.Changed)
	assert.Zero(t, output.Summary.Additions)
	assert.Zero(t, output.Summary.Deletions)
}

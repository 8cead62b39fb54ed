package textdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHunks(t *testing.T) {
	opts := DefaultOptions()

	t.Run("equal hunk lines are emitted once for both sides", func(t *testing.T) {
		lines := []string{"alpha line", "beta line"}
		seq := NewSequence(lines, opts)
		out := renderHunks(seq, seq, []Hunk{{HunkEqual, 0, 2, 0, 2}})

		require.Len(t, out, 2)
		for i, rl := range out {
			assert.Equal(t, SideBoth, rl.Side)
			assert.Equal(t, lines[i], rl.Text)
			assert.Equal(t, []Span{{0, len(lines[i]), SpanUnchanged}}, rl.Spans)
			assert.Equal(t, i, rl.AIndex)
			assert.Equal(t, i, rl.BIndex)
		}
	})

	t.Run("replace hunk interleaves paired lines", func(t *testing.T) {
		a := NewSequence([]string{"a", "b"}, opts)
		b := NewSequence([]string{"x", "y"}, opts)
		out := renderHunks(a, b, []Hunk{{HunkReplace, 0, 2, 0, 2}})

		require.Len(t, out, 4)
		assert.Equal(t, SideA, out[0].Side)
		assert.Equal(t, "a", out[0].Text)
		assert.Equal(t, SideB, out[1].Side)
		assert.Equal(t, "x", out[1].Text)
		assert.Equal(t, SideA, out[2].Side)
		assert.Equal(t, "b", out[2].Text)
		assert.Equal(t, SideB, out[3].Side)
		assert.Equal(t, "y", out[3].Text)

		assert.Equal(t, 0, out[0].Slot)
		assert.Equal(t, 0, out[1].Slot)
		assert.Equal(t, 1, out[2].Slot)
		assert.Equal(t, 1, out[3].Slot)
	})

	t.Run("replace leftovers follow the paired section", func(t *testing.T) {
		a := NewSequence([]string{"old shared content line"}, opts)
		b := NewSequence([]string{"new shared content line", "extra new line one", "extra new line two"}, opts)
		out := renderHunks(a, b, []Hunk{{HunkReplace, 0, 1, 0, 3}})

		require.Len(t, out, 4)
		assert.Equal(t, SideA, out[0].Side)
		assert.Equal(t, SideB, out[1].Side)
		assert.Equal(t, SideB, out[2].Side)
		assert.Equal(t, SideB, out[3].Side)

		// Leftovers carry a single whole-line changed span.
		assert.Equal(t, []Span{{0, len("extra new line one"), SpanChanged}}, out[2].Spans)
		assert.Equal(t, -1, out[2].AIndex)
		assert.Equal(t, 1, out[2].BIndex)
	})

	t.Run("delete and insert hunks are single-side whole-line changes", func(t *testing.T) {
		a := NewSequence([]string{"removed line"}, opts)
		b := NewSequence([]string{"added line"}, opts)
		out := renderHunks(a, b, []Hunk{
			{HunkDelete, 0, 1, 0, 0},
			{HunkInsert, 1, 1, 0, 1},
		})

		require.Len(t, out, 2)
		assert.Equal(t, SideA, out[0].Side)
		assert.Equal(t, []Span{{0, len("removed line"), SpanChanged}}, out[0].Spans)
		assert.Equal(t, -1, out[0].BIndex)
		assert.Equal(t, SideB, out[1].Side)
		assert.Equal(t, []Span{{0, len("added line"), SpanChanged}}, out[1].Spans)
		assert.Equal(t, -1, out[1].AIndex)
	})

	t.Run("empty lines render without spans", func(t *testing.T) {
		seq := NewSequence([]string{""}, opts)
		out := renderHunks(seq, seq, []Hunk{{HunkEqual, 0, 1, 0, 1}})
		require.Len(t, out, 1)
		assert.Empty(t, out[0].Spans)
	})

	t.Run("hunk order is preserved across hunks", func(t *testing.T) {
		a := NewSequence([]string{"keep this line intact", "drop this old line now"}, opts)
		b := NewSequence([]string{"keep this line intact", "take this new line now"}, opts)
		out := renderHunks(a, b, []Hunk{
			{HunkEqual, 0, 1, 0, 1},
			{HunkReplace, 1, 2, 1, 2},
		})

		require.Len(t, out, 3)
		assert.Equal(t, SideBoth, out[0].Side)
		assert.Equal(t, SideA, out[1].Side)
		assert.Equal(t, SideB, out[2].Side)
	})
}

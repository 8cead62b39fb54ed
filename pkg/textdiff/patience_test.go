package textdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLongestIncreasing(t *testing.T) {
	tests := []struct {
		name  string
		pairs []Match
		want  []Match
	}{
		{
			name:  "empty",
			pairs: nil,
			want:  nil,
		},
		{
			name:  "single pair",
			pairs: []Match{{0, 5}},
			want:  []Match{{0, 5}},
		},
		{
			name:  "already increasing",
			pairs: []Match{{0, 0}, {1, 1}, {2, 2}},
			want:  []Match{{0, 0}, {1, 1}, {2, 2}},
		},
		{
			name:  "crossing pair dropped",
			pairs: []Match{{0, 3}, {1, 1}, {2, 2}},
			want:  []Match{{1, 1}, {2, 2}},
		},
		{
			name:  "fully decreasing keeps one",
			pairs: []Match{{0, 2}, {1, 1}, {2, 0}},
			want:  []Match{{2, 0}},
		},
		{
			name:  "interleaved",
			pairs: []Match{{0, 1}, {1, 4}, {2, 2}, {3, 3}, {4, 0}},
			want:  []Match{{0, 1}, {2, 2}, {3, 3}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := longestIncreasing(tt.pairs)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUniqueMatches(t *testing.T) {
	opts := DefaultOptions()

	seq := func(lines ...string) Sequence { return NewSequence(lines, opts) }

	t.Run("matches lines unique on both sides", func(t *testing.T) {
		a := seq("first line here", "second line here", "third line here")
		b := seq("second line here", "first line here")
		got := uniqueMatches(a, b, opts.AnchorThreshold)
		assert.Equal(t, []Match{{0, 1}, {1, 0}}, got)
	})

	t.Run("duplicated lines never match", func(t *testing.T) {
		a := seq("repeated content", "repeated content", "lonely unique line")
		b := seq("repeated content", "lonely unique line")
		got := uniqueMatches(a, b, opts.AnchorThreshold)
		assert.Equal(t, []Match{{2, 1}}, got, "only the line unique in both sides matches")
	})

	t.Run("low-weight lines are gated out", func(t *testing.T) {
		a := seq("{", "real content goes here", "}")
		b := seq("{", "real content goes here", "}")
		got := uniqueMatches(a, b, opts.AnchorThreshold)
		require.Len(t, got, 1)
		assert.Equal(t, Match{1, 1}, got[0], "brackets must not anchor even though unique")
	})

	t.Run("blank lines never match", func(t *testing.T) {
		a := seq("", "x")
		b := seq("", "y")
		got := uniqueMatches(a, b, opts.AnchorThreshold)
		assert.Empty(t, got)
	})

	t.Run("whitespace-differing lines match by key", func(t *testing.T) {
		a := seq("    indented := value")
		b := seq("\t\tindented := value")
		got := uniqueMatches(a, b, opts.AnchorThreshold)
		assert.Equal(t, []Match{{0, 0}}, got)
	})
}

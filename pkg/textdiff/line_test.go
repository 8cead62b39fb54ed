package textdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKey(t *testing.T) {
	opts := DefaultOptions()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain line", "func main() {", "func main() {"},
		{"leading whitespace stripped", "    x = 1", "x = 1"},
		{"trailing whitespace stripped", "x = 1   \t", "x = 1"},
		{"interior runs collapsed", "a  \t  b", "a b"},
		{"blank line", "", ""},
		{"whitespace only", "   \t ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, _ := normalizeAndWeight(tt.in, opts)
			assert.Equal(t, tt.want, key)
		})
	}
}

func TestNormalizeKeyWithoutFolding(t *testing.T) {
	opts := DefaultOptions()
	opts.WhitespaceFold = false

	key, _ := normalizeAndWeight("    x = 1", opts)
	assert.Equal(t, "    x = 1", key, "raw text is the key when folding is off")
}

func TestWeights(t *testing.T) {
	opts := DefaultOptions()

	weight := func(s string) float64 {
		_, w := normalizeAndWeight(s, opts)
		return w
	}

	t.Run("blank lines weigh zero", func(t *testing.T) {
		assert.Zero(t, weight(""))
		assert.Zero(t, weight("   \t  "))
	})

	t.Run("repeated character banners weigh near zero", func(t *testing.T) {
		assert.Equal(t, opts.RepeatedCharWeight, weight("========"))
		assert.Equal(t, opts.RepeatedCharWeight, weight("----------------------------------------"))
		assert.Equal(t, opts.RepeatedCharWeight, weight("* * * * *"))
	})

	t.Run("short lines weigh below the anchor threshold", func(t *testing.T) {
		for _, s := range []string{"{", "}", ")", "{}", "        }"} {
			w := weight(s)
			assert.Less(t, w, opts.AnchorThreshold, "%q must not qualify as an anchor", s)
			assert.Greater(t, w, 0.0, "%q is still more significant than a blank", s)
		}
	})

	t.Run("normal lines clear the anchor threshold", func(t *testing.T) {
		assert.GreaterOrEqual(t, weight("x := 1"), opts.AnchorThreshold)
	})

	t.Run("weight grows with normalized length", func(t *testing.T) {
		assert.Less(t, weight("short line"), weight("a considerably longer line of code here"))
	})

	t.Run("weight saturates at the cap", func(t *testing.T) {
		long := "this line is well beyond the saturation cap length for weighting"
		longer := long + long
		assert.Equal(t, weight(long), weight(longer))
		assert.LessOrEqual(t, weight(longer), 1.0)
	})

	t.Run("indentation does not affect weight", func(t *testing.T) {
		assert.Equal(t, weight("return nil"), weight("\t\treturn nil"))
	})
}

func TestNewSequence(t *testing.T) {
	seq := NewSequence([]string{"alpha", "", "  beta  "}, DefaultOptions())
	require.Len(t, seq, 3)

	assert.Equal(t, 0, seq[0].Index)
	assert.Equal(t, 1, seq[1].Index)
	assert.Equal(t, 2, seq[2].Index)

	assert.Equal(t, "alpha", seq[0].Key)
	assert.Zero(t, seq[1].Weight)
	assert.Equal(t, "beta", seq[2].Key)
	assert.Equal(t, "  beta  ", seq[2].Text, "original text is retained for rendering")
}

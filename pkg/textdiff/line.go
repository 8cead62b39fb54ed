package textdiff

import (
	"strings"
	"unicode/utf8"
)

// Line is one input line annotated for matching. Lines are built once
// per run and never mutated afterwards.
type Line struct {
	// Text is the original line content without its terminator.
	Text string

	// Index is the zero-based position of the line within its file.
	Index int

	// Key is the normalized comparison key. Two lines with equal keys
	// are considered matching candidates even if their raw text differs
	// in whitespace.
	Key string

	// Weight is the line's importance for anchor selection. Zero means
	// the line is ignored for matching but still rendered.
	Weight float64
}

// Sequence is the ordered list of lines for one file side.
type Sequence []Line

// NewSequence annotates raw lines with comparison keys and weights.
func NewSequence(lines []string, opts Options) Sequence {
	opts = opts.withDefaults()
	seq := make(Sequence, len(lines))
	for i, text := range lines {
		key, weight := normalizeAndWeight(text, opts)
		seq[i] = Line{Text: text, Index: i, Key: key, Weight: weight}
	}
	return seq
}

// normalizeAndWeight derives the comparison key and weight for a single
// line. Both depend only on the line's own text.
func normalizeAndWeight(text string, opts Options) (string, float64) {
	folded := foldWhitespace(text)

	key := folded
	if !opts.WhitespaceFold {
		key = text
	}

	return key, weigh(folded, opts)
}

// foldWhitespace collapses runs of whitespace to a single space and
// strips leading/trailing whitespace, so that pure whitespace edits do
// not change the comparison key.
func foldWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// weigh scores a line's information content. Blank lines weigh zero,
// repeated-character banners and very short lines weigh below the
// anchor threshold, and everything else weighs proportionally to its
// normalized length, saturating at SaturationLength.
func weigh(folded string, opts Options) float64 {
	n := utf8.RuneCountInString(folded)
	switch {
	case n == 0:
		return 0
	case isRepeatedRune(folded):
		return opts.RepeatedCharWeight
	case n < opts.MinSignificantLength:
		return shortLineWeight
	}

	// Normal lines weigh in (AnchorThreshold, 1], so they always qualify
	// as anchors no matter how the threshold is tuned.
	frac := float64(n) / float64(opts.SaturationLength)
	if frac > 1 {
		frac = 1
	}
	return opts.AnchorThreshold + (1-opts.AnchorThreshold)*frac
}

// isRepeatedRune reports whether s is a single character repeated three
// or more times, ignoring interior spaces ("=====", "* * *").
func isRepeatedRune(s string) bool {
	var first rune
	count := 0
	for _, r := range s {
		if r == ' ' {
			continue
		}
		if count == 0 {
			first = r
		} else if r != first {
			return false
		}
		count++
	}
	return count >= 3
}

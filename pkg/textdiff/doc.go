// Package textdiff computes a human-optimized difference between two
// sequences of text lines.
//
// It extends classic patience diff by weighting lines, so that blank
// lines, whitespace-only changes, short punctuation-only lines and
// repeated-character banners contribute less to block-matching
// decisions. The result is rendered as a sequence of tagged lines in
// which the old and new sides of a changed region are interleaved, and
// character-level changes within a modified line are highlighted
// separately from its unchanged portion.
//
// The package performs no I/O and holds no state between calls; Diff is
// a pure function of its inputs and an Options value, and is safe for
// concurrent use across independent file pairs.
package textdiff

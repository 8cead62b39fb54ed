package textdiff

import (
	"fmt"
	"unicode/utf8"
)

// InputError reports malformed input. It is the only failure the
// pipeline surfaces; every well-formed input, however degenerate,
// produces a valid result.
type InputError struct {
	// File is "a" or "b".
	File string

	// Line is the zero-based offending line.
	Line int

	// Err describes the problem.
	Err error
}

// Error implements error.
func (e *InputError) Error() string {
	return fmt.Sprintf("input %s line %d: %v", e.File, e.Line+1, e.Err)
}

// Unwrap returns the underlying cause.
func (e *InputError) Unwrap() error { return e.Err }

// Result is the outcome of a diff run.
type Result struct {
	// Lines is the ordered output sequence.
	Lines []RenderLine

	// Hunks is the hunk partition the lines were rendered from.
	Hunks []Hunk

	// Additions and Deletions count changed lines per side; a replaced
	// line counts once on each.
	Additions int
	Deletions int
}

// Changed reports whether the two inputs differ at all.
func (r *Result) Changed() bool {
	return r.Additions > 0 || r.Deletions > 0
}

// Anchors counts the matched line pairs underlying the result, which
// is useful for debug logging.
func (r *Result) Anchors() int {
	n := 0
	for _, h := range r.Hunks {
		if h.Kind == HunkEqual {
			n += h.AHi - h.ALo
		}
	}
	return n
}

// Diff computes the rendered difference between two files given as
// line slices (already decoded, terminators stripped). It validates
// the input, aligns the sequences with the configured algorithm,
// partitions the alignment into hunks and renders them.
//
// Identical inputs yield one Equal hunk covering everything; inputs
// with no common content yield a Delete hunk followed by an Insert
// hunk. Neither is an error.
func Diff(aLines, bLines []string, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	if err := validateInput("a", aLines); err != nil {
		return nil, err
	}
	if err := validateInput("b", bLines); err != nil {
		return nil, err
	}

	a := NewSequence(aLines, opts)
	b := NewSequence(bLines, opts)

	var matches []Match
	if opts.Algorithm == AlgorithmDifflib {
		matches = sequencerMatches(a, b)
	} else {
		matches = align(a, b, opts)
	}

	hunks := buildHunks(a, b, matches, opts)
	if err := validateHunks(hunks, len(a), len(b)); err != nil {
		// The builder maintains the partition invariant by
		// construction; a violation is a bug, not an input problem.
		return nil, fmt.Errorf("internal: %w", err)
	}

	result := &Result{
		Lines: renderHunks(a, b, hunks),
		Hunks: hunks,
	}
	for _, h := range hunks {
		switch h.Kind {
		case HunkReplace:
			result.Deletions += h.AHi - h.ALo
			result.Additions += h.BHi - h.BLo
		case HunkDelete:
			result.Deletions += h.AHi - h.ALo
		case HunkInsert:
			result.Additions += h.BHi - h.BLo
		}
	}
	return result, nil
}

// validateInput rejects undecodable text before any alignment work.
func validateInput(name string, lines []string) error {
	for i, line := range lines {
		if !utf8.ValidString(line) {
			return &InputError{File: name, Line: i, Err: fmt.Errorf("invalid UTF-8")}
		}
	}
	return nil
}

package textdiff

import (
	"sort"

	"github.com/pmezard/go-difflib/difflib"
)

// region is a pair of half-open index ranges still to be aligned.
type region struct {
	aLo, aHi int
	bLo, bHi int
}

// align finds the ordered, non-crossing set of line correspondences
// between the two sequences. It applies the patience strategy to
// weighted input: lines unique on both sides of a range anchor the
// alignment, and the gaps between anchors are processed recursively.
// The recursion is driven by an explicit worklist, so pathological
// inputs with few anchors and many lines cannot exhaust the stack.
//
// A pair with no unique-common lines anywhere yields an empty result,
// which downstream turns into a single replacement. That is a valid
// degenerate outcome, not an error.
func align(a, b Sequence, opts Options) []Match {
	var matches []Match

	work := []region{{0, len(a), 0, len(b)}}
	for len(work) > 0 {
		r := work[len(work)-1]
		work = work[:len(work)-1]

		if r.aLo >= r.aHi || r.bLo >= r.bHi {
			continue
		}

		sub := uniqueMatches(a[r.aLo:r.aHi], b[r.bLo:r.bHi], opts.AnchorThreshold)
		anchors := longestIncreasing(sub)

		if len(anchors) == 0 {
			matches, work = alignAnchorless(a, b, r, opts, matches, work)
			continue
		}

		matches = append(matches, anchors...)

		// Recurse into the gap before the first anchor, between each
		// consecutive pair, and after the last one.
		prevA, prevB := r.aLo, r.bLo
		for _, m := range anchors {
			if prevA < m.A || prevB < m.B {
				work = append(work, region{prevA, m.A, prevB, m.B})
			}
			prevA, prevB = m.A+1, m.B+1
		}
		if prevA < r.aHi || prevB < r.bHi {
			work = append(work, region{prevA, r.aHi, prevB, r.bHi})
		}
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].A < matches[j].A })
	return matches
}

// alignAnchorless handles a region in which no line is unique on both
// sides. Runs of key-equal lines at the head or tail of the region are
// still consumed as matches; with ExtraEffort enabled, the remainder is
// handed to a plain SequenceMatcher over the normalized keys.
func alignAnchorless(a, b Sequence, r region, opts Options, matches []Match, work []region) ([]Match, []region) {
	switch {
	case a[r.aLo].Key == b[r.bLo].Key:
		for r.aLo < r.aHi && r.bLo < r.bHi && a[r.aLo].Key == b[r.bLo].Key {
			matches = append(matches, Match{A: a[r.aLo].Index, B: b[r.bLo].Index})
			r.aLo++
			r.bLo++
		}
		work = append(work, r)

	case a[r.aHi-1].Key == b[r.bHi-1].Key:
		for r.aHi > r.aLo && r.bHi > r.bLo && a[r.aHi-1].Key == b[r.bHi-1].Key {
			matches = append(matches, Match{A: a[r.aHi-1].Index, B: b[r.bHi-1].Index})
			r.aHi--
			r.bHi--
		}
		work = append(work, r)

	case opts.ExtraEffort:
		matches = append(matches, sequencerMatches(a[r.aLo:r.aHi], b[r.bLo:r.bHi])...)
	}
	return matches, work
}

// sequencerMatches matches two sub-sequences with difflib's
// SequenceMatcher over their normalized keys. Used for the difflib
// algorithm preset and for extra-effort gap matching, where patience
// anchoring found nothing but similar non-unique content may still
// line up.
func sequencerMatches(a, b Sequence) []Match {
	aKeys := make([]string, len(a))
	for i, line := range a {
		aKeys[i] = line.Key
	}
	bKeys := make([]string, len(b))
	for i, line := range b {
		bKeys[i] = line.Key
	}

	var matches []Match
	for _, blk := range difflib.NewMatcher(aKeys, bKeys).GetMatchingBlocks() {
		for k := 0; k < blk.Size; k++ {
			matches = append(matches, Match{A: a[blk.A+k].Index, B: b[blk.B+k].Index})
		}
	}
	return matches
}

// checkMonotonic verifies that match indices strictly increase on both
// sides. The aligner maintains this by construction; the check guards
// the invariant in tests and debug builds.
func checkMonotonic(matches []Match) bool {
	for i := 1; i < len(matches); i++ {
		if matches[i].A <= matches[i-1].A || matches[i].B <= matches[i-1].B {
			return false
		}
	}
	return true
}

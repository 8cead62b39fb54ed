package textdiff

import "sort"

// Match pairs line Index values: line A of the old side corresponds to
// line B of the new side.
type Match struct {
	A int
	B int
}

// uniqueMatches finds lines whose key occurs exactly once in each of
// the given (sub)sequences and carries enough weight to anchor a match.
// Results are ordered by A position; pair indices are the Line.Index
// values, not offsets into the sub-slices.
func uniqueMatches(a, b Sequence, anchorThreshold float64) []Match {
	type occurrence struct {
		count int
		pos   int // offset within the sub-slice
	}

	// Occurrence maps are built per call on the sub-range, keeping the
	// cost proportional to gap size.
	aOcc := make(map[string]*occurrence, len(a))
	for i, line := range a {
		if line.Weight < anchorThreshold {
			continue
		}
		if o, ok := aOcc[line.Key]; ok {
			o.count++
		} else {
			aOcc[line.Key] = &occurrence{count: 1, pos: i}
		}
	}

	bOcc := make(map[string]*occurrence, len(b))
	for i, line := range b {
		if line.Weight < anchorThreshold {
			continue
		}
		if o, ok := bOcc[line.Key]; ok {
			o.count++
		} else {
			bOcc[line.Key] = &occurrence{count: 1, pos: i}
		}
	}

	var pairs []Match
	for i, line := range a {
		ao, ok := aOcc[line.Key]
		if !ok || ao.count != 1 || ao.pos != i {
			continue
		}
		bo, ok := bOcc[line.Key]
		if !ok || bo.count != 1 {
			continue
		}
		pairs = append(pairs, Match{A: line.Index, B: b[bo.pos].Index})
	}
	return pairs
}

// longestIncreasing selects the longest subsequence of pairs whose B
// positions strictly increase, assuming input ordered by A position.
// This is the patience-sorting step: pairs are dealt onto stacks keyed
// by B position and the winning chain is recovered through
// backpointers. Ties cannot occur because pair positions are unique;
// among equal-length chains the one starting at the lowest A index wins
// deterministically.
func longestIncreasing(pairs []Match) []Match {
	if len(pairs) == 0 {
		return nil
	}

	// tops[k] is the smallest B value ending an increasing chain of
	// length k+1; links[i] points at the predecessor of pairs[i].
	tops := make([]int, 0, len(pairs))
	tails := make([]int, 0, len(pairs)) // index into pairs for each stack top
	links := make([]int, len(pairs))

	for i, p := range pairs {
		// Most anchors extend the rightmost stack; check it before
		// paying for a binary search.
		var k int
		if len(tops) > 0 && tops[len(tops)-1] < p.B {
			k = len(tops)
		} else {
			k = sort.SearchInts(tops, p.B)
		}

		if k > 0 {
			links[i] = tails[k-1]
		} else {
			links[i] = -1
		}
		if k < len(tops) {
			tops[k] = p.B
			tails[k] = i
		} else {
			tops = append(tops, p.B)
			tails = append(tails, i)
		}
	}

	chain := make([]Match, len(tops))
	at := tails[len(tails)-1]
	for k := len(chain) - 1; k >= 0; k-- {
		chain[k] = pairs[at]
		at = links[at]
	}
	return chain
}

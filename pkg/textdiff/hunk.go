package textdiff

import "fmt"

// HunkKind classifies a contiguous span of the alignment.
type HunkKind int

const (
	// HunkEqual covers lines whose raw text is identical on both sides.
	HunkEqual HunkKind = iota

	// HunkReplace covers old lines replaced by new lines.
	HunkReplace

	// HunkInsert covers lines present only on the new side.
	HunkInsert

	// HunkDelete covers lines present only on the old side.
	HunkDelete
)

// String returns the hunk kind name.
func (k HunkKind) String() string {
	switch k {
	case HunkEqual:
		return "equal"
	case HunkReplace:
		return "replace"
	case HunkInsert:
		return "insert"
	case HunkDelete:
		return "delete"
	default:
		return fmt.Sprintf("HunkKind(%d)", int(k))
	}
}

// Hunk is a contiguous span of the diff. The half-open ranges [ALo,AHi)
// and [BLo,BHi) cover the old and new sides; insert hunks have an empty
// A range and delete hunks an empty B range. Concatenating all hunks'
// ranges reconstructs both files completely and in order.
type Hunk struct {
	Kind HunkKind
	ALo  int
	AHi  int
	BLo  int
	BHi  int
}

// buildHunks converts the alignment into the ordered hunk partition.
//
// Matched pairs whose raw text is identical merge into Equal hunks.
// A matched pair whose raw text differs (the keys matched but the
// whitespace did not) becomes a one-line Replace hunk instead, which
// is what lets the renderer highlight whitespace-only changes.
// Unmatched ranges become Replace, Insert or Delete hunks depending on
// which sides are non-empty.
func buildHunks(a, b Sequence, matches []Match, opts Options) []Hunk {
	opts = opts.withDefaults()

	var hunks []Hunk
	ai, bi := 0, 0

	emitGap := func(aHi, bHi int) {
		switch {
		case ai < aHi && bi < bHi:
			// A gap with content on both sides is a replacement only if
			// some positional pair actually shares content; completely
			// disjoint blocks read better as delete followed by insert.
			if gapPairable(a[ai:aHi], b[bi:bHi]) {
				hunks = append(hunks, Hunk{Kind: HunkReplace, ALo: ai, AHi: aHi, BLo: bi, BHi: bHi})
			} else {
				hunks = append(hunks,
					Hunk{Kind: HunkDelete, ALo: ai, AHi: aHi, BLo: bi, BHi: bi},
					Hunk{Kind: HunkInsert, ALo: aHi, AHi: aHi, BLo: bi, BHi: bHi},
				)
			}
		case ai < aHi:
			hunks = append(hunks, Hunk{Kind: HunkDelete, ALo: ai, AHi: aHi, BLo: bi, BHi: bi})
		case bi < bHi:
			hunks = append(hunks, Hunk{Kind: HunkInsert, ALo: ai, AHi: ai, BLo: bi, BHi: bHi})
		}
		ai, bi = aHi, bHi
	}

	for _, m := range matches {
		emitGap(m.A, m.B)

		kind := HunkEqual
		if a[m.A].Text != b[m.B].Text {
			kind = HunkReplace
		}

		// Extend the previous hunk when the pair continues it
		// contiguously on both sides.
		if n := len(hunks); n > 0 {
			last := &hunks[n-1]
			if last.Kind == kind && last.AHi == m.A && last.BHi == m.B &&
				(kind == HunkEqual || last.AHi-last.ALo == last.BHi-last.BLo) {
				last.AHi, last.BHi = m.A+1, m.B+1
				ai, bi = m.A+1, m.B+1
				continue
			}
		}
		hunks = append(hunks, Hunk{Kind: kind, ALo: m.A, AHi: m.A + 1, BLo: m.B, BHi: m.B + 1})
		ai, bi = m.A+1, m.B+1
	}
	emitGap(len(a), len(b))

	return coalesce(hunks, a, opts)
}

// gapPairable reports whether any positional line pair of an unmatched
// gap shares enough content to justify a replace pairing.
func gapPairable(a, b Sequence) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if pairable(a[i].Text, b[i].Text) {
			return true
		}
	}
	return false
}

// coalesce absorbs weak equal lines at the edge of an Equal hunk into
// the adjacent Replace hunk, so that one coincidentally-equal blank or
// bracket line does not split a logical change in two. A line at or
// above the anchor threshold matched deliberately and always holds its
// context; below it, the coalesce threshold decides. Replace hunks
// joined by an absorbed line merge into one; Replace hunks that were
// merely adjacent to begin with keep their boundary, so a one-line
// whitespace Replace next to an unrelated gap replacement stays its
// own pair.
func coalesce(hunks []Hunk, a Sequence, opts Options) []Hunk {
	if opts.CoalesceThreshold <= 0 {
		return hunks
	}
	weak := func(i int) bool {
		return a[i].Weight < opts.CoalesceThreshold && a[i].Weight < opts.AnchorThreshold
	}

	out := make([]Hunk, 0, len(hunks))

	// tailAbsorbed marks that the last line of out's final hunk was
	// absorbed from an Equal hunk; only such a line may bridge two
	// Replace hunks into one.
	tailAbsorbed := false

	emit := func(h Hunk, headAbsorbed bool) {
		if n := len(out); n > 0 {
			last := &out[n-1]
			if last.Kind == HunkReplace && h.Kind == HunkReplace &&
				last.AHi == h.ALo && last.BHi == h.BLo &&
				(tailAbsorbed || headAbsorbed) {
				last.AHi, last.BHi = h.AHi, h.BHi
				tailAbsorbed = false
				return
			}
		}
		out = append(out, h)
		tailAbsorbed = false
	}

	carry := 0
	for i, h := range hunks {
		h.ALo -= carry
		h.BLo -= carry
		headAbsorbed := carry > 0
		carry = 0

		if h.Kind != HunkEqual {
			emit(h, headAbsorbed)
			continue
		}

		// Peel one weak line off each edge that borders a Replace.
		if n := len(out); n > 0 && out[n-1].Kind == HunkReplace &&
			h.ALo < h.AHi && weak(h.ALo) {
			last := &out[n-1]
			last.AHi++
			last.BHi++
			h.ALo++
			h.BLo++
			tailAbsorbed = true
		}
		if i+1 < len(hunks) && hunks[i+1].Kind == HunkReplace &&
			h.ALo < h.AHi && weak(h.AHi-1) {
			h.AHi--
			h.BHi--
			carry = 1
		}
		if h.ALo < h.AHi {
			emit(h, false)
		}
	}
	return out
}

// validateHunks checks the partition invariant: hunk ranges tile both
// sequences exactly, in order, with no gaps or overlaps.
func validateHunks(hunks []Hunk, lenA, lenB int) error {
	ai, bi := 0, 0
	for _, h := range hunks {
		if h.ALo != ai || h.BLo != bi {
			return fmt.Errorf("hunk %v starts at (%d,%d), want (%d,%d)", h.Kind, h.ALo, h.BLo, ai, bi)
		}
		if h.AHi < h.ALo || h.BHi < h.BLo {
			return fmt.Errorf("hunk %v has negative extent", h.Kind)
		}
		ai, bi = h.AHi, h.BHi
	}
	if ai != lenA || bi != lenB {
		return fmt.Errorf("hunks end at (%d,%d), want (%d,%d)", ai, bi, lenA, lenB)
	}
	return nil
}

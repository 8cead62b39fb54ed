package textdiff

// Side identifies which file a rendered line belongs to.
type Side int

const (
	// SideBoth is an unchanged line present in both files.
	SideBoth Side = iota

	// SideA is a line from the old file.
	SideA

	// SideB is a line from the new file.
	SideB
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideBoth:
		return "both"
	case SideA:
		return "a"
	case SideB:
		return "b"
	default:
		return "?"
	}
}

// RenderLine is one line of diff output: which side it comes from, its
// text, the tagged spans covering the text, and the slot used for
// interleaving. Within a replace hunk, the old and new line of a pair
// share a slot; unpaired leftovers get slots after the paired section.
type RenderLine struct {
	Side  Side
	Text  string
	Spans []Span
	Slot  int

	// AIndex and BIndex are the zero-based line numbers in the old and
	// new file, or -1 for the side the line does not belong to.
	AIndex int
	BIndex int
}

// renderHunks turns the hunk partition into the ordered output line
// sequence. Hunk order is preserved; inside a replace hunk, paired old
// and new lines are interleaved (old0, new0, old1, new1, ...) so that
// corresponding lines sit next to each other instead of forming two
// separate blocks.
func renderHunks(a, b Sequence, hunks []Hunk) []RenderLine {
	var out []RenderLine

	for _, h := range hunks {
		switch h.Kind {
		case HunkEqual:
			for k := 0; h.ALo+k < h.AHi; k++ {
				line := a[h.ALo+k]
				out = append(out, RenderLine{
					Side:   SideBoth,
					Text:   line.Text,
					Spans:  wholeLineSpan(line.Text, SpanUnchanged),
					Slot:   k,
					AIndex: h.ALo + k,
					BIndex: h.BLo + k,
				})
			}

		case HunkDelete:
			for k := 0; h.ALo+k < h.AHi; k++ {
				line := a[h.ALo+k]
				out = append(out, RenderLine{
					Side:   SideA,
					Text:   line.Text,
					Spans:  wholeLineSpan(line.Text, SpanChanged),
					Slot:   k,
					AIndex: h.ALo + k,
					BIndex: -1,
				})
			}

		case HunkInsert:
			for k := 0; h.BLo+k < h.BHi; k++ {
				line := b[h.BLo+k]
				out = append(out, RenderLine{
					Side:   SideB,
					Text:   line.Text,
					Spans:  wholeLineSpan(line.Text, SpanChanged),
					Slot:   k,
					AIndex: -1,
					BIndex: h.BLo + k,
				})
			}

		case HunkReplace:
			out = append(out, renderReplace(a, b, h)...)
		}
	}
	return out
}

// renderReplace pairs the old and new ranges of a replace hunk
// positionally, old line i with new line i, and emits each pair
// interleaved with intra-line span highlighting. The aligner has
// already claimed every beneficial match, so leftover replace content
// is assumed position-correlated and no re-alignment search happens
// here. Leftover lines of the longer side follow the paired section as
// plain single-side changes.
func renderReplace(a, b Sequence, h Hunk) []RenderLine {
	m := h.AHi - h.ALo
	n := h.BHi - h.BLo
	paired := m
	if n < paired {
		paired = n
	}

	out := make([]RenderLine, 0, m+n)
	for i := 0; i < paired; i++ {
		oldLine := a[h.ALo+i]
		newLine := b[h.BLo+i]
		spansOld, spansNew := diffLine(oldLine.Text, newLine.Text)
		out = append(out,
			RenderLine{
				Side:   SideA,
				Text:   oldLine.Text,
				Spans:  spansOld,
				Slot:   i,
				AIndex: h.ALo + i,
				BIndex: -1,
			},
			RenderLine{
				Side:   SideB,
				Text:   newLine.Text,
				Spans:  spansNew,
				Slot:   i,
				AIndex: -1,
				BIndex: h.BLo + i,
			},
		)
	}

	for i := paired; i < m; i++ {
		line := a[h.ALo+i]
		out = append(out, RenderLine{
			Side:   SideA,
			Text:   line.Text,
			Spans:  wholeLineSpan(line.Text, SpanChanged),
			Slot:   i,
			AIndex: h.ALo + i,
			BIndex: -1,
		})
	}
	for i := paired; i < n; i++ {
		line := b[h.BLo+i]
		out = append(out, RenderLine{
			Side:   SideB,
			Text:   line.Text,
			Spans:  wholeLineSpan(line.Text, SpanChanged),
			Slot:   i,
			AIndex: -1,
			BIndex: h.BLo + i,
		})
	}
	return out
}

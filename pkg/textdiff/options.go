package textdiff

// Algorithm selects the line-matching strategy.
type Algorithm string

const (
	// AlgorithmKlondike is the weighted patience algorithm (default).
	AlgorithmKlondike Algorithm = "klondike"

	// AlgorithmPatience is classic patience diff: every non-blank line
	// may act as an anchor and no hunk coalescing is applied.
	AlgorithmPatience Algorithm = "patience"

	// AlgorithmDifflib matches the whole pair with a plain
	// SequenceMatcher over normalized keys.
	AlgorithmDifflib Algorithm = "difflib"
)

// IsValid returns true if the algorithm is one of the known strategies.
func (a Algorithm) IsValid() bool {
	switch a {
	case AlgorithmKlondike, AlgorithmPatience, AlgorithmDifflib:
		return true
	default:
		return false
	}
}

// Default tuning values. The weighting formula is a heuristic tuned by
// example outputs; every threshold is exposed through Options.
const (
	// DefaultMinSignificantLength is the normalized length below which a
	// line is too short to anchor a match (lone brackets, punctuation).
	DefaultMinSignificantLength = 3

	// DefaultRepeatedCharWeight is the weight given to lines consisting
	// of a single repeated character, such as "========" banners.
	DefaultRepeatedCharWeight = 0.05

	// DefaultCoalesceThreshold is the weight below which a single
	// coincidentally-equal line between changes is absorbed into the
	// surrounding replacement.
	DefaultCoalesceThreshold = 0.3

	// DefaultAnchorThreshold is the minimum weight a line needs to act
	// as a unique anchor during alignment.
	DefaultAnchorThreshold = 0.2

	// DefaultSaturationLength is the normalized length at which the
	// length-proportional part of a line's weight saturates.
	DefaultSaturationLength = 40

	// shortLineWeight is given to lines shorter than the minimum
	// significant length. Below the anchor threshold on purpose.
	shortLineWeight = 0.1
)

// Options configures the diff pipeline. The zero value is not useful;
// start from DefaultOptions.
type Options struct {
	// Algorithm selects the matching strategy.
	Algorithm Algorithm

	// MinSignificantLength is the normalized length below which a line
	// receives near-zero weight.
	MinSignificantLength int

	// RepeatedCharWeight is the weight for single-repeated-character
	// lines, regardless of their length.
	RepeatedCharWeight float64

	// WhitespaceFold collapses whitespace runs when building comparison
	// keys so that pure whitespace edits do not prevent a match.
	WhitespaceFold bool

	// CoalesceThreshold is the hunk-builder absorption threshold.
	CoalesceThreshold float64

	// AnchorThreshold is the minimum weight for anchor eligibility.
	AnchorThreshold float64

	// SaturationLength caps the length-proportional weight component.
	SaturationLength int

	// ExtraEffort re-matches gaps that produced no unique anchors with
	// a plain SequenceMatcher over normalized keys.
	ExtraEffort bool
}

// DefaultOptions returns the tuning used by the klondiff CLI.
func DefaultOptions() Options {
	return Options{
		Algorithm:            AlgorithmKlondike,
		MinSignificantLength: DefaultMinSignificantLength,
		RepeatedCharWeight:   DefaultRepeatedCharWeight,
		WhitespaceFold:       true,
		CoalesceThreshold:    DefaultCoalesceThreshold,
		AnchorThreshold:      DefaultAnchorThreshold,
		SaturationLength:     DefaultSaturationLength,
	}
}

// withDefaults fills unset numeric fields so that a partially populated
// Options value still produces a sane pipeline. Zero is a meaningful
// value for the thresholds (an AnchorThreshold of 0 lets any non-blank
// line anchor, a CoalesceThreshold of 0 disables absorption), so only
// negative values fall back to the defaults.
func (o Options) withDefaults() Options {
	if o.Algorithm == "" {
		o.Algorithm = AlgorithmKlondike
	}
	if o.MinSignificantLength < 0 {
		o.MinSignificantLength = DefaultMinSignificantLength
	}
	if o.RepeatedCharWeight < 0 {
		o.RepeatedCharWeight = DefaultRepeatedCharWeight
	}
	if o.CoalesceThreshold < 0 {
		o.CoalesceThreshold = DefaultCoalesceThreshold
	}
	if o.AnchorThreshold < 0 {
		o.AnchorThreshold = DefaultAnchorThreshold
	}
	if o.SaturationLength <= 0 {
		o.SaturationLength = DefaultSaturationLength
	}
	// Preset adjustments. Classic patience lets any line anchor and
	// never coalesces equal lines into replacements.
	if o.Algorithm == AlgorithmPatience {
		o.AnchorThreshold = 0
		o.CoalesceThreshold = 0
	}
	return o
}

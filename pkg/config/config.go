// Package config defines core configuration types for klondiff.
// These types are pure data structures with no dependency on the
// comparison engine or any config loader.
package config

// Algorithm selects the line alignment strategy.
type Algorithm string

const (
	AlgorithmKlondike Algorithm = "klondike"
	AlgorithmPatience Algorithm = "patience"
	AlgorithmDifflib  Algorithm = "difflib"
)

// IsValid returns true if the algorithm name is recognized.
func (a Algorithm) IsValid() bool {
	switch a {
	case AlgorithmKlondike, AlgorithmPatience, AlgorithmDifflib:
		return true
	default:
		return false
	}
}

// OutputFormat specifies the output format for comparison results.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is recognized.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// ColorMode controls when output is colorized.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is recognized.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// WeightsConfig holds the tuning knobs for line weighting.
// Zero values mean "use the built-in default".
type WeightsConfig struct {
	// MinSignificantLength is the minimum normalized length for a line
	// to carry full weight.
	MinSignificantLength int `yaml:"min_significant_length"`

	// RepeatedCharWeight is the weight assigned to separator lines
	// made of a single repeated character.
	RepeatedCharWeight float64 `yaml:"repeated_char_weight"`

	// AnchorThreshold is the minimum weight for a line to serve as an
	// alignment anchor.
	AnchorThreshold float64 `yaml:"anchor_threshold"`

	// SaturationLength is the normalized length at which line weight
	// reaches its maximum.
	SaturationLength int `yaml:"saturation_length"`

	// CoalesceThreshold is the maximum weight of a matched line that
	// may be absorbed into a surrounding change.
	CoalesceThreshold float64 `yaml:"coalesce_threshold"`
}

// Config is the root configuration structure for klondiff.
type Config struct {
	// Algorithm selects the alignment strategy.
	Algorithm Algorithm `yaml:"algorithm"`

	// Context is the number of unchanged lines shown around each change.
	Context int `yaml:"context"`

	// Color controls when output is colorized.
	Color ColorMode `yaml:"color"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"format"`

	// CheckStyle reports style issues on changed lines.
	CheckStyle bool `yaml:"check_style"`

	// ExtraEffort enables the fallback matcher inside unanchored gaps.
	ExtraEffort bool `yaml:"extra_effort"`

	// WhitespaceFold folds runs of whitespace before comparing lines.
	// Nil means the default (enabled).
	WhitespaceFold *bool `yaml:"whitespace_fold"`

	// Weights contains the line weighting knobs.
	Weights WeightsConfig `yaml:"weights"`

	// CLI-level options (not persisted to config files).

	// Stat prints a one-line change summary instead of the full diff.
	Stat bool `yaml:"-"`

	// Debug enables debug logging.
	Debug bool `yaml:"-"`
}

// Default weight knob values. These mirror the comparison engine's
// built-in defaults so generated config templates stay in sync.
const (
	DefaultContext              = 3
	DefaultMinSignificantLength = 3
	DefaultRepeatedCharWeight   = 0.05
	DefaultAnchorThreshold      = 0.2
	DefaultSaturationLength     = 40
	DefaultCoalesceThreshold    = 0.3
)

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Algorithm: AlgorithmKlondike,
		Context:   DefaultContext,
		Color:     ColorAuto,
		Format:    FormatText,
		Weights: WeightsConfig{
			MinSignificantLength: DefaultMinSignificantLength,
			RepeatedCharWeight:   DefaultRepeatedCharWeight,
			AnchorThreshold:      DefaultAnchorThreshold,
			SaturationLength:     DefaultSaturationLength,
			CoalesceThreshold:    DefaultCoalesceThreshold,
		},
	}
}

// WhitespaceFoldEnabled reports the effective whitespace folding setting.
func (c *Config) WhitespaceFoldEnabled() bool {
	if c.WhitespaceFold == nil {
		return true
	}
	return *c.WhitespaceFold
}

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes every setting with its default value.
	// If false, generates a minimal commented template.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return templateToJSON()
	}
	if opts.Full {
		return generateFullTemplate(), nil
	}
	return generateMinimalTemplate(), nil
}

// generateMinimalTemplate creates a minimal commented template.
func generateMinimalTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(`# klondiff configuration
# See: https://github.com/klondiff/klondiff

# Alignment algorithm: klondike, patience, or difflib
algorithm: klondike

# Unchanged lines shown around each change
# context: 3

# Colorize output: auto, always, or never
# color: auto

# Output format: text or json
# format: text

# Report style issues on changed lines
# check_style: false

# Run the fallback matcher inside unanchored gaps (slower)
# extra_effort: false

# Fold whitespace runs before comparing lines
# whitespace_fold: true

# Line weighting knobs
# weights:
#   min_significant_length: 3
#   repeated_char_weight: 0.05
#   anchor_threshold: 0.2
#   saturation_length: 40
#   coalesce_threshold: 0.3
`)

	return buf.Bytes()
}

// generateFullTemplate creates a template with every setting spelled out.
func generateFullTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(`# klondiff configuration - Full Template
# See: https://github.com/klondiff/klondiff
#
# This template includes every setting with its default value.

# Alignment algorithm: klondike, patience, or difflib
algorithm: klondike

# Unchanged lines shown around each change
context: 3

# Colorize output: auto, always, or never
color: auto

# Output format: text or json
format: text

# Report style issues on changed lines
check_style: false

# Run the fallback matcher inside unanchored gaps (slower)
extra_effort: false

# Fold whitespace runs before comparing lines
whitespace_fold: true

# Line weighting knobs
weights:
  # Minimum normalized length for a line to carry full weight
  min_significant_length: 3
  # Weight of separator lines made of one repeated character
  repeated_char_weight: 0.05
  # Minimum weight for a line to serve as an alignment anchor
  anchor_threshold: 0.2
  # Normalized length at which line weight saturates
  saturation_length: 40
  # Maximum weight of a matched line absorbable into a change
  coalesce_threshold: 0.3
`)

	return buf.Bytes()
}

// templateToJSON renders the default configuration as JSON.
func templateToJSON() ([]byte, error) {
	cfg := map[string]any{
		"algorithm":       "klondike",
		"context":         DefaultContext,
		"color":           "auto",
		"format":          "text",
		"check_style":     false,
		"extra_effort":    false,
		"whitespace_fold": true,
		"weights": map[string]any{
			"min_significant_length": DefaultMinSignificantLength,
			"repeated_char_weight":   DefaultRepeatedCharWeight,
			"anchor_threshold":       DefaultAnchorThreshold,
			"saturation_length":      DefaultSaturationLength,
			"coalesce_threshold":     DefaultCoalesceThreshold,
		},
	}

	jsonBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}

	return jsonBytes, nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# klondiff configuration
# See: https://github.com/klondiff/klondiff`
}

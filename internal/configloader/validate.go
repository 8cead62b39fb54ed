package configloader

import (
	"fmt"
	"strings"

	"github.com/klondiff/klondiff/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "weights.anchor_threshold").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	if cfg.Algorithm != "" && !cfg.Algorithm.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "algorithm",
			Value:   cfg.Algorithm,
			Message: fmt.Sprintf("invalid algorithm %q; must be one of: klondike, patience, difflib", cfg.Algorithm),
		})
	}

	if cfg.Color != "" && !cfg.Color.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", cfg.Color),
		})
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, json", cfg.Format),
		})
	}

	if cfg.Context < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "context",
			Value:   cfg.Context,
			Message: "context must be >= 0",
		})
	}

	validateWeights(cfg, result)

	return result
}

// validateWeights checks the weighting knobs for out-of-range values.
func validateWeights(cfg *config.Config, result *ValidationResult) {
	w := cfg.Weights

	if w.MinSignificantLength < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "weights.min_significant_length",
			Value:   w.MinSignificantLength,
			Message: "min_significant_length must be >= 0",
		})
	}

	if w.SaturationLength < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "weights.saturation_length",
			Value:   w.SaturationLength,
			Message: "saturation_length must be >= 0",
		})
	}

	for _, knob := range []struct {
		field string
		value float64
	}{
		{"weights.repeated_char_weight", w.RepeatedCharWeight},
		{"weights.anchor_threshold", w.AnchorThreshold},
		{"weights.coalesce_threshold", w.CoalesceThreshold},
	} {
		if knob.value < 0 || knob.value > 1 {
			result.Errors = append(result.Errors, ValidationError{
				Field:   knob.field,
				Value:   knob.value,
				Message: "must be between 0 and 1",
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	// Add file path to all errors and warnings
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

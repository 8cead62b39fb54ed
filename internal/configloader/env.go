package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/klondiff/klondiff/pkg/config"
)

// envVarPrefix is the prefix for all klondiff environment variables.
const envVarPrefix = "KLONDIFF_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeFloat
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"ALGORITHM":              {field: "algorithm", typ: envTypeString},
	"CONTEXT":                {field: "context", typ: envTypeInt},
	"COLOR":                  {field: "color", typ: envTypeString},
	"FORMAT":                 {field: "format", typ: envTypeString},
	"CHECK_STYLE":            {field: "check_style", typ: envTypeBool},
	"EXTRA_EFFORT":           {field: "extra_effort", typ: envTypeBool},
	"WHITESPACE_FOLD":        {field: "whitespace_fold", typ: envTypeBool},
	"MIN_SIGNIFICANT_LENGTH": {field: "weights.min_significant_length", typ: envTypeInt},
	"REPEATED_CHAR_WEIGHT":   {field: "weights.repeated_char_weight", typ: envTypeFloat},
	"ANCHOR_THRESHOLD":       {field: "weights.anchor_threshold", typ: envTypeFloat},
	"SATURATION_LENGTH":      {field: "weights.saturation_length", typ: envTypeInt},
	"COALESCE_THRESHOLD":     {field: "weights.coalesce_threshold", typ: envTypeFloat},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with KLONDIFF_ (e.g., KLONDIFF_ALGORITHM).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid number for %s: %q", envVar, value)
		}
		return setFloatField(cfg, mapping.field, f)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "algorithm":
		cfg.Algorithm = config.Algorithm(value)
	case "color":
		cfg.Color = config.ColorMode(value)
	case "format":
		cfg.Format = config.OutputFormat(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "check_style":
		cfg.CheckStyle = value
	case "extra_effort":
		cfg.ExtraEffort = value
	case "whitespace_fold":
		cfg.WhitespaceFold = &value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "context":
		cfg.Context = value
	case "weights.min_significant_length":
		cfg.Weights.MinSignificantLength = value
	case "weights.saturation_length":
		cfg.Weights.SaturationLength = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setFloatField sets a float field on the config by field path.
func setFloatField(cfg *config.Config, field string, value float64) error {
	switch field {
	case "weights.repeated_char_weight":
		cfg.Weights.RepeatedCharWeight = value
	case "weights.anchor_threshold":
		cfg.Weights.AnchorThreshold = value
	case "weights.coalesce_threshold":
		cfg.Weights.CoalesceThreshold = value
	default:
		return fmt.Errorf("unknown float field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns a list of all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"KLONDIFF_ALGORITHM":              "Alignment algorithm: klondike, patience, or difflib",
		"KLONDIFF_CONTEXT":                "Unchanged lines shown around each change",
		"KLONDIFF_COLOR":                  "Colorize output: auto, always, or never",
		"KLONDIFF_FORMAT":                 "Output format: text or json",
		"KLONDIFF_CHECK_STYLE":            "Report style issues on changed lines: true or false",
		"KLONDIFF_EXTRA_EFFORT":           "Run the fallback matcher inside unanchored gaps: true or false",
		"KLONDIFF_WHITESPACE_FOLD":        "Fold whitespace runs before comparing: true or false",
		"KLONDIFF_MIN_SIGNIFICANT_LENGTH": "Minimum normalized length for full line weight",
		"KLONDIFF_REPEATED_CHAR_WEIGHT":   "Weight of single repeated character separator lines",
		"KLONDIFF_ANCHOR_THRESHOLD":       "Minimum weight for a line to serve as an anchor",
		"KLONDIFF_SATURATION_LENGTH":      "Normalized length at which line weight saturates",
		"KLONDIFF_COALESCE_THRESHOLD":     "Maximum weight of a matched line absorbable into a change",
	}
}

package configloader

import "github.com/klondiff/klondiff/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Pointers: override overwrites base if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	// Start with a shallow copy of base
	result := *base

	// Scalars: override overwrites base if set (non-zero value)
	if override.Algorithm != "" {
		result.Algorithm = override.Algorithm
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Context != 0 {
		result.Context = override.Context
	}

	// Booleans: false is the zero value, so a config file cannot unset
	// a true from a lower-precedence source. CLI flags apply their
	// values directly after loading, which avoids the limitation there.
	if override.CheckStyle {
		result.CheckStyle = override.CheckStyle
	}
	if override.ExtraEffort {
		result.ExtraEffort = override.ExtraEffort
	}
	if override.Stat {
		result.Stat = override.Stat
	}
	if override.Debug {
		result.Debug = override.Debug
	}

	// Pointer: nil means unset
	if override.WhitespaceFold != nil {
		fold := *override.WhitespaceFold
		result.WhitespaceFold = &fold
	}

	// Weights: merge individual knobs
	if override.Weights.MinSignificantLength != 0 {
		result.Weights.MinSignificantLength = override.Weights.MinSignificantLength
	}
	if override.Weights.RepeatedCharWeight != 0 {
		result.Weights.RepeatedCharWeight = override.Weights.RepeatedCharWeight
	}
	if override.Weights.AnchorThreshold != 0 {
		result.Weights.AnchorThreshold = override.Weights.AnchorThreshold
	}
	if override.Weights.SaturationLength != 0 {
		result.Weights.SaturationLength = override.Weights.SaturationLength
	}
	if override.Weights.CoalesceThreshold != 0 {
		result.Weights.CoalesceThreshold = override.Weights.CoalesceThreshold
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}

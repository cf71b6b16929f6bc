package config

import (
	"fmt"
	"math"
)

// Map overlays the values present in yc on Default and validates the result.
func Map(path string, yc YAMLConfig) (Config, error) {
	cfg := Default()

	if v := yc.Engine.PivotTolerance; v != nil {
		cfg.Engine.PivotTolerance = *v
	}
	if v := yc.Engine.ValidateFinite; v != nil {
		cfg.Engine.ValidateFinite = *v
	}
	if v := yc.Output.Precision; v != nil {
		cfg.Output.Precision = *v
	}
	if v := yc.Verify.RTol; v != nil {
		cfg.Verify.RTol = *v
	}
	if v := yc.Verify.ATol; v != nil {
		cfg.Verify.ATol = *v
	}
	if v := yc.Log.Debug; v != nil {
		cfg.Log.Debug = *v
	}
	if v := yc.Log.File; v != nil {
		cfg.Log.File = *v
	}

	if err := validate(path, cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(path string, cfg Config) error {
	if !nonNegative(cfg.Engine.PivotTolerance) {
		return invalidField(path, "engine.pivot_tolerance", "must be finite and >= 0")
	}
	if p := cfg.Output.Precision; p < -1 || p > MaxPrecision {
		return invalidField(path, "output.precision", fmt.Sprintf("must be in [-1, %d], got %d", MaxPrecision, p))
	}
	if !nonNegative(cfg.Verify.RTol) {
		return invalidField(path, "verify.rtol", "must be finite and >= 0")
	}
	if !nonNegative(cfg.Verify.ATol) {
		return invalidField(path, "verify.atol", "must be finite and >= 0")
	}
	return nil
}

func nonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

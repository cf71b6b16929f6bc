// Package config holds the driver settings and loads them from YAML.
package config

import (
	"github.com/katalvlaran/lvdet/matrix"
)

// Default values. DefaultPrecision -1 prints the shortest representation that
// parses back to the same float64.
const (
	DefaultPrecision = -1
	DefaultRTol      = 1e-5
	DefaultATol      = 0.0

	// MaxPrecision bounds output.precision; float64 carries at most 17
	// significant decimal digits.
	MaxPrecision = 17
)

type Config struct {
	Engine Engine
	Output Output
	Verify Verify
	Log    Log
}

type Engine struct {
	PivotTolerance float64
	ValidateFinite bool
}

type Output struct {
	Precision int
}

type Verify struct {
	RTol float64
	ATol float64
}

type Log struct {
	Debug bool
	File  string // empty discards log output
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Engine: Engine{
			PivotTolerance: matrix.DefaultPivotTolerance,
			ValidateFinite: matrix.DefaultValidateNaNInf,
		},
		Output: Output{Precision: DefaultPrecision},
		Verify: Verify{RTol: DefaultRTol, ATol: DefaultATol},
	}
}

// MatrixOptions translates the engine section into matrix options.
func (c Config) MatrixOptions() []matrix.Option {
	finite := matrix.WithValidateNaNInf()
	if !c.Engine.ValidateFinite {
		finite = matrix.WithNoValidateNaNInf()
	}
	return []matrix.Option{
		matrix.WithPivotTolerance(c.Engine.PivotTolerance),
		finite,
	}
}

// Validate checks every value the engine or emitter would reject or panic on.
func (c Config) Validate() error {
	return validate("", c)
}

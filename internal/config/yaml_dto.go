package config

// Pointer fields distinguish "absent" from the zero value so a partial file
// only overrides what it names.

type YAMLConfig struct {
	Engine YAMLEngine `yaml:"engine"`
	Output YAMLOutput `yaml:"output"`
	Verify YAMLVerify `yaml:"verify"`
	Log    YAMLLog    `yaml:"log"`
}

type YAMLEngine struct {
	PivotTolerance *float64 `yaml:"pivot_tolerance"`
	ValidateFinite *bool    `yaml:"validate_finite"`
}

type YAMLOutput struct {
	Precision *int `yaml:"precision"`
}

type YAMLVerify struct {
	RTol *float64 `yaml:"rtol"`
	ATol *float64 `yaml:"atol"`
}

type YAMLLog struct {
	Debug *bool   `yaml:"debug"`
	File  *string `yaml:"file"`
}

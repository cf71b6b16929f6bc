package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path and maps it over Default.
// An empty file yields Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &Error{
			Op:   "config.load",
			Path: path,
			Err:  fmt.Errorf("%w: %w", ErrNotFound, err),
		}
	}
	return Parse(path, b)
}

// Parse decodes b as a config document; path is only used in errors.
func Parse(path string, b []byte) (Config, error) {
	var dto YAMLConfig
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, &Error{
			Op:   "config.parse",
			Path: path,
			Err:  fmt.Errorf("%w: %w", ErrInvalidConfig, err),
		}
	}

	return Map(path, dto)
}

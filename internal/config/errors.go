package config

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a config file that could not be read.
	ErrNotFound = errors.New("config file not found")
	// ErrInvalidConfig marks a file that parsed but holds unusable values.
	ErrInvalidConfig = errors.New("invalid config")
)

// Error wraps an underlying error with operation context.
type Error struct {
	Op    string
	Path  string // Optional: config file path
	Field string // Optional: offending key, dotted ("engine.pivot_tolerance")
	Err   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := e.Op
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Field != "" {
		base += fmt.Sprintf(": field %s", e.Field)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func invalidField(path, field, msg string) error {
	return &Error{
		Op:    "config.map",
		Path:  path,
		Field: field,
		Err:   fmt.Errorf("%s: %w", msg, ErrInvalidConfig),
	}
}

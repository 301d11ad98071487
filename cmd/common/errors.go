package common

import "errors"

// Dependency validation errors.
var (
	// ErrLoggerRequired reports a missing logger dependency.
	ErrLoggerRequired = errors.New("logger is required")
	// ErrConfigRequired reports a missing config dependency.
	ErrConfigRequired = errors.New("config is required")
)

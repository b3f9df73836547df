// Package generrors provides structured error types for oastestgen.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - GenerationError: unexpected failures inside a value producer
//   - ConfigError: invalid generator options or input
//
// # Usage with errors.As
//
//	result, err := gen.GenerateFromSchema(schema, datagen.ModeValid)
//	if err != nil {
//	    var genErr *generrors.GenerationError
//	    if errors.As(err, &genErr) {
//	        log.Printf("generation failed at %s: %v", genErr.Path, genErr.Cause)
//	    }
//	}
package generrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrGeneration indicates a data generation failure occurred.
	ErrGeneration = errors.New("data generation failed")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// GenerationError represents an unexpected failure inside a value producer.
// Producers never fail on malformed schemas (those are handled leniently);
// this error wraps genuine internal failures, including recovered panics.
type GenerationError struct {
	// Mode is the generation mode in effect when the failure occurred
	Mode string
	// Path is the path to the schema node being generated (empty for the root)
	Path string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *GenerationError) Error() string {
	msg := "data generation failed"
	if e.Mode != "" {
		msg += " (mode: " + e.Mode + ")"
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGeneration
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

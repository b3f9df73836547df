package datagen

import "fmt"

// GenerationMode selects which point of each constraint a generation call
// targets. Exactly one mode governs a single GenerateFromSchema call.
type GenerationMode string

const (
	// ModeValid produces a random value satisfying all constraints.
	ModeValid GenerationMode = "valid"

	// ModeMinimal takes every lower bound literally; unconstrained dimensions
	// use the smallest admissible instance of the type.
	ModeMinimal GenerationMode = "minimal"

	// ModeMaximal takes every upper bound literally, clipped by the options'
	// hard caps (MaxStringLength, MaxArrayItems).
	ModeMaximal GenerationMode = "maximal"

	// ModeEdge targets a single representative boundary (the lower bound)
	// rather than visiting every boundary.
	ModeEdge GenerationMode = "edge"

	// ModeInvalid produces a value of the wrong shape for the declared type,
	// for exercising negative-path assertions.
	ModeInvalid GenerationMode = "invalid"
)

// IsValid reports whether m is one of the defined generation modes.
func (m GenerationMode) IsValid() bool {
	switch m {
	case ModeValid, ModeMinimal, ModeMaximal, ModeEdge, ModeInvalid:
		return true
	}
	return false
}

// ParseMode converts a string to a GenerationMode. An empty string maps to
// ModeValid; anything else unrecognized is an error.
func ParseMode(s string) (GenerationMode, error) {
	if s == "" {
		return ModeValid, nil
	}
	m := GenerationMode(s)
	if !m.IsValid() {
		return "", fmt.Errorf("datagen: unknown generation mode %q", s)
	}
	return m, nil
}

// atLowerBound reports whether the mode targets lower bounds.
func (m GenerationMode) atLowerBound() bool {
	return m == ModeMinimal || m == ModeEdge
}

// atUpperBound reports whether the mode targets upper bounds.
func (m GenerationMode) atUpperBound() bool {
	return m == ModeMaximal
}

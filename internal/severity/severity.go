// Package severity provides severity level constants and utilities for
// issues reported during data generation.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error < Critical
package severity

// Severity indicates the severity level of an issue encountered while
// generating data from a schema.
type Severity int

const (
	// SeverityError indicates a schema problem that prevented faithful generation.
	SeverityError Severity = iota

	// SeverityWarning indicates best-effort handling: an unsupported construct,
	// a lenient fallback, or a documented limitation that was hit.
	SeverityWarning

	// SeverityInfo indicates informational messages about generation choices.
	// These are non-actionable notices that may be useful for debugging.
	SeverityInfo

	// SeverityCritical indicates constructs that cannot be generated at all.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Package issues provides a unified issue type for problems and limitations
// encountered during data generation.
package issues

import (
	"fmt"

	"github.com/erraggy/oastestgen/internal/severity"
)

// Issue represents a single problem or documented limitation hit while
// generating a value from a schema.
type Issue struct {
	// Path is the path to the problematic schema node (e.g., "properties.tags.items")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Field is the specific schema keyword involved (optional)
	Field string
	// Value is the problematic value (optional)
	Value any
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error or Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	if i.Path == "" {
		return fmt.Sprintf("%s %s", symbol, i.Message)
	}
	return fmt.Sprintf("%s %s: %s", symbol, i.Path, i.Message)
}

// CountBySeverity returns the number of issues in list with severity s.
func CountBySeverity(list []Issue, s severity.Severity) int {
	count := 0
	for _, i := range list {
		if i.Severity == s {
			count++
		}
	}
	return count
}

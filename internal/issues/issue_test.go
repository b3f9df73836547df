package issues

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/oastestgen/internal/severity"
)

func TestIssueString(t *testing.T) {
	tests := []struct {
		name     string
		issue    Issue
		expected string
	}{
		{
			name:     "warning with path",
			issue:    Issue{Path: "properties.tags", Message: "duplicate accepted", Severity: severity.SeverityWarning},
			expected: "⚠ properties.tags: duplicate accepted",
		},
		{
			name:     "error without path",
			issue:    Issue{Message: "unknown type", Severity: severity.SeverityError},
			expected: "✗ unknown type",
		},
		{
			name:     "info",
			issue:    Issue{Path: "items", Message: "depth limit reached", Severity: severity.SeverityInfo},
			expected: "ℹ items: depth limit reached",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.issue.String())
		})
	}
}

func TestCountBySeverity(t *testing.T) {
	list := []Issue{
		{Severity: severity.SeverityWarning},
		{Severity: severity.SeverityWarning},
		{Severity: severity.SeverityInfo},
	}

	assert.Equal(t, 2, CountBySeverity(list, severity.SeverityWarning))
	assert.Equal(t, 1, CountBySeverity(list, severity.SeverityInfo))
	assert.Equal(t, 0, CountBySeverity(list, severity.SeverityCritical))
}

package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationStatuses(t *testing.T) {
	statuses := ValidationStatuses()

	require.Len(t, statuses, 6)
	assert.Equal(t, []ValidationStatus{
		StatusMatch,
		StatusMismatch,
		StatusMissingInPBI,
		StatusMissingInSource,
		StatusNotVerifiable,
		StatusRuleNotDefined,
	}, statuses)

	for _, status := range statuses {
		assert.True(t, status.Valid(), "status %s should be valid", status)
		assert.NotEmpty(t, status.Meaning(), "status %s should have a meaning", status)
	}
}

func TestValidationStatusValid(t *testing.T) {
	tests := []struct {
		name   string
		status ValidationStatus
		want   bool
	}{
		{"match", StatusMatch, true},
		{"rule not defined", StatusRuleNotDefined, true},
		{"empty", ValidationStatus(""), false},
		{"lowercase", ValidationStatus("match"), false},
		{"invented status", ValidationStatus("PROBABLY_MATCHES"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Valid())
		})
	}
}

func TestParseValidationStatus(t *testing.T) {
	status, err := ParseValidationStatus("MISSING_IN_PBI")
	require.NoError(t, err)
	assert.Equal(t, StatusMissingInPBI, status)

	_, err = ParseValidationStatus("missing_in_pbi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown validation status")

	_, err = ParseValidationStatus("")
	require.Error(t, err)
}

func TestSeverities(t *testing.T) {
	severities := Severities()

	require.Len(t, severities, 4)
	assert.Equal(t, []Severity{SeverityInfo, SeverityWarning, SeverityError, SeverityCritical}, severities)

	for _, severity := range severities {
		assert.True(t, severity.Valid())
	}
}

func TestParseSeverity(t *testing.T) {
	severity, err := ParseSeverity("CRITICAL")
	require.NoError(t, err)
	assert.Equal(t, SeverityCritical, severity)

	_, err = ParseSeverity("FATAL")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown severity")
}

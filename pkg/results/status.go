// Package results defines the result data model for a reconciliation run: the
// closed validation taxonomy, field-level comparison results, entity rollups,
// integrity check outcomes, data quality snapshots, and the aggregate report.
//
// The central design principle is that the system never guesses: every
// comparison is classified into exactly one ValidationStatus, and absence of
// sufficient information is itself a first-class outcome (NOT_VERIFIABLE,
// RULE_NOT_DEFINED) rather than an error or an inferred value.
package results

import (
	"fmt"
)

// ValidationStatus classifies one comparison outcome. The set is closed;
// a value outside it is a programming error, not a runtime data condition.
type ValidationStatus string

// String returns the string representation of a ValidationStatus.
func (s ValidationStatus) String() string {
	return string(s)
}

// Validation statuses. Exactly one applies to every comparison.
const (
	StatusMatch           ValidationStatus = "MATCH"             // Values agree exactly, or within configured tolerance
	StatusMismatch        ValidationStatus = "MISMATCH"          // Both sides have a value and they disagree
	StatusMissingInPBI    ValidationStatus = "MISSING_IN_PBI"    // Present in source-of-record, absent in derived model
	StatusMissingInSource ValidationStatus = "MISSING_IN_SOURCE" // Present in derived model, absent in source-of-record
	StatusNotVerifiable   ValidationStatus = "NOT_VERIFIABLE"    // Insufficient data on one or both sides to compare
	StatusRuleNotDefined  ValidationStatus = "RULE_NOT_DEFINED"  // No mapping/rule configured for this field or entity
)

// ValidationStatuses returns all statuses in their canonical presentation order.
func ValidationStatuses() []ValidationStatus {
	return []ValidationStatus{
		StatusMatch,
		StatusMismatch,
		StatusMissingInPBI,
		StatusMissingInSource,
		StatusNotVerifiable,
		StatusRuleNotDefined,
	}
}

// Valid reports whether s is one of the six defined statuses.
func (s ValidationStatus) Valid() bool {
	switch s {
	case StatusMatch, StatusMismatch, StatusMissingInPBI,
		StatusMissingInSource, StatusNotVerifiable, StatusRuleNotDefined:
		return true
	}
	return false
}

// Meaning returns the operator-facing description of the status. These strings
// are part of the stable report contract (the markdown legend table).
func (s ValidationStatus) Meaning() string {
	switch s {
	case StatusMatch:
		return "values agree exactly, or within configured tolerance"
	case StatusMismatch:
		return "both sides have a value and they disagree"
	case StatusMissingInPBI:
		return "present in source-of-record, absent in derived model"
	case StatusMissingInSource:
		return "present in derived model, absent in source-of-record"
	case StatusNotVerifiable:
		return "insufficient data on one or both sides to compare"
	case StatusRuleNotDefined:
		return "no mapping/rule configured for this field or entity"
	}
	return ""
}

// ParseValidationStatus parses the exact literal name of a status.
// Unknown names are rejected; the taxonomy never admits inferred states.
func ParseValidationStatus(s string) (ValidationStatus, error) {
	status := ValidationStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("unknown validation status %q", s)
	}
	return status, nil
}

// Severity signals operator urgency for a finding. Orthogonal to status.
type Severity string

// String returns the string representation of a Severity.
func (s Severity) String() string {
	return string(s)
}

// Severity levels.
const (
	SeverityInfo     Severity = "INFO"
	SeverityWarning  Severity = "WARNING"
	SeverityError    Severity = "ERROR"
	SeverityCritical Severity = "CRITICAL"
)

// Severities returns all severities in ascending order of urgency.
func Severities() []Severity {
	return []Severity{SeverityInfo, SeverityWarning, SeverityError, SeverityCritical}
}

// Valid reports whether s is one of the defined severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityInfo, SeverityWarning, SeverityError, SeverityCritical:
		return true
	}
	return false
}

// ParseSeverity parses the exact literal name of a severity.
func ParseSeverity(s string) (Severity, error) {
	severity := Severity(s)
	if !severity.Valid() {
		return "", fmt.Errorf("unknown severity %q", s)
	}
	return severity, nil
}

// Package reporting renders a reconciliation report into its external
// artifacts: a machine-readable JSON document and a narrative Markdown
// document. Both share one filename convention and write atomically, so a
// crash mid-write never leaves a truncated report claiming success.
package reporting

import (
	"github.com/agentstation/recon/pkg/results"
)

// UnknownSymbol is rendered for a status or severity outside the known sets.
// Rendering degrades to a generic marker rather than failing a report.
const UnknownSymbol = "❓"

// statusSymbols is the fixed status -> symbol mapping used across every table.
// Downstream scripts grep for these markers; do not change them casually.
var statusSymbols = map[results.ValidationStatus]string{
	results.StatusMatch:           "✅",
	results.StatusMismatch:        "❌",
	results.StatusMissingInPBI:    "⚠️",
	results.StatusMissingInSource: "⚠️",
	results.StatusNotVerifiable:   "🔵",
	results.StatusRuleNotDefined:  "🟣",
}

// severitySymbols is the fixed severity -> symbol mapping.
var severitySymbols = map[results.Severity]string{
	results.SeverityInfo:     "ℹ️",
	results.SeverityWarning:  "⚠️",
	results.SeverityError:    "❌",
	results.SeverityCritical: "🔴",
}

// StatusSymbol returns the fixed marker for a validation status, or
// UnknownSymbol for a value outside the taxonomy.
func StatusSymbol(status results.ValidationStatus) string {
	if symbol, ok := statusSymbols[status]; ok {
		return symbol
	}
	return UnknownSymbol
}

// SeveritySymbol returns the fixed marker for a severity, or UnknownSymbol
// for a value outside the set.
func SeveritySymbol(severity results.Severity) string {
	if symbol, ok := severitySymbols[severity]; ok {
		return symbol
	}
	return UnknownSymbol
}

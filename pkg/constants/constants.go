// Package constants provides shared constants used throughout the recon codebase.
// This includes file permissions, configuration defaults, and report limits that
// should be consistent across the application.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Configuration defaults applied when a project document omits optional fields
const (
	// DefaultEncoding is the encoding assumed for sources that don't declare one
	DefaultEncoding = "utf-8"

	// DefaultDelimiter is the field delimiter assumed for delimited sources
	DefaultDelimiter = ","

	// DefaultCompareType is the comparison applied when a field mapping omits one
	DefaultCompareType = "exact"

	// DefaultNumericTolerance is the maximum numeric deviation still counted as a match
	DefaultNumericTolerance = 0.01

	// DefaultIntegritySeverity is the severity assumed for integrity checks
	DefaultIntegritySeverity = "WARNING"
)

// Report limits
const (
	// OrphanKeySampleSize bounds the orphan-key sample serialized per integrity
	// check. The full list may be retained in memory but is never emitted.
	OrphanKeySampleSize = 10
)

// Tool identity emitted in the _meta block of JSON reports and report footers
const (
	// ToolVersion is the recon tool version
	ToolVersion = "0.1.0"

	// FormatVersion is the JSON report format version
	FormatVersion = "1.0"

	// GeneratedBy identifies the report generator
	GeneratedBy = "recon"

	// DocumentationURL points consumers at the report format documentation
	DocumentationURL = "https://github.com/agentstation/recon"
)

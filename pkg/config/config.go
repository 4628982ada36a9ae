// Package config defines the typed project configuration for a reconciliation
// run and the loader that parses it from a declarative YAML document.
//
// Parsing is permissive about missing optional fields, substituting documented
// defaults in one place, but strict about internal consistency: a rule that
// references an undefined source, or a negative tolerance, fails the load
// immediately rather than surfacing as a missing reference at engine time.
package config

import (
	"path/filepath"

	"github.com/agentstation/recon/pkg/results"
)

// SourceType identifies the physical format of a data source.
type SourceType string

// Supported source types.
const (
	SourceTypeCSV     SourceType = "csv"
	SourceTypeExcel   SourceType = "excel"
	SourceTypeParquet SourceType = "parquet"
)

// Valid reports whether t is a supported source type.
func (t SourceType) Valid() bool {
	switch t {
	case SourceTypeCSV, SourceTypeExcel, SourceTypeParquet:
		return true
	}
	return false
}

// CompareType identifies how a field mapping compares two values.
type CompareType string

// Supported compare types.
const (
	CompareExact     CompareType = "exact"
	CompareNumeric   CompareType = "numeric"
	CompareSubstring CompareType = "substring"
	CompareRegex     CompareType = "regex"
)

// Valid reports whether t is a supported compare type.
func (t CompareType) Valid() bool {
	switch t {
	case CompareExact, CompareNumeric, CompareSubstring, CompareRegex:
		return true
	}
	return false
}

// Source describes one data source. Constructed once at config load and
// immutable thereafter.
type Source struct {
	Name       string     `json:"name" yaml:"name"`
	Path       string     `json:"path" yaml:"path"`
	Type       SourceType `json:"type" yaml:"type"`
	Encoding   string     `json:"encoding" yaml:"encoding"`
	Delimiter  string     `json:"delimiter" yaml:"delimiter"`
	KeyColumns []string   `json:"key_columns" yaml:"key_columns"`
}

// ResolvePath returns the source path unchanged if absolute, otherwise joined
// to basePath. It never touches the filesystem; existence checks are a caller
// concern.
func (s Source) ResolvePath(basePath string) string {
	if filepath.IsAbs(s.Path) {
		return s.Path
	}
	return filepath.Join(basePath, s.Path)
}

// FieldMapping maps one source field to its counterpart in the derived model.
type FieldMapping struct {
	SourceField string      `json:"source_field" yaml:"source_field"`
	PBIField    string      `json:"pbi_field" yaml:"pbi_field"`
	Transform   string      `json:"transform,omitempty" yaml:"transform,omitempty"`
	Tolerance   *float64    `json:"tolerance,omitempty" yaml:"tolerance,omitempty"`
	CompareType CompareType `json:"compare_type" yaml:"compare_type"`
}

// Rule is the validation rule for one service type: which source to compare
// against, how fields map, and which records participate.
type Rule struct {
	ServiceType   string         `json:"service_type" yaml:"service_type"`
	SourceName    string         `json:"source_name" yaml:"source_name"`
	FieldMappings []FieldMapping `json:"field_mappings" yaml:"field_mappings"`
	SourceFilters map[string]any `json:"source_filters,omitempty" yaml:"source_filters,omitempty"`
	PBIFilters    map[string]any `json:"pbi_filters,omitempty" yaml:"pbi_filters,omitempty"`
}

// IntegrityCheck describes one referential-integrity assertion: every
// source_key value must have a matching target_key value.
type IntegrityCheck struct {
	Name        string           `json:"name" yaml:"name"`
	SourceTable string           `json:"source_table" yaml:"source_table"`
	TargetTable string           `json:"target_table" yaml:"target_table"`
	SourceKey   string           `json:"source_key" yaml:"source_key"`
	TargetKey   string           `json:"target_key" yaml:"target_key"`
	Severity    results.Severity `json:"severity" yaml:"severity"`
}

// Project is the complete configuration for one reconciliation project.
// Immutable once loaded.
type Project struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Version     string `json:"version" yaml:"version"`

	SourcesBasePath   string `json:"sources_base_path" yaml:"sources_base_path"`
	PBIModelPath      string `json:"pbi_model_path" yaml:"pbi_model_path"`
	ReportsOutputPath string `json:"reports_output_path" yaml:"reports_output_path"`

	Sources         map[string]Source `json:"sources" yaml:"sources"`
	Rules           map[string]Rule   `json:"validation_rules" yaml:"validation_rules"`
	IntegrityChecks []IntegrityCheck  `json:"integrity_checks" yaml:"integrity_checks"`

	DefaultEncoding  string  `json:"default_encoding" yaml:"default_encoding"`
	NumericTolerance float64 `json:"numeric_tolerance" yaml:"numeric_tolerance"`

	// ConfigPath is the document this project was loaded from.
	ConfigPath string `json:"-" yaml:"-"`
}

// BasePath returns the base path sources resolve against.
func (p *Project) BasePath() string {
	return p.SourcesBasePath
}

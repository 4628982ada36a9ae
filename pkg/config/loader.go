package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/recon/pkg/constants"
	"github.com/agentstation/recon/pkg/errors"
	"github.com/agentstation/recon/pkg/results"
)

// rawConfig mirrors the YAML document loosely. Parsing goes through this
// intermediate representation so defaulting and validation happen in one
// place, when the strict Project aggregate is built.
type rawConfig struct {
	Project struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		Version     string `yaml:"version"`
	} `yaml:"project"`

	Paths struct {
		SourcesBase   string `yaml:"sources_base"`
		PBIModel      string `yaml:"pbi_model"`
		ReportsOutput string `yaml:"reports_output"`
	} `yaml:"paths"`

	Sources map[string]rawSource `yaml:"sources"`
	Rules   map[string]rawRule   `yaml:"validation_rules"`
	Checks  []rawIntegrityCheck  `yaml:"integrity_checks"`

	Settings struct {
		DefaultEncoding  string   `yaml:"default_encoding"`
		NumericTolerance *float64 `yaml:"numeric_tolerance"`
	} `yaml:"settings"`
}

type rawSource struct {
	Path       string   `yaml:"path"`
	Type       string   `yaml:"type"`
	Encoding   string   `yaml:"encoding"`
	Delimiter  string   `yaml:"delimiter"`
	KeyColumns []string `yaml:"key_columns"`
}

type rawRule struct {
	SourceName    string            `yaml:"source_name"`
	FieldMappings []rawFieldMapping `yaml:"field_mappings"`
	SourceFilters map[string]any    `yaml:"source_filters"`
	PBIFilters    map[string]any    `yaml:"pbi_filters"`
}

type rawFieldMapping struct {
	SourceField string   `yaml:"source_field"`
	PBIField    string   `yaml:"pbi_field"`
	Transform   string   `yaml:"transform"`
	Tolerance   *float64 `yaml:"tolerance"`
	CompareType string   `yaml:"compare_type"`
}

type rawIntegrityCheck struct {
	Name        string `yaml:"name"`
	SourceTable string `yaml:"source_table"`
	TargetTable string `yaml:"target_table"`
	SourceKey   string `yaml:"source_key"`
	TargetKey   string `yaml:"target_key"`
	Severity    string `yaml:"severity"`
}

// Loader loads project configurations from YAML documents.
type Loader struct {
	path string
}

// NewLoader creates a loader for the given config document. It fails with a
// ConfigError if the document cannot be located.
func NewLoader(path string) (*Loader, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.NewConfigError(path, "config file not found", err)
	}
	return &Loader{path: path}, nil
}

// Path returns the config document path.
func (l *Loader) Path() string {
	return l.path
}

// Load parses and validates the project configuration. Missing optional
// fields receive documented defaults; an internally inconsistent document
// (rule referencing an undefined source, negative tolerance) fails fast.
func (l *Loader) Load() (*Project, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, errors.NewConfigError(l.path, "config file not readable", err)
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewConfigError(l.path, "invalid YAML", errors.WrapParse("yaml", l.path, err))
	}

	project, err := l.build(&raw)
	if err != nil {
		return nil, err
	}
	if err := l.validate(project); err != nil {
		return nil, err
	}
	return project, nil
}

// build constructs the strict Project aggregate, collecting all default
// substitutions in one place.
func (l *Loader) build(raw *rawConfig) (*Project, error) {
	sources := make(map[string]Source, len(raw.Sources))
	for name, src := range raw.Sources {
		sources[name] = Source{
			Name:       name,
			Path:       src.Path,
			Type:       SourceType(defaultString(src.Type, string(SourceTypeCSV))),
			Encoding:   defaultString(src.Encoding, constants.DefaultEncoding),
			Delimiter:  defaultString(src.Delimiter, constants.DefaultDelimiter),
			KeyColumns: src.KeyColumns,
		}
	}

	rules := make(map[string]Rule, len(raw.Rules))
	for serviceType, rule := range raw.Rules {
		mappings := make([]FieldMapping, 0, len(rule.FieldMappings))
		for _, m := range rule.FieldMappings {
			mappings = append(mappings, FieldMapping{
				SourceField: m.SourceField,
				PBIField:    m.PBIField,
				Transform:   m.Transform,
				Tolerance:   m.Tolerance,
				CompareType: CompareType(defaultString(m.CompareType, constants.DefaultCompareType)),
			})
		}
		rules[serviceType] = Rule{
			ServiceType:   serviceType,
			SourceName:    rule.SourceName,
			FieldMappings: mappings,
			SourceFilters: rule.SourceFilters,
			PBIFilters:    rule.PBIFilters,
		}
	}

	checks := make([]IntegrityCheck, 0, len(raw.Checks))
	for _, c := range raw.Checks {
		severity := results.Severity(constants.DefaultIntegritySeverity)
		if c.Severity != "" {
			parsed, err := results.ParseSeverity(c.Severity)
			if err != nil {
				return nil, errors.NewConfigError(l.path,
					fmt.Sprintf("integrity check %q: %v", c.Name, err), nil)
			}
			severity = parsed
		}
		checks = append(checks, IntegrityCheck{
			Name:        c.Name,
			SourceTable: c.SourceTable,
			TargetTable: c.TargetTable,
			SourceKey:   c.SourceKey,
			TargetKey:   c.TargetKey,
			Severity:    severity,
		})
	}

	tolerance := constants.DefaultNumericTolerance
	if raw.Settings.NumericTolerance != nil {
		tolerance = *raw.Settings.NumericTolerance
	}

	return &Project{
		Name:              defaultString(raw.Project.Name, "unknown"),
		Description:       raw.Project.Description,
		Version:           defaultString(raw.Project.Version, "0.1.0"),
		SourcesBasePath:   defaultString(raw.Paths.SourcesBase, "."),
		PBIModelPath:      raw.Paths.PBIModel,
		ReportsOutputPath: defaultString(raw.Paths.ReportsOutput, "./reports"),
		Sources:           sources,
		Rules:             rules,
		IntegrityChecks:   checks,
		DefaultEncoding:   defaultString(raw.Settings.DefaultEncoding, constants.DefaultEncoding),
		NumericTolerance:  tolerance,
		ConfigPath:        l.path,
	}, nil
}

// validate enforces internal consistency of the loaded project.
func (l *Loader) validate(p *Project) error {
	if p.NumericTolerance < 0 {
		return errors.NewConfigError(l.path,
			fmt.Sprintf("settings.numeric_tolerance must not be negative, got %v", p.NumericTolerance), nil)
	}

	for serviceType, rule := range p.Rules {
		if _, ok := p.Sources[rule.SourceName]; !ok {
			return errors.NewConfigError(l.path,
				fmt.Sprintf("validation rule %q references undefined source %q", serviceType, rule.SourceName), nil)
		}
		for _, m := range rule.FieldMappings {
			if !m.CompareType.Valid() {
				return errors.NewConfigError(l.path,
					fmt.Sprintf("validation rule %q field %q has unknown compare_type %q", serviceType, m.SourceField, m.CompareType), nil)
			}
			if m.Tolerance != nil && *m.Tolerance < 0 {
				return errors.NewConfigError(l.path,
					fmt.Sprintf("validation rule %q field %q has negative tolerance %v", serviceType, m.SourceField, *m.Tolerance), nil)
			}
		}
	}

	for name, src := range p.Sources {
		if !src.Type.Valid() {
			return errors.NewConfigError(l.path,
				fmt.Sprintf("source %q has unknown type %q", name, src.Type), nil)
		}
	}

	return nil
}

// AvailableProjects enumerates the project identifiers (YAML file stems) in
// the given directory, sorted. A missing directory yields an empty slice,
// not an error.
func AvailableProjects(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return []string{}
	}

	projects := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if ext == ".yaml" || ext == ".yml" {
			projects = append(projects, strings.TrimSuffix(name, ext))
		}
	}
	sort.Strings(projects)
	return projects
}

// defaultString returns value, or fallback when value is empty.
func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

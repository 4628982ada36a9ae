package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/recon/pkg/errors"
	"github.com/agentstation/recon/pkg/results"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const fullConfig = `
project:
  name: billing
  description: Billing reconciliation
  version: "1.2.0"

paths:
  sources_base: ./data
  pbi_model: ./model/billing.json
  reports_output: ./out

sources:
  billing:
    path: billing.csv
    type: csv
    delimiter: ";"
    key_columns: [site_id, vendor]
  inventory:
    path: inventory.xlsx
    type: excel

validation_rules:
  internet:
    source_name: billing
    field_mappings:
      - source_field: mrc
        pbi_field: Total MRC
        compare_type: numeric
        tolerance: 0.05
      - source_field: vendor
        pbi_field: Vendor

integrity_checks:
  - name: sites_in_inventory
    source_table: billing
    target_table: inventory
    source_key: site_id
    target_key: site_id
    severity: ERROR

settings:
  default_encoding: latin-1
  numeric_tolerance: 0.02
`

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, "billing.yaml", fullConfig)

	loader, err := NewLoader(path)
	require.NoError(t, err)

	project, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "billing", project.Name)
	assert.Equal(t, "1.2.0", project.Version)
	assert.Equal(t, "./data", project.SourcesBasePath)
	assert.Equal(t, "./out", project.ReportsOutputPath)
	assert.Equal(t, path, project.ConfigPath)
	assert.Equal(t, "latin-1", project.DefaultEncoding)
	assert.InDelta(t, 0.02, project.NumericTolerance, 0.0001)

	require.Contains(t, project.Sources, "billing")
	billing := project.Sources["billing"]
	assert.Equal(t, SourceTypeCSV, billing.Type)
	assert.Equal(t, ";", billing.Delimiter)
	assert.Equal(t, []string{"site_id", "vendor"}, billing.KeyColumns)

	require.Contains(t, project.Rules, "internet")
	rule := project.Rules["internet"]
	assert.Equal(t, "billing", rule.SourceName)
	require.Len(t, rule.FieldMappings, 2)
	assert.Equal(t, CompareNumeric, rule.FieldMappings[0].CompareType)
	require.NotNil(t, rule.FieldMappings[0].Tolerance)
	assert.InDelta(t, 0.05, *rule.FieldMappings[0].Tolerance, 0.0001)

	require.Len(t, project.IntegrityChecks, 1)
	assert.Equal(t, results.SeverityError, project.IntegrityChecks[0].Severity)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "minimal.yaml", `
project:
  name: minimal
sources:
  s1:
    path: data.csv
validation_rules:
  internet:
    source_name: s1
    field_mappings:
      - source_field: a
        pbi_field: b
integrity_checks:
  - name: check
    source_table: s1
    target_table: s1
`)

	loader, err := NewLoader(path)
	require.NoError(t, err)

	project, err := loader.Load()
	require.NoError(t, err)

	src := project.Sources["s1"]
	assert.Equal(t, SourceTypeCSV, src.Type)
	assert.Equal(t, "utf-8", src.Encoding)
	assert.Equal(t, ",", src.Delimiter)

	assert.Equal(t, CompareExact, project.Rules["internet"].FieldMappings[0].CompareType)
	assert.Nil(t, project.Rules["internet"].FieldMappings[0].Tolerance)

	assert.Equal(t, results.SeverityWarning, project.IntegrityChecks[0].Severity)
	assert.InDelta(t, 0.01, project.NumericTolerance, 0.0001)
	assert.Equal(t, "./reports", project.ReportsOutputPath)
}

func TestLoadMissingSectionsIsValid(t *testing.T) {
	path := writeConfig(t, "bare.yaml", "project:\n  name: bare\n")

	loader, err := NewLoader(path)
	require.NoError(t, err)

	project, err := loader.Load()
	require.NoError(t, err)

	assert.Empty(t, project.Sources)
	assert.Empty(t, project.Rules)
	assert.Empty(t, project.IntegrityChecks)
}

func TestNewLoaderMissingFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := writeConfig(t, "broken.yaml", "project: [unclosed")

	loader, err := NewLoader(path)
	require.NoError(t, err)

	_, err = loader.Load()
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
}

func TestLoadRejectsUndefinedSourceReference(t *testing.T) {
	path := writeConfig(t, "badref.yaml", `
project:
  name: badref
sources:
  s1:
    path: data.csv
validation_rules:
  internet:
    source_name: missing
    field_mappings:
      - source_field: a
        pbi_field: b
`)

	loader, err := NewLoader(path)
	require.NoError(t, err)

	_, err = loader.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined source")
}

func TestLoadRejectsNegativeTolerance(t *testing.T) {
	path := writeConfig(t, "negtol.yaml", `
project:
  name: negtol
sources:
  s1:
    path: data.csv
validation_rules:
  internet:
    source_name: s1
    field_mappings:
      - source_field: a
        pbi_field: b
        tolerance: -0.5
`)

	loader, err := NewLoader(path)
	require.NoError(t, err)

	_, err = loader.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative tolerance")
}

func TestLoadRejectsUnknownCompareType(t *testing.T) {
	path := writeConfig(t, "badcmp.yaml", `
project:
  name: badcmp
sources:
  s1:
    path: data.csv
validation_rules:
  internet:
    source_name: s1
    field_mappings:
      - source_field: a
        pbi_field: b
        compare_type: fuzzy
`)

	loader, err := NewLoader(path)
	require.NoError(t, err)

	_, err = loader.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compare_type")
}

func TestLoadRejectsUnknownSourceType(t *testing.T) {
	path := writeConfig(t, "badsrc.yaml", `
project:
  name: badsrc
sources:
  s1:
    path: data.bin
    type: binary
`)

	loader, err := NewLoader(path)
	require.NoError(t, err)

	_, err = loader.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown type")
}

func TestLoadRejectsUnknownSeverity(t *testing.T) {
	path := writeConfig(t, "badsev.yaml", `
project:
  name: badsev
integrity_checks:
  - name: check
    source_table: a
    target_table: b
    severity: FATAL
`)

	loader, err := NewLoader(path)
	require.NoError(t, err)

	_, err = loader.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown severity")
}

func TestAvailableProjects(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "billing.yaml"), []byte("project:\n  name: b\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "alpha.yml"), []byte("project:\n  name: a\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.yaml"), 0o755))

	assert.Equal(t, []string{"alpha", "billing"}, AvailableProjects(dir))
}

func TestAvailableProjectsMissingDir(t *testing.T) {
	projects := AvailableProjects(filepath.Join(t.TempDir(), "missing"))
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestSourceResolvePath(t *testing.T) {
	rel := Source{Path: "data/billing.csv"}
	assert.Equal(t, filepath.Join("/base", "data/billing.csv"), rel.ResolvePath("/base"))

	abs := Source{Path: "/srv/billing.csv"}
	assert.Equal(t, "/srv/billing.csv", abs.ResolvePath("/base"))
}

package reporting

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/recon/pkg/results"
)

func sampleReport() *results.Report {
	orphans := make([]string, 15)
	for i := range orphans {
		orphans[i] = "orphan"
	}

	return &results.Report{
		ProjectName: "billing",
		GeneratedAt: fixedTime(),
		ConfigFile:  "config/billing.yaml",
		EntityComparisons: []results.EntityComparison{
			{
				EntityType:    "site",
				EntityID:      "146",
				EntityFilters: map[string]string{"site_id": "146"},
				Validations: []results.ValidationResult{
					{
						Status:      results.StatusMatch,
						FieldName:   "Total MRC",
						SourceValue: 69.0,
						PBIValue:    69.0,
						Message:     "values match",
					},
				},
			},
		},
		IntegrityChecks: []results.IntegrityCheckResult{
			{
				CheckName:       "sites_in_inventory",
				SourceTable:     "billing",
				TargetTable:     "inventory",
				Status:          results.StatusMismatch,
				TotalSourceKeys: 3,
				MatchedKeys:     1,
				MissingInTarget: 2,
				OrphanKeys:      orphans,
				Severity:        results.SeverityWarning,
			},
		},
		SourcesLoaded:        map[string]int{"billing": 1200},
		ExecutionTimeSeconds: 0.42,
	}
}

func TestJSONReporterString(t *testing.T) {
	out, err := NewJSONReporter().String(sampleReport())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	meta, ok := doc["_meta"].(map[string]any)
	require.True(t, ok, "document must carry a _meta block")
	assert.Equal(t, "0.1.0", meta["tool_version"])
	assert.Equal(t, "1.0", meta["format_version"])
	assert.Equal(t, "recon", meta["generated_by"])
	assert.NotEmpty(t, meta["documentation"])

	assert.Equal(t, "billing", doc["project_name"])

	summary, ok := doc["summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), summary["integrity_checks"])
	assert.Equal(t, float64(0), summary["integrity_passed"])
	assert.Equal(t, float64(1), summary["entity_comparisons"])
}

func TestJSONReporterRoundingAndTruncation(t *testing.T) {
	out, err := NewJSONReporter().String(sampleReport())
	require.NoError(t, err)

	var doc struct {
		IntegrityChecks []struct {
			MatchPercentage float64  `json:"match_percentage"`
			OrphanKeySample []string `json:"orphan_keys_sample"`
		} `json:"integrity_checks"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.IntegrityChecks, 1)

	assert.Equal(t, 33.33, doc.IntegrityChecks[0].MatchPercentage)
	assert.Len(t, doc.IntegrityChecks[0].OrphanKeySample, 10)
}

func TestJSONReporterStringHasNoSideEffects(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	_, err = NewJSONReporter().String(sampleReport())
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "String must not touch storage")
}

func TestJSONReporterGenerate(t *testing.T) {
	dir := t.TempDir()
	filters := results.Filters{SiteID: "146", Vendor: "Verizon"}

	path, err := NewJSONReporter().Generate(sampleReport(), filters, dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "recon_billing_site146_Verizon_20260829_103045.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "\n"))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "billing", doc["project_name"])

	// No temp file left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestJSONReporterCompact(t *testing.T) {
	reporter := &JSONReporter{Pretty: false}
	out, err := reporter.String(sampleReport())
	require.NoError(t, err)
	assert.NotContains(t, out, "\n")
}

func TestJSONReporterCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")

	path, err := NewJSONReporter().Generate(sampleReport(), results.Filters{}, dir)
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

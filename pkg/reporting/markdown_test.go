package reporting

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/recon/pkg/results"
)

func emptyReport() *results.Report {
	return &results.Report{
		ProjectName: "billing",
		GeneratedAt: fixedTime(),
		ConfigFile:  "config/billing.yaml",
	}
}

func TestMarkdownLegend(t *testing.T) {
	out, err := NewMarkdownReporter().String(emptyReport(), results.Filters{})
	require.NoError(t, err)

	assert.Contains(t, out, "# 🔍 Reconciliation Report")
	assert.Contains(t, out, "## 📋 Status Legend")

	// The legend always contains exactly the six statuses with their meanings.
	for _, status := range results.ValidationStatuses() {
		assert.Contains(t, out, status.String())
		assert.Contains(t, out, status.Meaning())
	}

	assert.Contains(t, out, "the tool never assumes and never infers")
	assert.Contains(t, out, `Never "could be..." or "probably..."`)
}

func TestMarkdownPlaceholders(t *testing.T) {
	out, err := NewMarkdownReporter().String(emptyReport(), results.Filters{})
	require.NoError(t, err)

	assert.Contains(t, out, "*No sources loaded*")
	assert.Contains(t, out, "*No integrity checks configured or executed*")
	assert.Contains(t, out, "*No entity comparisons executed*")
}

func TestMarkdownFiltersSection(t *testing.T) {
	reporter := NewMarkdownReporter()

	out, err := reporter.String(emptyReport(), results.Filters{})
	require.NoError(t, err)
	assert.NotContains(t, out, "Applied Filters", "filters section is omitted, not rendered empty")

	out, err = reporter.String(emptyReport(), results.Filters{SiteID: "146", Vendor: "Verizon"})
	require.NoError(t, err)
	assert.Contains(t, out, "## 🔍 Applied Filters")
	assert.Contains(t, out, "**site_id:** `146`")
	assert.Contains(t, out, "**vendor:** `Verizon`")
}

func TestMarkdownEntityDetail(t *testing.T) {
	out, err := NewMarkdownReporter().String(sampleReport(), results.Filters{})
	require.NoError(t, err)

	assert.Contains(t, out, "### site: 146")
	assert.Contains(t, out, "**Summary:** 1 ✅ | 0 ❌ | 0 🔵")
	assert.Contains(t, out, "Total MRC")
	assert.Contains(t, out, "values match")
}

func TestMarkdownAbsentValueMarker(t *testing.T) {
	report := emptyReport()
	report.EntityComparisons = []results.EntityComparison{
		{
			EntityType: "site",
			EntityID:   "201",
			Validations: []results.ValidationResult{
				{Status: results.StatusNotVerifiable, FieldName: "Bandwidth", Message: "source value empty"},
			},
		},
	}

	out, err := NewMarkdownReporter().String(report, results.Filters{})
	require.NoError(t, err)
	assert.Contains(t, out, naMarker, "absent values are displayed, never silently omitted")
}

func TestMarkdownIntegritySection(t *testing.T) {
	out, err := NewMarkdownReporter().String(sampleReport(), results.Filters{})
	require.NoError(t, err)

	assert.Contains(t, out, "## 🔗 Integrity Checks")
	assert.Contains(t, out, "sites_in_inventory")
	assert.Contains(t, out, "billing → inventory")
	assert.Contains(t, out, "33.3%")
}

func TestMarkdownExecutiveSummaryAndFooter(t *testing.T) {
	out, err := NewMarkdownReporter().String(sampleReport(), results.Filters{})
	require.NoError(t, err)

	assert.Contains(t, out, "## 📈 Executive Summary")
	assert.Contains(t, out, "**Total validations:** 1")
	assert.Contains(t, out, "**Matches (MATCH):** 1 ✅")
	assert.Contains(t, out, "**Checks run:** 1")
	assert.Contains(t, out, "*Generated automatically by recon v0.1.0*")
}

func TestMarkdownIdempotent(t *testing.T) {
	reporter := NewMarkdownReporter()
	report := sampleReport()
	filters := results.Filters{SiteID: "146"}

	first, err := reporter.String(report, filters)
	require.NoError(t, err)
	second, err := reporter.String(report, filters)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same report must render byte-identically")
}

func TestMarkdownGenerate(t *testing.T) {
	dir := t.TempDir()

	path, err := NewMarkdownReporter().Generate(sampleReport(), results.Filters{SiteID: "146"}, dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "recon_billing_site146_20260829_103045.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.HasPrefix(content, "# 🔍 Reconciliation Report"))

	rendered, err := NewMarkdownReporter().String(sampleReport(), results.Filters{SiteID: "146"})
	require.NoError(t, err)
	assert.Equal(t, rendered, content, "file content matches the in-memory rendering")
}

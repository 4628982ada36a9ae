package reporting

import (
	"testing"
	"time"

	"github.com/agentstation/utc"
	"github.com/stretchr/testify/assert"

	"github.com/agentstation/recon/pkg/results"
)

func fixedTime() utc.Time {
	return utc.Time{Time: time.Date(2026, 8, 29, 10, 30, 45, 0, time.UTC)}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name    string
		filters results.Filters
		ext     string
		want    string
	}{
		{
			name: "no filters",
			ext:  "json",
			want: "recon_billing_20260829_103045.json",
		},
		{
			name:    "site filter",
			filters: results.Filters{SiteID: "146"},
			ext:     "md",
			want:    "recon_billing_site146_20260829_103045.md",
		},
		{
			name:    "site and vendor",
			filters: results.Filters{SiteID: "146", Vendor: "Verizon"},
			ext:     "json",
			want:    "recon_billing_site146_Verizon_20260829_103045.json",
		},
		{
			name:    "vendor only",
			filters: results.Filters{Vendor: "Verizon"},
			ext:     "md",
			want:    "recon_billing_Verizon_20260829_103045.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filename("billing", tt.filters, fixedTime(), tt.ext)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusSymbol(t *testing.T) {
	assert.Equal(t, "✅", StatusSymbol(results.StatusMatch))
	assert.Equal(t, "❌", StatusSymbol(results.StatusMismatch))
	assert.Equal(t, "🔵", StatusSymbol(results.StatusNotVerifiable))
	assert.Equal(t, "🟣", StatusSymbol(results.StatusRuleNotDefined))
	assert.Equal(t, UnknownSymbol, StatusSymbol(results.ValidationStatus("BOGUS")))
}

func TestSeveritySymbol(t *testing.T) {
	assert.Equal(t, "🔴", SeveritySymbol(results.SeverityCritical))
	assert.Equal(t, UnknownSymbol, SeveritySymbol(results.Severity("FATAL")))
}

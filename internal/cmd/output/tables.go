package output

import (
	"fmt"

	"github.com/agentstation/recon/pkg/reporting"
	"github.com/agentstation/recon/pkg/results"
)

// LegendTableData builds the validation status legend table.
func LegendTableData() Data {
	rows := make([][]string, 0, 6)
	for _, status := range results.ValidationStatuses() {
		rows = append(rows, []string{
			status.String(),
			reporting.StatusSymbol(status),
			status.Meaning(),
		})
	}
	return Data{
		Headers: []string{"Status", "Symbol", "Meaning"},
		Rows:    rows,
	}
}

// ProjectRow is one row of the available-projects listing.
type ProjectRow struct {
	Project    string `json:"project"`
	ConfigFile string `json:"config_file"`
	Status     string `json:"status"`
}

// ProjectsTableData builds the available-projects table.
func ProjectsTableData(projects []ProjectRow) Data {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{p.Project, p.ConfigFile, p.Status})
	}
	return Data{
		Headers: []string{"Project", "Config File", "Status"},
		Rows:    rows,
	}
}

// ReportSummaryTableData builds the console summary of a reconciliation run.
func ReportSummaryTableData(report *results.Report) Data {
	rows := [][]string{
		{"Integrity checks", fmt.Sprintf("%d", len(report.IntegrityChecks))},
		{"Integrity passed", fmt.Sprintf("%d", report.IntegrityPassed())},
		{"Data quality tables", fmt.Sprintf("%d", len(report.DataQuality))},
		{"Entity comparisons", fmt.Sprintf("%d", len(report.EntityComparisons))},
		{"Total validations", fmt.Sprintf("%d", report.TotalValidations())},
		{"Matches", fmt.Sprintf("%d", report.TotalMatches())},
		{"Mismatches", fmt.Sprintf("%d", report.TotalMismatches())},
		{"Not verifiable", fmt.Sprintf("%d", report.TotalNotVerifiable())},
	}
	return Data{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}
}

package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentstation/recon/internal/cmd/output"
	"github.com/agentstation/recon/pkg/config"
	"github.com/agentstation/recon/pkg/reporting"
	"github.com/agentstation/recon/pkg/results"
)

// NewRunCommand creates the run command: load a project configuration, execute
// the reconciliation engine, and render the requested report artifacts.
func (a *App) NewRunCommand() *cobra.Command {
	var (
		project     string
		configDir   string
		siteID      string
		vendor      string
		serviceType string
		outputKind  string
		outputDir   string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a reconciliation and generate reports",
		Long: `Run loads a project configuration, executes the reconciliation
engine against the configured sources, and renders the requested
report artifacts (console summary, Markdown, JSON).`,
		Example: `  recon run --project billing
  recon run --project billing --site 146 --vendor Verizon --output all
  recon run --project billing --output json --output-dir /tmp/reports`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateOutputKind(outputKind); err != nil {
				return err
			}

			proj, err := a.loadProject(configDir, project)
			if err != nil {
				return err
			}

			filters := results.Filters{
				SiteID:      siteID,
				Vendor:      vendor,
				ServiceType: serviceType,
			}

			start := time.Now()
			report, err := a.Engine().Run(cmd.Context(), proj, filters)
			if err != nil {
				return err
			}
			report.ExecutionTimeSeconds = time.Since(start).Seconds()

			a.logger.Info().
				Str("project", report.ProjectName).
				Int("validations", report.TotalValidations()).
				Float64("seconds", report.ExecutionTimeSeconds).
				Msg("Reconciliation complete")

			dir := outputDir
			if dir == "" {
				dir = proj.ReportsOutputPath
			}

			return a.renderReports(cmd, report, filters, outputKind, dir)
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "project identifier (config file stem)")
	cmd.Flags().StringVarP(&configDir, "config-dir", "c", "", "directory containing project configs")
	cmd.Flags().StringVar(&siteID, "site", "", "filter to a single site id")
	cmd.Flags().StringVar(&vendor, "vendor", "", "filter to a single vendor")
	cmd.Flags().StringVar(&serviceType, "service-type", "", "filter to a single service type")
	cmd.Flags().StringVar(&outputKind, "output", "console", "report output: console, markdown, json, all")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "report output directory (default from project config)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

// validateOutputKind rejects unknown --output values before any work happens.
func validateOutputKind(kind string) error {
	switch kind {
	case "console", "markdown", "json", "all":
		return nil
	default:
		return fmt.Errorf("invalid output %q: must be one of: console, markdown, json, all", kind)
	}
}

// loadProject resolves and loads one project configuration. The config
// directory flag overrides the app-level setting; the project identifier is
// the YAML file stem, with .yaml preferred over .yml.
func (a *App) loadProject(configDir, project string) (*config.Project, error) {
	dir := configDir
	if dir == "" {
		dir = a.config.ConfigDir
	}

	path := filepath.Join(dir, project+".yaml")
	if _, err := os.Stat(path); err != nil {
		alt := filepath.Join(dir, project+".yml")
		if _, altErr := os.Stat(alt); altErr == nil {
			path = alt
		}
	}

	loader, err := config.NewLoader(path)
	if err != nil {
		return nil, err
	}
	return loader.Load()
}

// renderReports emits the requested artifacts. File-producing renderers print
// the written path to stdout so callers can locate the artifacts.
func (a *App) renderReports(cmd *cobra.Command, report *results.Report, filters results.Filters, kind, dir string) error {
	w := cmd.OutOrStdout()

	if kind == "console" || kind == "all" {
		format := output.DetectFormat(a.config.Format)
		formatter := output.NewFormatter(format)
		if err := formatter.Format(w, output.ReportSummaryTableData(report)); err != nil {
			return err
		}
	}

	if kind == "markdown" || kind == "all" {
		path, err := reporting.NewMarkdownReporter().Generate(report, filters, dir)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Markdown report: %s\n", path)
	}

	if kind == "json" || kind == "all" {
		path, err := reporting.NewJSONReporter().Generate(report, filters, dir)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "JSON report: %s\n", path)
	}

	return nil
}

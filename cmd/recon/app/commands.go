package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/agentstation/recon/internal/cmd/output"
	"github.com/agentstation/recon/pkg/config"
)

// NewProjectsCommand creates the projects command: list the project
// configurations available in the config directory with validity status.
func (a *App) NewProjectsCommand() *cobra.Command {
	var configDir string

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List available reconciliation projects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir := configDir
			if dir == "" {
				dir = a.config.ConfigDir
			}

			names := config.AvailableProjects(dir)
			if len(names) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No projects found in %s\n", dir)
				return nil
			}

			rows := make([]output.ProjectRow, 0, len(names))
			for _, name := range names {
				rows = append(rows, a.projectRow(dir, name))
			}

			formatter := output.NewFormatter(output.DetectFormat(a.config.Format))
			return formatter.Format(cmd.OutOrStdout(), output.ProjectsTableData(rows))
		},
	}

	cmd.Flags().StringVarP(&configDir, "config-dir", "c", "", "directory containing project configs")

	return cmd
}

// projectRow loads one project config just far enough to report validity.
func (a *App) projectRow(dir, name string) output.ProjectRow {
	path := filepath.Join(dir, name+".yaml")
	if _, err := os.Stat(path); err != nil {
		path = filepath.Join(dir, name+".yml")
	}

	row := output.ProjectRow{Project: name, ConfigFile: path}

	loader, err := config.NewLoader(path)
	if err == nil {
		_, err = loader.Load()
	}
	if err != nil {
		a.logger.Debug().Err(err).Str("project", name).Msg("Project config invalid")
		row.Status = "❌ invalid"
		return row
	}

	row.Status = "✅ valid"
	return row
}

// NewValidateCommand creates the validate command: load one project
// configuration, report its shape, and flag missing source files.
func (a *App) NewValidateCommand() *cobra.Command {
	var (
		project   string
		configDir string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a project configuration",
		Long: `Validate loads a single project configuration, applying the same
defaulting and consistency checks as a reconciliation run, and reports
the configured sources, rules, and integrity checks. Source files that
do not exist on disk are flagged but do not fail validation.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			proj, err := a.loadProject(configDir, project)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "✅ %s is valid\n\n", proj.ConfigPath)

			data := output.Data{
				Headers: []string{"Setting", "Value"},
				Rows: [][]string{
					{"Project", proj.Name},
					{"Version", proj.Version},
					{"Sources", fmt.Sprintf("%d", len(proj.Sources))},
					{"Validation rules", fmt.Sprintf("%d", len(proj.Rules))},
					{"Integrity checks", fmt.Sprintf("%d", len(proj.IntegrityChecks))},
					{"Numeric tolerance", fmt.Sprintf("%v", proj.NumericTolerance)},
				},
			}
			formatter := output.NewFormatter(output.DetectFormat(a.config.Format))
			if err := formatter.Format(w, data); err != nil {
				return err
			}

			for _, missing := range missingSourceFiles(proj) {
				fmt.Fprintf(w, "⚠️  source file not found: %s\n", missing)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "project identifier (config file stem)")
	cmd.Flags().StringVarP(&configDir, "config-dir", "c", "", "directory containing project configs")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

// missingSourceFiles returns the resolved paths of configured sources that do
// not exist on disk, in stable source-name order.
func missingSourceFiles(proj *config.Project) []string {
	missing := []string{}
	for _, name := range sortedSourceNames(proj) {
		path := proj.Sources[name].ResolvePath(proj.BasePath())
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, path)
		}
	}
	return missing
}

func sortedSourceNames(proj *config.Project) []string {
	names := make([]string, 0, len(proj.Sources))
	for name := range proj.Sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewLegendCommand creates the legend command: print the validation status
// taxonomy and the design statement behind it.
func (a *App) NewLegendCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "legend",
		Short: "Print the validation status legend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format := output.DetectFormat(a.config.Format)
			formatter := output.NewFormatter(format)
			if err := formatter.Format(cmd.OutOrStdout(), output.LegendTableData()); err != nil {
				return err
			}

			if format == output.FormatTable {
				fmt.Fprintln(cmd.OutOrStdout())
				fmt.Fprintln(cmd.OutOrStdout(), "The tool never assumes and never infers: what it cannot verify is")
				fmt.Fprintln(cmd.OutOrStdout(), "classified as NOT_VERIFIABLE or RULE_NOT_DEFINED, never guessed.")
			}
			return nil
		},
	}
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "recon %s\n", a.version)
			fmt.Fprintf(w, "  commit:   %s\n", a.commit)
			fmt.Fprintf(w, "  built:    %s\n", a.date)
			fmt.Fprintf(w, "  built by: %s\n", a.builtBy)
			return nil
		},
	}
}

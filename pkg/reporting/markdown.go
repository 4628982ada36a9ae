package reporting

import (
	"fmt"
	"sort"
	"strings"

	md "github.com/nao1215/markdown"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/agentstation/recon/pkg/constants"
	"github.com/agentstation/recon/pkg/errors"
	"github.com/agentstation/recon/pkg/results"
)

// naMarker is rendered for absent values. An absent value is displayed, never
// silently omitted.
const naMarker = "*N/A*"

// displayTimeLayout is the human-readable timestamp used in headers/footers.
const displayTimeLayout = "2006-01-02 15:04:05"

// MarkdownReporter renders a report as a narrative Markdown document. The
// document is an ordered concatenation of independent sections; a section with
// no data renders an explicit placeholder rather than disappearing or failing.
type MarkdownReporter struct {
	printer *message.Printer
}

// NewMarkdownReporter creates a Markdown reporter.
func NewMarkdownReporter() *MarkdownReporter {
	return &MarkdownReporter{
		// English locale gives thousands separators in row counts.
		printer: message.NewPrinter(language.English),
	}
}

// String renders the full report document to an in-memory string.
func (r *MarkdownReporter) String(report *results.Report, filters results.Filters) (string, error) {
	var sb strings.Builder
	builder := md.NewMarkdown(&sb)

	r.header(builder, report)
	r.legend(builder)
	r.filtersSection(builder, filters)
	r.sourcesSection(builder, report)
	r.integritySection(builder, report)
	r.entitySection(builder, report)
	r.summarySection(builder, report)
	r.footer(builder, report)

	if err := builder.Build(); err != nil {
		return "", errors.WrapParse("markdown", "", err)
	}
	return sb.String(), nil
}

// Generate renders the report and writes it under outputDir using the shared
// filename convention with a .md extension. Returns the path written.
func (r *MarkdownReporter) Generate(report *results.Report, filters results.Filters, outputDir string) (string, error) {
	content, err := r.String(report, filters)
	if err != nil {
		return "", err
	}

	name := Filename(report.ProjectName, filters, report.GeneratedAt, "md")
	return writeFileAtomic(outputDir, name, []byte(content))
}

// header renders section 1: project, timestamp, config path, execution time.
func (r *MarkdownReporter) header(builder *md.Markdown, report *results.Report) {
	builder.H1("🔍 Reconciliation Report").LF()
	builder.PlainText(strings.Join([]string{
		"**Project:** " + report.ProjectName + "  ",
		"**Generated:** " + report.GeneratedAt.Format(displayTimeLayout) + "  ",
		"**Config:** `" + report.ConfigFile + "`  ",
		fmt.Sprintf("**Execution time:** %.2fs", report.ExecutionTimeSeconds),
	}, "\n")).LF()
	builder.HorizontalRule().LF()
}

// legend renders section 2: the fixed six-row status table and the design
// statement. The legend always contains exactly the six statuses, regardless
// of report content.
func (r *MarkdownReporter) legend(builder *md.Markdown) {
	builder.H2("📋 Status Legend").LF()

	rows := make([][]string, 0, 6)
	for _, status := range results.ValidationStatuses() {
		rows = append(rows, []string{status.String(), StatusSymbol(status), status.Meaning()})
	}
	builder.Table(md.TableSet{
		Header: []string{"Status", "Symbol", "Meaning"},
		Rows:   rows,
	})

	builder.PlainText(strings.Join([]string{
		"> **Design principle:** the tool never assumes and never infers.",
		"> If it cannot verify, it classifies as `NOT_VERIFIABLE` or `RULE_NOT_DEFINED`.",
		`> Never "could be..." or "probably...".`,
	}, "\n")).LF()
	builder.HorizontalRule().LF()
}

// filtersSection renders section 3. Omitted entirely, not shown as empty,
// when no filters were supplied.
func (r *MarkdownReporter) filtersSection(builder *md.Markdown, filters results.Filters) {
	if filters.IsZero() {
		return
	}

	builder.H2("🔍 Applied Filters").LF()
	items := []string{}
	for _, key := range sortedKeys(filters.Map()) {
		items = append(items, fmt.Sprintf("**%s:** `%s`", key, filters.Map()[key]))
	}
	builder.BulletList(items...).LF()
	builder.HorizontalRule().LF()
}

// sourcesSection renders section 4: the sources-loaded table, or an explicit
// placeholder.
func (r *MarkdownReporter) sourcesSection(builder *md.Markdown, report *results.Report) {
	if len(report.SourcesLoaded) == 0 {
		builder.H2("📁 Data Sources").LF()
		builder.PlainText("*No sources loaded*").LF()
		builder.HorizontalRule().LF()
		return
	}

	builder.H2("📁 Data Sources Loaded").LF()
	rows := make([][]string, 0, len(report.SourcesLoaded))
	for _, name := range sortedKeys(report.SourcesLoaded) {
		rows = append(rows, []string{name, r.printer.Sprintf("%d", report.SourcesLoaded[name])})
	}
	builder.Table(md.TableSet{
		Header: []string{"Source", "Rows"},
		Rows:   rows,
	})
	builder.HorizontalRule().LF()
}

// integritySection renders section 5: the integrity-checks table, or an
// explicit placeholder.
func (r *MarkdownReporter) integritySection(builder *md.Markdown, report *results.Report) {
	builder.H2("🔗 Integrity Checks").LF()
	if len(report.IntegrityChecks) == 0 {
		builder.PlainText("*No integrity checks configured or executed*").LF()
		builder.HorizontalRule().LF()
		return
	}

	rows := make([][]string, 0, len(report.IntegrityChecks))
	for _, check := range report.IntegrityChecks {
		rows = append(rows, []string{
			StatusSymbol(check.Status) + " " + check.CheckName,
			check.SourceTable + " → " + check.TargetTable,
			fmt.Sprintf("%.1f%%", check.MatchPercentage()),
			r.printer.Sprintf("%d", check.MissingInTarget),
		})
	}
	builder.Table(md.TableSet{
		Header: []string{"Check", "Tables", "Match %", "Missing"},
		Rows:   rows,
	})
	builder.HorizontalRule().LF()
}

// entitySection renders section 6: per-entity detail blocks, or an explicit
// placeholder.
func (r *MarkdownReporter) entitySection(builder *md.Markdown, report *results.Report) {
	builder.H2("📊 Entity Comparisons").LF()
	if len(report.EntityComparisons) == 0 {
		builder.PlainText("*No entity comparisons executed*").LF()
		builder.HorizontalRule().LF()
		return
	}

	for _, entity := range report.EntityComparisons {
		r.entityDetail(builder, entity)
	}
	builder.HorizontalRule().LF()
}

// entityDetail renders one entity: heading, filter description, summary line,
// and one table row per validation result.
func (r *MarkdownReporter) entityDetail(builder *md.Markdown, entity results.EntityComparison) {
	builder.H3(entity.EntityType + ": " + entity.EntityID).LF()

	descriptions := []string{}
	for _, key := range sortedKeys(entity.EntityFilters) {
		descriptions = append(descriptions, key+"="+entity.EntityFilters[key])
	}
	builder.PlainText("**Filters:** " + strings.Join(descriptions, ", ")).LF()

	builder.PlainTextf("**Summary:** %d ✅ | %d ❌ | %d 🔵",
		entity.MatchCount(), entity.MismatchCount(), entity.NotVerifiableCount())
	builder.LF()

	rows := make([][]string, 0, len(entity.Validations))
	for _, v := range entity.Validations {
		rows = append(rows, []string{
			v.FieldName,
			formatValue(v.SourceValue),
			formatValue(v.PBIValue),
			StatusSymbol(v.Status) + " " + v.Status.String(),
			v.Message,
		})
	}
	builder.Table(md.TableSet{
		Header: []string{"Field", "Source", "PBI", "Status", "Message"},
		Rows:   rows,
	})
}

// summarySection renders section 7: the executive summary across all entities
// and integrity checks.
func (r *MarkdownReporter) summarySection(builder *md.Markdown, report *results.Report) {
	builder.H2("📈 Executive Summary").LF()

	builder.H3("Field Validations").LF()
	builder.BulletList(
		fmt.Sprintf("**Total validations:** %d", report.TotalValidations()),
		fmt.Sprintf("**Matches (MATCH):** %d ✅", report.TotalMatches()),
		fmt.Sprintf("**Discrepancies (MISMATCH):** %d ❌", report.TotalMismatches()),
		fmt.Sprintf("**Not verifiable:** %d 🔵", report.TotalNotVerifiable()),
	).LF()

	builder.H3("Referential Integrity").LF()
	builder.BulletList(
		fmt.Sprintf("**Checks run:** %d", len(report.IntegrityChecks)),
		fmt.Sprintf("**Checks passed:** %d", report.IntegrityPassed()),
	).LF()
	builder.HorizontalRule().LF()
}

// footer renders section 8: generator identity and timestamp.
func (r *MarkdownReporter) footer(builder *md.Markdown, report *results.Report) {
	builder.PlainText(strings.Join([]string{
		fmt.Sprintf("*Generated automatically by %s v%s*  ", constants.GeneratedBy, constants.ToolVersion),
		"*" + report.GeneratedAt.Format(displayTimeLayout) + "*",
	}, "\n")).LF()
}

// formatValue renders an opaque comparison value, with an explicit marker for
// absent values.
func formatValue(v any) string {
	if v == nil {
		return naMarker
	}
	return fmt.Sprintf("%v", v)
}

// sortedKeys returns the map keys in sorted order for deterministic output.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

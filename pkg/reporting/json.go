package reporting

import (
	"encoding/json"

	"github.com/agentstation/recon/pkg/constants"
	"github.com/agentstation/recon/pkg/errors"
	"github.com/agentstation/recon/pkg/results"
)

// Meta identifies the tool and format version of an emitted JSON report.
type Meta struct {
	ToolVersion   string `json:"tool_version"`
	FormatVersion string `json:"format_version"`
	GeneratedBy   string `json:"generated_by"`
	Documentation string `json:"documentation"`
}

// envelope is the full emitted JSON document: the report structure plus the
// _meta block.
type envelope struct {
	results.ReportDocument
	Meta Meta `json:"_meta"`
}

// JSONReporter renders a report as a machine-readable JSON document.
type JSONReporter struct {
	// Pretty enables two-space indentation. On by default.
	Pretty bool
}

// NewJSONReporter creates a JSON reporter with pretty-printing enabled.
func NewJSONReporter() *JSONReporter {
	return &JSONReporter{Pretty: true}
}

// String renders the report to an in-memory JSON string without touching
// storage, for embedding in other responses.
func (r *JSONReporter) String(report *results.Report) (string, error) {
	data, err := r.render(report)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Generate renders the report and writes it under outputDir using the shared
// filename convention. The output directory is an explicit argument of every
// call, never reporter state. Returns the path written.
func (r *JSONReporter) Generate(report *results.Report, filters results.Filters, outputDir string) (string, error) {
	data, err := r.render(report)
	if err != nil {
		return "", err
	}

	name := Filename(report.ProjectName, filters, report.GeneratedAt, "json")
	return writeFileAtomic(outputDir, name, append(data, '\n'))
}

// render builds the emitted document: the report's serialized shape plus _meta.
func (r *JSONReporter) render(report *results.Report) ([]byte, error) {
	doc := envelope{
		ReportDocument: report.Document(),
		Meta: Meta{
			ToolVersion:   constants.ToolVersion,
			FormatVersion: constants.FormatVersion,
			GeneratedBy:   constants.GeneratedBy,
			Documentation: constants.DocumentationURL,
		},
	}

	var (
		data []byte
		err  error
	)
	if r.Pretty {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return nil, errors.WrapParse("json", "", err)
	}
	return data, nil
}

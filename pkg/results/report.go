package results

import (
	"github.com/agentstation/utc"
)

// Report is the aggregate result of one reconciliation run. It is constructed
// once by the orchestration layer and consumed read-only by renderers.
//
// Each contained EntityComparison and IntegrityCheckResult is an independently
// produced, order-insensitive unit: renderers may sort for presentation but
// must not rely on construction order for correctness.
type Report struct {
	ProjectName string   `json:"project_name" yaml:"project_name"`
	GeneratedAt utc.Time `json:"generated_at" yaml:"generated_at"`
	ConfigFile  string   `json:"config_file" yaml:"config_file"`

	IntegrityChecks   []IntegrityCheckResult `json:"integrity_checks,omitempty" yaml:"integrity_checks,omitempty"`
	DataQuality       []DataQualityMetric    `json:"data_quality,omitempty" yaml:"data_quality,omitempty"`
	EntityComparisons []EntityComparison     `json:"entity_comparisons,omitempty" yaml:"entity_comparisons,omitempty"`

	SourcesLoaded        map[string]int    `json:"sources_loaded,omitempty" yaml:"sources_loaded,omitempty"` // source name -> row count
	ExecutionTimeSeconds float64           `json:"execution_time_seconds" yaml:"execution_time_seconds"`
	FiltersApplied       map[string]string `json:"filters_applied,omitempty" yaml:"filters_applied,omitempty"`
}

// IntegrityPassed returns the number of integrity checks whose status is MATCH.
func (r *Report) IntegrityPassed() int {
	passed := 0
	for _, c := range r.IntegrityChecks {
		if c.Status == StatusMatch {
			passed++
		}
	}
	return passed
}

// TotalValidations returns the number of field validations across all entities.
func (r *Report) TotalValidations() int {
	total := 0
	for _, e := range r.EntityComparisons {
		total += len(e.Validations)
	}
	return total
}

// TotalMatches returns the MATCH count across all entities.
func (r *Report) TotalMatches() int {
	total := 0
	for _, e := range r.EntityComparisons {
		total += e.MatchCount()
	}
	return total
}

// TotalMismatches returns the MISMATCH count across all entities.
func (r *Report) TotalMismatches() int {
	total := 0
	for _, e := range r.EntityComparisons {
		total += e.MismatchCount()
	}
	return total
}

// TotalNotVerifiable returns the NOT_VERIFIABLE count across all entities.
func (r *Report) TotalNotVerifiable() int {
	total := 0
	for _, e := range r.EntityComparisons {
		total += e.NotVerifiableCount()
	}
	return total
}

// ReportSummary holds the top-level counts derived from the report's lists.
type ReportSummary struct {
	IntegrityChecks   int `json:"integrity_checks"`
	IntegrityPassed   int `json:"integrity_passed"`
	DataQualityTables int `json:"data_quality_tables"`
	EntityComparisons int `json:"entity_comparisons"`
}

// ReportDocument is the serialized shape of a full report. Field names and
// nesting are a stable external contract for consumers of the JSON format.
type ReportDocument struct {
	ProjectName          string              `json:"project_name"`
	GeneratedAt          utc.Time            `json:"generated_at"`
	ConfigFile           string              `json:"config_file"`
	ExecutionTimeSeconds float64             `json:"execution_time_seconds"`
	SourcesLoaded        map[string]int      `json:"sources_loaded"`
	FiltersApplied       map[string]string   `json:"filters_applied"`
	Summary              ReportSummary       `json:"summary"`
	IntegrityChecks      []IntegrityDocument `json:"integrity_checks"`
	DataQuality          []QualityDocument   `json:"data_quality"`
	EntityComparisons    []EntityDocument    `json:"entity_comparisons"`
}

// Document returns the serialized shape of the report. The summary block is
// recomputed from the contained lists at serialization time, never maintained
// as separate counters, so it cannot drift or double-count.
func (r *Report) Document() ReportDocument {
	sourcesLoaded := r.SourcesLoaded
	if sourcesLoaded == nil {
		sourcesLoaded = map[string]int{}
	}
	filtersApplied := r.FiltersApplied
	if filtersApplied == nil {
		filtersApplied = map[string]string{}
	}

	integrity := make([]IntegrityDocument, 0, len(r.IntegrityChecks))
	for _, c := range r.IntegrityChecks {
		integrity = append(integrity, c.Document())
	}
	quality := make([]QualityDocument, 0, len(r.DataQuality))
	for _, m := range r.DataQuality {
		quality = append(quality, m.Document())
	}
	entities := make([]EntityDocument, 0, len(r.EntityComparisons))
	for _, e := range r.EntityComparisons {
		entities = append(entities, e.Document())
	}

	return ReportDocument{
		ProjectName:          r.ProjectName,
		GeneratedAt:          r.GeneratedAt,
		ConfigFile:           r.ConfigFile,
		ExecutionTimeSeconds: r.ExecutionTimeSeconds,
		SourcesLoaded:        sourcesLoaded,
		FiltersApplied:       filtersApplied,
		Summary: ReportSummary{
			IntegrityChecks:   len(r.IntegrityChecks),
			IntegrityPassed:   r.IntegrityPassed(),
			DataQualityTables: len(r.DataQuality),
			EntityComparisons: len(r.EntityComparisons),
		},
		IntegrityChecks:   integrity,
		DataQuality:       quality,
		EntityComparisons: entities,
	}
}

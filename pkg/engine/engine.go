// Package engine defines the reconciliation engine boundary. The engine
// consumes a loaded project configuration, reads the configured sources and
// the derived model, applies field-mapping comparisons, and classifies every
// comparison into the closed validation taxonomy.
//
// The comparison/extraction implementation lives behind the Engine interface;
// this package ships a Skeleton that produces an empty (but fully formed)
// report so the pipeline is exercisable end to end.
package engine

import (
	"context"

	"github.com/agentstation/utc"

	"github.com/agentstation/recon/pkg/config"
	"github.com/agentstation/recon/pkg/logging"
	"github.com/agentstation/recon/pkg/results"
)

// Engine produces a reconciliation report for a project. Implementations must
// classify every comparison into exactly one ValidationStatus and must never
// infer: insufficient data is NOT_VERIFIABLE, a missing mapping is
// RULE_NOT_DEFINED.
type Engine interface {
	Run(ctx context.Context, project *config.Project, filters results.Filters) (*results.Report, error)
}

// Skeleton is an Engine that performs no comparisons. It returns a valid
// empty report carrying the project identity, generation timestamp, and
// applied filters, leaving every result list empty.
type Skeleton struct{}

// NewSkeleton creates a skeleton engine.
func NewSkeleton() *Skeleton {
	return &Skeleton{}
}

// Run implements Engine.
func (s *Skeleton) Run(ctx context.Context, project *config.Project, filters results.Filters) (*results.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logging.Debug().
		Str("project", project.Name).
		Int("sources", len(project.Sources)).
		Int("rules", len(project.Rules)).
		Msg("Skeleton engine run, no comparisons executed")

	return &results.Report{
		ProjectName:    project.Name,
		GeneratedAt:    utc.Now(),
		ConfigFile:     project.ConfigPath,
		FiltersApplied: filters.Map(),
	}, nil
}

package results

import (
	"math"

	"github.com/agentstation/recon/pkg/constants"
)

// IntegrityCheckResult is the outcome of one referential-integrity check:
// every source key value should have a matching target key value.
type IntegrityCheckResult struct {
	CheckName       string           `json:"check_name" yaml:"check_name"`
	SourceTable     string           `json:"source_table" yaml:"source_table"`
	TargetTable     string           `json:"target_table" yaml:"target_table"`
	SourceKey       string           `json:"source_key" yaml:"source_key"`
	TargetKey       string           `json:"target_key" yaml:"target_key"`
	Status          ValidationStatus `json:"status" yaml:"status"`
	TotalSourceKeys int              `json:"total_source_keys" yaml:"total_source_keys"`
	MatchedKeys     int              `json:"matched_keys" yaml:"matched_keys"`
	MissingInTarget int              `json:"missing_in_target" yaml:"missing_in_target"`
	OrphanKeys      []string         `json:"orphan_keys,omitempty" yaml:"orphan_keys,omitempty"`
	Severity        Severity         `json:"severity" yaml:"severity"`
}

// MatchPercentage returns matched/total as a percentage, defined as 0.0 when
// there are no source keys. Always in [0, 100].
func (c IntegrityCheckResult) MatchPercentage() float64 {
	if c.TotalSourceKeys == 0 {
		return 0.0
	}
	return float64(c.MatchedKeys) / float64(c.TotalSourceKeys) * 100
}

// OrphanSample returns at most OrphanKeySampleSize orphan keys for operator
// triage. The full list stays in memory but is never serialized beyond this.
func (c IntegrityCheckResult) OrphanSample() []string {
	if len(c.OrphanKeys) <= constants.OrphanKeySampleSize {
		return c.OrphanKeys
	}
	return c.OrphanKeys[:constants.OrphanKeySampleSize]
}

// IntegrityDocument is the serialized shape of one IntegrityCheckResult.
type IntegrityDocument struct {
	CheckName       string   `json:"check_name"`
	SourceTable     string   `json:"source_table"`
	TargetTable     string   `json:"target_table"`
	SourceKey       string   `json:"source_key"`
	TargetKey       string   `json:"target_key"`
	Status          string   `json:"status"`
	TotalSourceKeys int      `json:"total_source_keys"`
	MatchedKeys     int      `json:"matched_keys"`
	MissingInTarget int      `json:"missing_in_target"`
	MatchPercentage float64  `json:"match_percentage"`
	OrphanKeySample []string `json:"orphan_keys_sample"`
	Severity        string   `json:"severity"`
}

// Document returns the serialized shape of the check result.
func (c IntegrityCheckResult) Document() IntegrityDocument {
	sample := c.OrphanSample()
	if sample == nil {
		sample = []string{}
	}
	return IntegrityDocument{
		CheckName:       c.CheckName,
		SourceTable:     c.SourceTable,
		TargetTable:     c.TargetTable,
		SourceKey:       c.SourceKey,
		TargetKey:       c.TargetKey,
		Status:          c.Status.String(),
		TotalSourceKeys: c.TotalSourceKeys,
		MatchedKeys:     c.MatchedKeys,
		MissingInTarget: c.MissingInTarget,
		MatchPercentage: round2(c.MatchPercentage()),
		OrphanKeySample: sample,
		Severity:        c.Severity.String(),
	}
}

// round2 rounds to two decimal places for serialized percentages.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

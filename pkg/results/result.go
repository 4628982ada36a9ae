package results

// ValidationResult is one field-level comparison outcome. Instances are
// produced by the reconciliation engine and are immutable once constructed.
type ValidationResult struct {
	Status        ValidationStatus `json:"status" yaml:"status"`
	FieldName     string           `json:"field_name" yaml:"field_name"`
	SourceValue   any              `json:"source_value" yaml:"source_value"`
	PBIValue      any              `json:"pbi_value" yaml:"pbi_value"`
	Message       string           `json:"message" yaml:"message"`
	Severity      Severity         `json:"severity" yaml:"severity"`
	ToleranceUsed *float64         `json:"tolerance_used,omitempty" yaml:"tolerance_used,omitempty"`
	Metadata      map[string]any   `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// ValidationDocument is the serialized shape of one ValidationResult.
type ValidationDocument struct {
	Status        string         `json:"status"`
	FieldName     string         `json:"field_name"`
	SourceValue   any            `json:"source_value"`
	PBIValue      any            `json:"pbi_value"`
	Message       string         `json:"message"`
	Severity      string         `json:"severity"`
	ToleranceUsed *float64       `json:"tolerance_used"`
	Metadata      map[string]any `json:"metadata"`
}

// Document returns the serialized shape of the result. A zero severity is
// emitted as INFO; metadata is always emitted, empty rather than null.
func (v ValidationResult) Document() ValidationDocument {
	severity := v.Severity
	if severity == "" {
		severity = SeverityInfo
	}
	metadata := v.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	return ValidationDocument{
		Status:        v.Status.String(),
		FieldName:     v.FieldName,
		SourceValue:   v.SourceValue,
		PBIValue:      v.PBIValue,
		Message:       v.Message,
		Severity:      severity.String(),
		ToleranceUsed: v.ToleranceUsed,
		Metadata:      metadata,
	}
}

package results

// EntityComparison groups validation results under one real-world entity,
// such as one site/vendor/service combination.
//
// The per-status counts are pure functions of the validations list, recomputed
// on every access. They are deliberately never stored so they can never drift
// from the list they summarize.
type EntityComparison struct {
	EntityType    string             `json:"entity_type" yaml:"entity_type"`
	EntityID      string             `json:"entity_id" yaml:"entity_id"`
	EntityFilters map[string]string  `json:"entity_filters" yaml:"entity_filters"`
	Validations   []ValidationResult `json:"validations" yaml:"validations"`
}

// MatchCount returns the number of validations classified MATCH.
func (e EntityComparison) MatchCount() int {
	return e.countStatus(StatusMatch)
}

// MismatchCount returns the number of validations classified MISMATCH.
func (e EntityComparison) MismatchCount() int {
	return e.countStatus(StatusMismatch)
}

// NotVerifiableCount returns the number of validations classified NOT_VERIFIABLE.
func (e EntityComparison) NotVerifiableCount() int {
	return e.countStatus(StatusNotVerifiable)
}

func (e EntityComparison) countStatus(status ValidationStatus) int {
	count := 0
	for _, v := range e.Validations {
		if v.Status == status {
			count++
		}
	}
	return count
}

// EntitySummary holds the derived counts for one entity comparison.
type EntitySummary struct {
	Total         int `json:"total"`
	Match         int `json:"match"`
	Mismatch      int `json:"mismatch"`
	NotVerifiable int `json:"not_verifiable"`
}

// EntityDocument is the serialized shape of one EntityComparison.
type EntityDocument struct {
	EntityType    string               `json:"entity_type"`
	EntityID      string               `json:"entity_id"`
	EntityFilters map[string]string    `json:"entity_filters"`
	Summary       EntitySummary        `json:"summary"`
	Validations   []ValidationDocument `json:"validations"`
}

// Document returns the serialized shape of the comparison, with the summary
// computed from the validations at serialization time.
func (e EntityComparison) Document() EntityDocument {
	filters := e.EntityFilters
	if filters == nil {
		filters = map[string]string{}
	}
	validations := make([]ValidationDocument, 0, len(e.Validations))
	for _, v := range e.Validations {
		validations = append(validations, v.Document())
	}
	return EntityDocument{
		EntityType:    e.EntityType,
		EntityID:      e.EntityID,
		EntityFilters: filters,
		Summary: EntitySummary{
			Total:         len(e.Validations),
			Match:         e.MatchCount(),
			Mismatch:      e.MismatchCount(),
			NotVerifiable: e.NotVerifiableCount(),
		},
		Validations: validations,
	}
}

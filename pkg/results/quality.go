package results

// DataQualityMetric is a per-table data quality snapshot.
type DataQualityMetric struct {
	TableName     string         `json:"table_name" yaml:"table_name"`
	TotalRows     int            `json:"total_rows" yaml:"total_rows"`
	TotalColumns  int            `json:"total_columns" yaml:"total_columns"`
	DuplicateRows int            `json:"duplicate_rows" yaml:"duplicate_rows"`
	NullCounts    map[string]int `json:"null_counts" yaml:"null_counts"`
}

// DuplicatePercentage returns duplicates/total as a percentage, defined as
// 0.0 when the table has no rows. Always in [0, 100].
func (m DataQualityMetric) DuplicatePercentage() float64 {
	if m.TotalRows == 0 {
		return 0.0
	}
	return float64(m.DuplicateRows) / float64(m.TotalRows) * 100
}

// QualityDocument is the serialized shape of one DataQualityMetric.
type QualityDocument struct {
	TableName           string         `json:"table_name"`
	TotalRows           int            `json:"total_rows"`
	TotalColumns        int            `json:"total_columns"`
	DuplicateRows       int            `json:"duplicate_rows"`
	DuplicatePercentage float64        `json:"duplicate_percentage"`
	NullCounts          map[string]int `json:"null_counts"`
}

// Document returns the serialized shape of the metric.
func (m DataQualityMetric) Document() QualityDocument {
	nullCounts := m.NullCounts
	if nullCounts == nil {
		nullCounts = map[string]int{}
	}
	return QualityDocument{
		TableName:           m.TableName,
		TotalRows:           m.TotalRows,
		TotalColumns:        m.TotalColumns,
		DuplicateRows:       m.DuplicateRows,
		DuplicatePercentage: round2(m.DuplicatePercentage()),
		NullCounts:          nullCounts,
	}
}

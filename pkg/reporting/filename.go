package reporting

import (
	"fmt"

	"github.com/agentstation/utc"

	"github.com/agentstation/recon/pkg/results"
)

// timestampLayout is the filename timestamp format shared by both renderers.
const timestampLayout = "20060102_150405"

// Filename returns the report filename for a project, applied filters, and
// generation timestamp: recon_{project}{filterSuffix}_{YYYYMMDD_HHMMSS}.{ext}.
func Filename(project string, filters results.Filters, generatedAt utc.Time, ext string) string {
	return fmt.Sprintf("recon_%s%s_%s.%s",
		project, filters.Suffix(), generatedAt.Format(timestampLayout), ext)
}

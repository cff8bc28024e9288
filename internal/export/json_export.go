package export

import (
	"encoding/json"
	"io"

	"github.com/digitalnycagency/seo-audit-api/internal/entity"
)

// JSONExporter writes the report in the same shape the API returns.
type JSONExporter struct{}

func NewJSONExporter() Exporter {
	return &JSONExporter{}
}

func (e *JSONExporter) Export(w io.Writer, url string, report *entity.AuditReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(report)
}

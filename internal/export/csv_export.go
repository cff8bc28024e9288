package export

import (
	"io"

	"github.com/digitalnycagency/seo-audit-api/internal/entity"
	"github.com/gocarina/gocsv"
)

type CSVExporter struct{}

func NewCSVExporter() Exporter {
	return &CSVExporter{}
}

func (e *CSVExporter) Export(w io.Writer, url string, report *entity.AuditReport) error {
	rows := flatten(url, report)
	return gocsv.Marshal(&rows, w)
}

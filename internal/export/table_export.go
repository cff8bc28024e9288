package export

import (
	"io"

	"github.com/digitalnycagency/seo-audit-api/internal/entity"
	"github.com/rodaine/table"
)

type TableExporter struct{}

func NewTableExporter() Exporter {
	return &TableExporter{}
}

func (e *TableExporter) Export(w io.Writer, url string, report *entity.AuditReport) error {
	tbl := table.New("Field", "Value").WithWriter(w)
	for _, row := range flatten(url, report) {
		tbl.AddRow(row.Field, row.Value)
	}
	tbl.Print()
	return nil
}

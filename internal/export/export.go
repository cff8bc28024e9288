package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/digitalnycagency/seo-audit-api/internal/entity"
)

type Exporter interface {
	// Export writes the report for url to w
	Export(w io.Writer, url string, report *entity.AuditReport) error
}

// New returns the exporter for format: "json", "csv" or "table".
func New(format string) (Exporter, error) {
	switch format {
	case "json":
		return NewJSONExporter(), nil
	case "csv":
		return NewCSVExporter(), nil
	case "table":
		return NewTableExporter(), nil
	}
	return nil, fmt.Errorf("unknown export format %q", format)
}

// ReportRow is one field/value line of a flattened report. List fields
// produce one row per element.
type ReportRow struct {
	Field string `csv:"Field"`
	Value string `csv:"Value"`
}

func flatten(url string, report *entity.AuditReport) []ReportRow {
	rows := []ReportRow{
		{"url", url},
		{"title", report.Title},
		{"metaDescription", report.MetaDescription},
	}
	for _, h := range report.H1Tags {
		rows = append(rows, ReportRow{"h1Tags", h})
	}
	for _, l := range report.BrokenLinks {
		rows = append(rows, ReportRow{"brokenLinks", l})
	}
	rows = append(rows,
		ReportRow{"loadTime", strconv.FormatFloat(report.LoadTime, 'f', -1, 64)},
		ReportRow{"mobileFriendly", strconv.FormatBool(report.MobileFriendly)},
		ReportRow{"coreWebVitals.LCP", report.CoreWebVitals.LCP},
		ReportRow{"coreWebVitals.FID", report.CoreWebVitals.FID},
		ReportRow{"coreWebVitals.CLS", report.CoreWebVitals.CLS},
	)
	return rows
}

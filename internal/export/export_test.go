package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/digitalnycagency/seo-audit-api/internal/entity"
)

func sampleReport() *entity.AuditReport {
	return &entity.AuditReport{
		Title:           "Hi",
		MetaDescription: "D, with comma",
		H1Tags:          []string{"A", "B"},
		BrokenLinks:     []string{"https://example.com/x"},
		LoadTime:        0.125,
		MobileFriendly:  true,
		CoreWebVitals:   entity.PlaceholderVitals(),
	}
}

func TestNewUnknownFormat(t *testing.T) {
	if _, err := New("xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
	for _, f := range []string{"json", "csv", "table"} {
		if _, err := New(f); err != nil {
			t.Errorf("New(%q): %v", f, err)
		}
	}
}

func TestJSONExport(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONExporter().Export(&buf, "https://example.com", sampleReport()); err != nil {
		t.Fatalf("Export: %v", err)
	}
	var got entity.AuditReport
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got.Title != "Hi" || len(got.H1Tags) != 2 || !got.MobileFriendly {
		t.Errorf("unexpected report %+v", got)
	}
}

func TestCSVExport(t *testing.T) {
	var buf bytes.Buffer
	if err := NewCSVExporter().Export(&buf, "https://example.com", sampleReport()); err != nil {
		t.Fatalf("Export: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	if records[0][0] != "Field" || records[0][1] != "Value" {
		t.Errorf("unexpected header %v", records[0])
	}
	// header + url, title, description, 2 h1, 1 broken, loadTime, mobile, 3 vitals
	if len(records) != 13 {
		t.Fatalf("expected 13 records, got %d: %v", len(records), records)
	}
	if records[3][1] != "D, with comma" {
		t.Errorf("expected quoted description to survive, got %q", records[3][1])
	}
	if records[7][0] != "loadTime" || records[7][1] != "0.125" {
		t.Errorf("unexpected loadTime row %v", records[7])
	}
}

func TestTableExport(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTableExporter().Export(&buf, "https://example.com", sampleReport()); err != nil {
		t.Fatalf("Export: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Field", "https://example.com/x", "mobileFriendly", "true"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in table output:\n%s", want, out)
		}
	}
}

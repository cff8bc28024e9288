package usecase

import (
	"reflect"
	"testing"
)

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{"present", `<html><head><title>Test Page</title></head></html>`, "Test Page"},
		{"missing", `<html><head></head><body><h1>x</h1></body></html>`, "Missing"},
		{"empty", `<title></title>`, ""},
		{"untrimmed", "<title>  Spaced \n</title>", "  Spaced \n"},
		{"first wins", `<title>One</title><title>Two</title>`, "One"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := extractPageMetadata([]byte(tt.html))
			if err != nil {
				t.Fatalf("extract: %v", err)
			}
			if data.Title != tt.want {
				t.Errorf("expected title %q, got %q", tt.want, data.Title)
			}
		})
	}
}

func TestExtractMetaDescription(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{"present", `<meta name="description" content="Exact content, kept as is ">`, "Exact content, kept as is "},
		{"missing", `<meta name="keywords" content="a,b">`, "Missing"},
		{"no content attribute", `<meta name="description">`, "Missing"},
		{"name is case sensitive", `<meta name="Description" content="D">`, "Missing"},
		{"empty content", `<meta name="description" content="">`, ""},
		{"first match", `<meta name="description" content="A"><meta name="description" content="B">`, "A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := extractPageMetadata([]byte(tt.html))
			if err != nil {
				t.Fatalf("extract: %v", err)
			}
			if data.MetaDescription != tt.want {
				t.Errorf("expected description %q, got %q", tt.want, data.MetaDescription)
			}
		})
	}
}

func TestExtractHeadings(t *testing.T) {
	html := `<body><h1>  First </h1><h2>Sub</h2><div><h1>Second<span> part</span></h1></div></body>`
	data, err := extractPageMetadata([]byte(html))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	want := []string{"First", "Second part"}
	if !reflect.DeepEqual(data.H1Tags, want) {
		t.Errorf("expected %v, got %v", want, data.H1Tags)
	}

	data, _ = extractPageMetadata([]byte(`<p>no headings</p>`))
	if data.H1Tags == nil || len(data.H1Tags) != 0 {
		t.Errorf("expected empty non-nil heading list, got %#v", data.H1Tags)
	}
}

func TestExtractViewport(t *testing.T) {
	data, _ := extractPageMetadata([]byte(`<meta name="viewport" content="width=device-width">`))
	if !data.MobileFriendly {
		t.Error("expected viewport meta to mark page mobile friendly")
	}

	data, _ = extractPageMetadata([]byte(`<meta name="viewport">`))
	if !data.MobileFriendly {
		t.Error("viewport content is not validated")
	}

	data, _ = extractPageMetadata([]byte(`<meta name="description" content="x">`))
	if data.MobileFriendly {
		t.Error("expected page without viewport meta to be not mobile friendly")
	}
}

func TestExtractHrefs(t *testing.T) {
	html := `<a href="/x">x</a><a name="anchor">no href</a><a href="mailto:a@b.c">m</a><a href="">empty</a><a href=" /y ">y</a>`
	data, err := extractPageMetadata([]byte(html))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	want := []string{"/x", "mailto:a@b.c", "", "/y"}
	if !reflect.DeepEqual(data.Hrefs, want) {
		t.Errorf("expected %v, got %v", want, data.Hrefs)
	}
}

package usecase

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/digitalnycagency/seo-audit-api/internal/entity"
)

// pageMetadata holds the SEO elements read from a document.
type pageMetadata struct {
	Title           string
	MetaDescription string
	H1Tags          []string
	MobileFriendly  bool
	Hrefs           []string // raw href values of anchors, document order
}

// extractPageMetadata parses an HTML document and extracts its SEO elements.
func extractPageMetadata(body []byte) (*pageMetadata, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	data := &pageMetadata{
		Title:           entity.Missing,
		MetaDescription: entity.Missing,
		H1Tags:          []string{},
		Hrefs:           []string{},
	}

	if title := doc.Find("title").First(); title.Length() > 0 {
		data.Title = title.Text()
	}

	// Attribute selectors compare values case-sensitively.
	if content, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		data.MetaDescription = content
	}

	data.MobileFriendly = doc.Find(`meta[name="viewport"]`).Length() > 0

	doc.Find("h1").Each(func(i int, s *goquery.Selection) {
		data.H1Tags = append(data.H1Tags, strings.TrimSpace(s.Text()))
	})

	doc.Find("a[href]").Each(func(i int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		data.Hrefs = append(data.Hrefs, strings.TrimSpace(href))
	})

	return data, nil
}

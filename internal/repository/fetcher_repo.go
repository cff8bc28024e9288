package repository

import (
	"context"

	"github.com/digitalnycagency/seo-audit-api/internal/entity"
)

// PageFetcher defines the contract for retrieving the page under audit.
type PageFetcher interface {
	// Fetch performs a GET for url. Any failure is returned as *entity.FetchError.
	Fetch(ctx context.Context, url string) (*entity.Page, error)
}

// LinkChecker defines the contract for probing an outbound link.
type LinkChecker interface {
	// Check never fails; network errors are reported as a broken link.
	Check(ctx context.Context, url string) entity.LinkCheck
}

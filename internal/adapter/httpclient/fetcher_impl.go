package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptrace"
	"time"

	"github.com/digitalnycagency/seo-audit-api/internal/entity"
)

// maxPageBytes caps how much of a page body is read for parsing. Larger
// pages are cut and flagged as truncated.
const maxPageBytes = 20 << 20

// PageFetcher retrieves pages over plain HTTP. JavaScript is not executed.
type PageFetcher struct {
	client    *http.Client
	userAgent string
	maxBytes  int64
}

// NewPageFetcher creates a fetcher that identifies itself with userAgent.
// A zero timeout leaves the fetch unbounded.
func NewPageFetcher(userAgent string, timeout time.Duration) *PageFetcher {
	return &PageFetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
		maxBytes:  maxPageBytes,
	}
}

// Fetch issues one GET for url. Transport failures and 4xx/5xx responses are
// returned as *entity.FetchError.
func (f *PageFetcher) Fetch(ctx context.Context, url string) (*entity.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &entity.FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)

	// The clock restarts on every hop so redirects are not counted.
	var start time.Time
	trace := &httptrace.ClientTrace{
		GetConn: func(string) { start = time.Now() },
	}
	req = req.WithContext(httptrace.WithClientTrace(req.Context(), trace))

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &entity.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()
	elapsed := time.Since(start)

	finalURL := resp.Request.URL.String()
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &entity.FetchError{URL: finalURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, &entity.FetchError{URL: finalURL, Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	truncated := int64(len(body)) > f.maxBytes
	if truncated {
		body = body[:f.maxBytes]
	}

	return &entity.Page{
		URL:        finalURL,
		Body:       body,
		StatusCode: resp.StatusCode,
		Elapsed:    elapsed,
		Truncated:  truncated,
	}, nil
}

package httpclient

import (
	"context"
	"net/http"
	"time"

	"github.com/digitalnycagency/seo-audit-api/internal/entity"
)

// LinkChecker probes outbound links with HEAD requests, following redirects.
type LinkChecker struct {
	client *http.Client
}

func NewLinkChecker(timeout time.Duration) *LinkChecker {
	return &LinkChecker{client: &http.Client{Timeout: timeout}}
}

// Check reports url as broken when the final status is >= 400 or the request
// fails at the network level. Servers that refuse HEAD are retried with GET.
func (c *LinkChecker) Check(ctx context.Context, url string) entity.LinkCheck {
	status, err := c.probe(ctx, http.MethodHead, url)
	if err == nil && (status == http.StatusMethodNotAllowed || status == http.StatusNotImplemented) {
		status, err = c.probe(ctx, http.MethodGet, url)
	}
	if err != nil {
		return entity.LinkCheck{URL: url, Broken: true, Err: err}
	}
	return entity.LinkCheck{
		URL:        url,
		StatusCode: status,
		Broken:     status >= http.StatusBadRequest,
	}
}

func (c *LinkChecker) probe(ctx context.Context, method, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}

package entity

import (
	"fmt"
	"net/http"
	"time"
)

// Page is a successfully fetched document.
type Page struct {
	URL        string
	Body       []byte
	StatusCode int
	Elapsed    time.Duration // last request sent until its response headers received
	Truncated  bool          // body exceeded the fetcher's size cap
}

// FetchError reports a page that could not be fetched: a transport failure
// (Err set) or a non-success status (StatusCode set).
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode == 0 {
		if e.Err == nil {
			return "failed to fetch " + e.URL
		}
		return e.Err.Error()
	}

	kind := "Client"
	if e.StatusCode >= 500 {
		kind = "Server"
	}
	return fmt.Sprintf("%d %s Error: %s for url: %s", e.StatusCode, kind, http.StatusText(e.StatusCode), e.URL)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// LinkCheck is the outcome of probing one outbound link.
type LinkCheck struct {
	URL        string
	StatusCode int
	Broken     bool
	Err        error
}

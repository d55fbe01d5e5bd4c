// Package http provides the HTTP service surface for job extraction and an
// HTTP-based implementation of jobpost.Fetcher for posting pages submitted
// by URL.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/jobpost"
)

// DefaultFetchTimeout is the default timeout for fetch requests.
const DefaultFetchTimeout = 10 * time.Second

// maxFetchBytes bounds the response body read from a posting page.
const maxFetchBytes = 5 << 20

// Ensure Fetcher implements jobpost.Fetcher at compile time.
var _ jobpost.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves posting HTML using plain HTTP requests. JavaScript is
// not executed; pages that require rendering should be submitted as HTML
// instead.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithTimeout sets the timeout for fetch requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", jobpost.Errorf(jobpost.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", jobpost.Errorf(jobpost.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", jobpost.Errorf(jobpost.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
	if err != nil {
		return "", jobpost.Errorf(jobpost.EUNAVAILABLE, "read %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

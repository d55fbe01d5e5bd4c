package jobpost

import "context"

// Fetcher retrieves HTML content from a URL so that posting pages can be
// submitted by address rather than by pasted markup.
type Fetcher interface {
	// Fetch retrieves the page at url. The context controls timeout and
	// cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

package jobpost

// Metadata is the machine-readable bundle isolated from raw HTML markup:
// meta tags, the document title, canonical link markers, and JSON-LD
// JobPosting blocks. All fields use empty string as the "not found"
// sentinel.
type Metadata struct {
	Title       string
	Company     string
	Location    string
	Description string
	URL         string
}

// NormalizeResult holds the two views a Normalizer produces from HTML
// content: the plain-text rendering and the metadata bundle.
type NormalizeResult struct {
	Text string
	Meta Metadata
}

// Normalizer strips HTML markup to plain text and isolates metadata fields.
// Implementations must be best-effort: malformed markup yields a degraded
// result, not a failure that blocks extraction.
type Normalizer interface {
	Normalize(content string) (*NormalizeResult, error)
}

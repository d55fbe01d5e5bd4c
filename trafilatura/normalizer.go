// Package trafilatura provides an alternative jobpost.Normalizer built on
// go-trafilatura's boilerplate removal. Compared to the goquery normalizer
// it trades exhaustive meta-tag coverage for a cleaner text body on pages
// with heavy navigation chrome.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/jobpost"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Normalizer implements jobpost.Normalizer at compile time.
var _ jobpost.Normalizer = (*Normalizer)(nil)

// Normalizer extracts the main content of a posting page with trafilatura
// and renders it as plain text through the injected converter.
type Normalizer struct {
	converter jobpost.Converter
	fallback  jobpost.Normalizer
}

// NewNormalizer creates a new Normalizer. The fallback handles pages
// trafilatura cannot make sense of and may be nil, in which case the raw
// input is used as the text rendering.
func NewNormalizer(converter jobpost.Converter, fallback jobpost.Normalizer) *Normalizer {
	return &Normalizer{converter: converter, fallback: fallback}
}

// Normalize produces the plain-text rendering and metadata bundle.
func (n *Normalizer) Normalize(content string) (*jobpost.NormalizeResult, error) {
	if strings.TrimSpace(content) == "" {
		return &jobpost.NormalizeResult{}, nil
	}

	result, err := trafilatura.Extract(strings.NewReader(content), trafilatura.Options{
		EnableFallback: true,
	})
	if err != nil {
		return n.degrade(content)
	}

	meta := jobpost.Metadata{
		Title:       result.Metadata.Title,
		Company:     result.Metadata.Sitename,
		Description: result.Metadata.Description,
		URL:         result.Metadata.URL,
	}

	var text string
	if result.ContentNode != nil {
		if rendered, err := renderNode(result.ContentNode); err == nil {
			if n.converter != nil {
				if converted, err := n.converter.Convert(rendered); err == nil {
					text = converted
				}
			}
			if text == "" {
				text = nodeText(result.ContentNode)
			}
		}
	}
	if text == "" {
		res, err := n.degrade(content)
		if err == nil && res != nil {
			// Keep trafilatura's metadata; only the text rendering degraded.
			if res.Meta == (jobpost.Metadata{}) {
				res.Meta = meta
			}
			return res, nil
		}
		return &jobpost.NormalizeResult{Text: content, Meta: meta}, nil
	}

	return &jobpost.NormalizeResult{Text: text, Meta: meta}, nil
}

func (n *Normalizer) degrade(content string) (*jobpost.NormalizeResult, error) {
	if n.fallback != nil {
		return n.fallback.Normalize(content)
	}
	return &jobpost.NormalizeResult{Text: content}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(node *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// nodeText collects the text content of a node tree, one line per text
// node, as a last resort when Markdown conversion fails.
func nodeText(node *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(node)
	return strings.Join(parts, "\n")
}

// Package goquery provides the default HTML implementation of
// jobpost.Normalizer: a plain-text rendering with scripts and styles
// stripped, plus the metadata bundle read from meta tags, link markers, and
// JSON-LD JobPosting blocks.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobpost"
)

// Ensure Normalizer implements jobpost.Normalizer at compile time.
var _ jobpost.Normalizer = (*Normalizer)(nil)

// Normalizer strips markup with goquery.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

var blankLinesRe = regexp.MustCompile(`\n[ \t]*\n(?:[ \t]*\n)+`)

// Normalize produces the plain-text rendering and metadata bundle for raw
// HTML. Malformed markup yields the input as text with empty metadata
// rather than an error; the only error path is a parser-level failure.
func (n *Normalizer) Normalize(content string) (*jobpost.NormalizeResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		// Degrade to treating the content as text.
		return &jobpost.NormalizeResult{Text: content}, nil
	}

	meta := extractMetadata(doc)

	doc.Find("script, style, noscript").Remove()
	text := flattenText(doc.Text())
	if text == "" {
		text = content
	}

	return &jobpost.NormalizeResult{Text: text, Meta: meta}, nil
}

// flattenText trims every line, splits multi-headline runs on double
// spaces, drops blanks, and squashes repeated blank lines.
func flattenText(raw string) string {
	var chunks []string
	for _, line := range strings.Split(raw, "\n") {
		for _, phrase := range strings.Split(strings.TrimSpace(line), "  ") {
			if phrase = strings.TrimSpace(phrase); phrase != "" {
				chunks = append(chunks, phrase)
			}
		}
	}
	text := strings.Join(chunks, "\n")
	return blankLinesRe.ReplaceAllString(text, "\n\n")
}

// extractMetadata reads the job-related metadata bundle. Meta tags win over
// JSON-LD; JSON-LD fills whatever the tags left empty.
func extractMetadata(doc *goquery.Document) jobpost.Metadata {
	meta := jobpost.Metadata{
		Title:       firstContent(doc, `meta[property="og:title"]`, "<title>"),
		Company:     firstContent(doc, `meta[name="company"]`, `meta[property="og:site_name"]`),
		Location:    firstContent(doc, `meta[name="location"]`, `meta[name="geo.placename"]`),
		Description: firstContent(doc, `meta[name="description"]`, `meta[property="og:description"]`),
		URL:         extractURL(doc),
	}

	if posting := findJobPosting(doc); posting != nil {
		if meta.Title == "" {
			meta.Title = posting.Title
		}
		if meta.Company == "" {
			meta.Company = posting.Company
		}
		if meta.Location == "" {
			meta.Location = posting.Location
		}
		if meta.Description == "" {
			meta.Description = posting.Description
		}
		if meta.URL == "" {
			meta.URL = posting.URL
		}
	}

	return meta
}

// firstContent returns the first non-empty content attribute among the
// given selectors. The "<title>" pseudo-selector reads the document title
// element text instead.
func firstContent(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if sel == "<title>" {
			if title := cleanValue(doc.Find("title").First().Text()); title != "" {
				return title
			}
			continue
		}
		if content, ok := doc.Find(sel).First().Attr("content"); ok {
			if content = cleanValue(content); content != "" {
				return content
			}
		}
	}
	return ""
}

// extractURL finds the canonical URL of the posting page, falling back
// through og:url, a url meta tag, and the base element.
func extractURL(doc *goquery.Document) string {
	if href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok && href != "" {
		return strings.TrimSpace(href)
	}
	if content, ok := doc.Find(`meta[property="og:url"]`).First().Attr("content"); ok && content != "" {
		return strings.TrimSpace(content)
	}
	if content, ok := doc.Find(`meta[name="url"]`).First().Attr("content"); ok && content != "" {
		return strings.TrimSpace(content)
	}
	if href, ok := doc.Find(`base[href]`).First().Attr("href"); ok && href != "" {
		return strings.TrimSpace(href)
	}
	return ""
}

func cleanValue(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

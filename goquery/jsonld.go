package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// jobPosting is the subset of a schema.org JobPosting block used to enrich
// the metadata bundle.
type jobPosting struct {
	Title       string
	Company     string
	Location    string
	Description string
	URL         string
}

// findJobPosting returns the first JobPosting found in the document's
// JSON-LD script blocks, or nil. Blocks that fail to decode are skipped.
func findJobPosting(doc *goquery.Document) *jobPosting {
	var posting *jobPosting
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		data, err := decodeJSONLD(s.Text())
		if err != nil {
			return true
		}
		if p := postingFromValue(data); p != nil {
			posting = p
			return false
		}
		return true
	})
	return posting
}

func decodeJSONLD(raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "<!--")
	raw = strings.TrimSuffix(raw, "-->")
	raw = strings.TrimSpace(raw)
	raw = strings.ReplaceAll(raw, " ", "")
	raw = strings.ReplaceAll(raw, " ", "")

	var data any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, err
	}
	return data, nil
}

// postingFromValue walks a decoded JSON-LD value looking for a JobPosting
// node, descending through arrays, @graph, and mainEntity wrappers.
func postingFromValue(data any) *jobPosting {
	switch value := data.(type) {
	case []any:
		for _, item := range value {
			if p := postingFromValue(item); p != nil {
				return p
			}
		}
	case map[string]any:
		if typ := strings.ToLower(stringValue(value["@type"], value["type"])); typ == "jobposting" {
			return postingFromMap(value)
		}
		if graph, ok := value["@graph"]; ok {
			if p := postingFromValue(graph); p != nil {
				return p
			}
		}
		if main, ok := value["mainEntity"]; ok {
			if p := postingFromValue(main); p != nil {
				return p
			}
		}
	}
	return nil
}

func postingFromMap(value map[string]any) *jobPosting {
	return &jobPosting{
		Title:       stringValue(value["title"], value["name"]),
		Company:     stringValue(mapValue(value["hiringOrganization"], "name")),
		Location:    locationFromValue(value["jobLocation"]),
		Description: cleanValue(stringValue(value["description"])),
		URL:         stringValue(value["url"], value["@id"]),
	}
}

// locationFromValue renders a JobPosting jobLocation, which may be a
// string, a Place with an address, or a list of either.
func locationFromValue(value any) string {
	switch v := value.(type) {
	case []any:
		var parts []string
		for _, item := range v {
			if loc := locationFromValue(item); loc != "" {
				parts = append(parts, loc)
			}
		}
		return strings.Join(parts, "; ")
	case map[string]any:
		if address, ok := v["address"].(map[string]any); ok {
			return joinAddress(address)
		}
		return joinAddress(v)
	case string:
		return strings.TrimSpace(v)
	}
	return ""
}

func joinAddress(value map[string]any) string {
	parts := []string{
		stringValue(value["addressLocality"]),
		stringValue(value["addressRegion"]),
		stringValue(value["addressCountry"]),
	}
	var cleaned []string
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			cleaned = append(cleaned, part)
		}
	}
	return strings.Join(cleaned, ", ")
}

// stringValue returns the first value that renders as a non-empty string.
// Maps contribute their "name" member, matching schema.org conventions.
func stringValue(values ...any) string {
	for _, value := range values {
		switch v := value.(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case map[string]any:
			if name := stringValue(v["name"]); name != "" {
				return name
			}
		}
	}
	return ""
}

func mapValue(value any, key string) any {
	m, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	return m[key]
}

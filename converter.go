package jobpost

// Converter renders clean HTML (e.g., a boilerplate-stripped content node)
// as readable plain text. Markdown-flavored output is acceptable; the field
// extractors operate line-wise and tolerate light markup.
type Converter interface {
	Convert(html string) (string, error)
}

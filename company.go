package jobpost

import (
	"regexp"
	"strings"
)

var companyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:company|organization|employer)[ \t:]+([A-Za-z0-9 \t\-&.]+?)(?:\n|\.|,)`),
	regexp.MustCompile(`(?i)(?:at|with|for|by)\s+([A-Za-z0-9 \t\-&.]+?)(?:\s+is|\s+are|\s+has|\s+have|\n|\.|,)`),
	regexp.MustCompile(`(?i)about\s+([A-Za-z0-9 \t\-&.]+?)(?:\n|\.|,|:)`),
}

var companyStopwords = regexp.MustCompile(`(?i)\b(the|a|an|is|are|we|our|this|that)\b`)

// Legal suffixes that mark a company name in running prose.
var companyIndicators = []string{"Inc", "LLC", "Ltd", "Limited", "Corporation", "Corp", "GmbH"}

// ExtractCompany returns the company name detected in text, or "" when none
// is found. There is deliberately no free-text fallback beyond legal-suffix
// detection in the opening paragraph; guessing a company is worse than
// leaving it empty.
func ExtractCompany(text string) string {
	for _, re := range companyPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		company := strings.TrimSpace(companyStopwords.ReplaceAllString(m[1], ""))
		company = strings.Join(strings.Fields(company), " ")
		if len(company) > 3 && len(company) < 50 {
			return company
		}
	}

	// Look for a legal suffix in the first paragraph.
	first := text
	if idx := strings.Index(text, "\n\n"); idx >= 0 {
		first = text[:idx]
	} else if idx := strings.Index(text, "\n"); idx >= 0 {
		first = text[:idx]
	}
	for _, indicator := range companyIndicators {
		if !strings.Contains(first, indicator) {
			continue
		}
		re, err := regexp.Compile(`([A-Za-z0-9 \t\-&.]+` + regexp.QuoteMeta(indicator) + `)`)
		if err != nil {
			continue
		}
		if m := re.FindStringSubmatch(first); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	return ""
}

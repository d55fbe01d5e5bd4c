package jobpost

import (
	"regexp"
	"strings"
)

// Section headers that open the description body, in precedence order.
var descriptionHeaders = []string{
	"job description", "about the role", "about the job",
	"position overview", "position description", "role details",
	"what you'll do", "responsibilities", "duties",
	"about the position", "the role",
}

// Section headers that usually follow the description body.
var descriptionEndMarkers = []string{
	"requirements", "qualifications", "skills required",
	"what you'll need", "about the company", "benefits",
	"about us", "who you are", "how to apply", "education",
	"experience required", "key skills", "desired skills",
	"application process", "apply now",
}

var (
	descriptionHeaderRes = buildHeaderRegexps(descriptionHeaders, `\b`, `(?:s)?[ \t:]*\n?`)
	descriptionEndRes    = buildHeaderRegexps(descriptionEndMarkers, `\n\s*`, `(?:s)?[ \t:]*\n?`)
	blankLineRe          = regexp.MustCompile(`\n[ \t]*\n`)
	manyNewlinesRe       = regexp.MustCompile(`\n{3,}`)
)

func buildHeaderRegexps(headers []string, prefix, suffix string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(headers))
	for _, h := range headers {
		res = append(res, regexp.MustCompile(`(?i)`+prefix+regexp.QuoteMeta(h)+suffix))
	}
	return res
}

// ExtractDescription returns the description section of a posting. When no
// recognizable section header exists the full input text is the fallback;
// length bounding happens later in validation, not here.
func ExtractDescription(text string) string {
	description := text

	start := -1
	for _, re := range descriptionHeaderRes {
		if loc := re.FindStringIndex(text); loc != nil {
			start = loc[0]
			break
		}
	}

	if start != -1 {
		description = strings.TrimSpace(text[start:])

		// Cut at the earliest following section marker.
		end := len(description)
		for _, re := range descriptionEndRes {
			if loc := re.FindStringIndex(description); loc != nil && loc[0] < end {
				end = loc[0]
			}
		}
		if end < len(description) {
			description = strings.TrimSpace(description[:end])
		}
	}

	description = blankLineRe.ReplaceAllString(description, "\n\n")
	description = manyNewlinesRe.ReplaceAllString(description, "\n\n")
	return description
}

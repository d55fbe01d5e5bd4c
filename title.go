package jobpost

import (
	"regexp"
	"strings"
)

// Labeled-line patterns have the highest precedence. Order matters: the
// first pattern that yields a plausible title wins.
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:job title|position|role|job)[ \t:]+([A-Za-z0-9 \t\-&/(),.]+?)(?:\n|\.|,)`),
	regexp.MustCompile(`(?i)hiring[ \t:]*(?:a|an)?[ \t:]*([A-Za-z0-9 \t\-&/()]+?)(?:\n|\.|,)`),
	regexp.MustCompile(`(?i)([A-Za-z0-9 \t\-&/()]+?)[ \t]+(?:position|job|role)[ \t]+`),
}

var (
	titleLeadingNoise   = regexp.MustCompile(`(?i)^\s*(?:for|the|a|an)\s+`)
	titleLineExclusions = regexp.MustCompile(`(?i)(apply|about|company|www|http|location)`)
	titleLineKeywords   = regexp.MustCompile(`(?i)(?:developer|engineer|manager|analyst|designer|specialist|coordinator)\b`)
)

// ExtractTitle returns the job title detected in text, or "" when no
// plausible candidate is found. Explicit "Job Title:"/"Position:" labels win
// over the fallback scan of the leading lines.
func ExtractTitle(text string) string {
	for _, re := range titlePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		title := strings.TrimSpace(m[1])
		if len(title) > 3 && len(title) < 100 {
			return strings.TrimSpace(titleLeadingNoise.ReplaceAllString(title, ""))
		}
	}

	// Fallback: a short leading line that names a recognizable role.
	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) <= 10 || len(line) >= 100 {
			continue
		}
		if titleLineExclusions.MatchString(line) {
			continue
		}
		if titleLineKeywords.MatchString(line) {
			return line
		}
	}

	return ""
}

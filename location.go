package jobpost

import (
	"regexp"
	"strings"
)

// Remote cues are checked first; they are more reliable than any city match.
var remotePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:fully[\s-]+remote|100%[\s-]+remote)\b`),
	regexp.MustCompile(`(?i)\bremote(?:\s+(?:position|job|work|opportunity))?\b`),
	regexp.MustCompile(`(?i)\b(?:work[\s-]+from[\s-]+home|wfh)\b`),
}

var hybridPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bhybrid(?:\s+(?:position|job|work|opportunity))?\b`),
	regexp.MustCompile(`(?i)\b(?:remote/on[\s-]*site|on[\s-]*site/remote)\b`),
	regexp.MustCompile(`(?i)\b(?:partially[\s-]+remote|work[\s-]+from[\s-]+home[\s-]+part[\s-]+time)\b`),
}

var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:location|place|based\s+in|located\s+in|position\s+is\s+in)[ \t:]+([A-Za-z0-9 \t\-,.]+?)(?:\n|\.|,)`),
	regexp.MustCompile(`(?i)\b(?:in|at)\s+([A-Za-z]+(?:\s*,\s*[A-Za-z]+)?)`),
	regexp.MustCompile(`(?i)([A-Za-z]+(?:\s*,\s*[A-Za-z]+)?)\s+office`),
}

var locationStopwords = regexp.MustCompile(`(?i)\b(the|a|an|is|are|we|our|this|that)\b`)

// ExtractLocation returns the job location detected in text. Remote and
// hybrid cues normalize to "Remote" and "Hybrid"; otherwise explicit
// location labels win over loose city patterns. Returns "" when nothing
// matches.
func ExtractLocation(text string) string {
	for _, re := range remotePatterns {
		if re.MatchString(text) {
			return "Remote"
		}
	}
	for _, re := range hybridPatterns {
		if re.MatchString(text) {
			return "Hybrid"
		}
	}

	for _, re := range locationPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		location := strings.TrimSpace(locationStopwords.ReplaceAllString(m[1], ""))
		location = strings.Join(strings.Fields(location), " ")
		if len(location) > 2 && len(location) < 50 {
			return location
		}
	}

	return ""
}

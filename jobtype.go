package jobpost

import (
	"regexp"
	"strings"
)

// jobTypeVocabulary maps each detectable job type to its cue keywords.
// Order is significant: full-time keywords are checked first so that e.g.
// "permanent part-time" classifies as full-time, matching the precedence of
// the labeled vocabulary.
var jobTypeVocabulary = []struct {
	jobType  string
	keywords []string
}{
	{"full-time", []string{"full time", "full-time", "permanent", "ft", "regular", "permanent role"}},
	{"part-time", []string{"part time", "part-time", "pt"}},
	{"contract", []string{"contract", "temporary", "temp", "fixed term", "fixed-term"}},
	{"internship", []string{"intern", "internship", "trainee", "training"}},
	{"freelance", []string{"freelance", "freelancer", "self-employed"}},
}

var jobTypeRegexps = buildJobTypeRegexps()

func buildJobTypeRegexps() []struct {
	jobType string
	res     []*regexp.Regexp
} {
	out := make([]struct {
		jobType string
		res     []*regexp.Regexp
	}, 0, len(jobTypeVocabulary))
	for _, entry := range jobTypeVocabulary {
		res := make([]*regexp.Regexp, 0, len(entry.keywords))
		for _, kw := range entry.keywords {
			res = append(res, regexp.MustCompile(`\b`+regexp.QuoteMeta(kw)+`\b`))
		}
		out = append(out, struct {
			jobType string
			res     []*regexp.Regexp
		}{entry.jobType, res})
	}
	return out
}

// ExtractJobType classifies the employment type from keyword cues.
// It never returns an empty string; DefaultJobType is the sentinel when no
// cue is present.
func ExtractJobType(text string) string {
	lower := strings.ToLower(text)
	for _, entry := range jobTypeRegexps {
		for _, re := range entry.res {
			if re.MatchString(lower) {
				return entry.jobType
			}
		}
	}
	return DefaultJobType
}

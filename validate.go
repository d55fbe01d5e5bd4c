package jobpost

import (
	"strings"
	"unicode/utf8"
)

const ellipsis = "..."

var remoteKeywords = []string{"remote", "work from home", "wfh"}

// Validate post-processes a merged record against the full plain text used
// for extraction: backfills a missing title from the first short line, caps
// the description, applies the job type default, detects a remote location
// from the raw text, and repairs inverted salary bounds. It never fails;
// the input record is not mutated.
func Validate(job *Job, fullText string) *Job {
	return validate(job, fullText, DefaultDescriptionCap)
}

func validate(job *Job, fullText string, descriptionCap int) *Job {
	out := job.Clone()
	if descriptionCap <= len(ellipsis) {
		descriptionCap = DefaultDescriptionCap
	}

	if out.Position == "" {
		if line := firstNonEmptyLine(fullText); line != "" && len(line) < 100 {
			out.Position = line
		}
	}
	if len(out.Position) > 100 {
		out.Position = truncate(out.Position, 100-len(ellipsis)) + ellipsis
	}

	if out.JobType == "" {
		out.JobType = DefaultJobType
	}

	if out.JobLocation == "" && containsAny(strings.ToLower(fullText), remoteKeywords) {
		out.JobLocation = "Remote"
	}

	// The full-text fallback path gets its own tighter bound so a
	// description that is just the verbatim input stays readable.
	if out.JobDescription == fullText && len(fullText) > fullTextThreshold {
		out.JobDescription = truncate(fullText, fullTextThreshold) + ellipsis
	}
	if len(out.JobDescription) > descriptionCap {
		out.JobDescription = truncate(out.JobDescription, descriptionCap-len(ellipsis)) + ellipsis
	}

	if out.Salary.Min > out.Salary.Max && out.Salary.Max != 0 {
		out.Salary.Min, out.Salary.Max = out.Salary.Max, out.Salary.Min
	}

	return out
}

// truncate cuts s to at most n bytes, backing up so a multi-byte rune is
// never split.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func firstNonEmptyLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

package jobpost

import "strings"

// mergeRule is one reconciliation step for a single field. Rules are pure:
// when reports whether the rule fires for the given pair, and take copies
// the winning value into dst. Within a field's list the first firing rule
// wins; when none fires the primary value stands.
type mergeRule struct {
	name string
	when func(primary, secondary *Job) bool
	take func(dst, primary, secondary *Job)
}

// The primary record comes from HTML-aware metadata plus HTML-context
// extraction; the secondary from plain-text-only extraction. Different
// fields have different reliability characteristics between the two, so the
// rules are asymmetric per field rather than a generic pick-non-empty merge.
var mergeRules = [][]mergeRule{
	{
		{
			name: "company/secondary-fills-empty",
			when: func(p, s *Job) bool { return p.Company == "" && s.Company != "" },
			take: func(d, _, s *Job) { d.Company = s.Company },
		},
	},
	{
		{
			name: "position/secondary-fills-empty",
			when: func(p, s *Job) bool { return p.Position == "" && s.Position != "" },
			take: func(d, _, s *Job) { d.Position = s.Position },
		},
	},
	{
		{
			name: "location/secondary-fills-empty",
			when: func(p, s *Job) bool { return p.JobLocation == "" && s.JobLocation != "" },
			take: func(d, _, s *Job) { d.JobLocation = s.JobLocation },
		},
		{
			// The primary tends to carry vague remote-ish metadata while the
			// text pass often finds the more specific variant. Secondary wins
			// only when it is strictly shorter, under 50 characters, and both
			// values are remote-equivalent.
			name: "location/prefer-specific-remote",
			when: func(p, s *Job) bool {
				return p.JobLocation != "" && s.JobLocation != "" &&
					remoteEquivalent(p.JobLocation) && remoteEquivalent(s.JobLocation) &&
					len(s.JobLocation) < len(p.JobLocation) && len(s.JobLocation) < 50
			},
			take: func(d, _, s *Job) { d.JobLocation = s.JobLocation },
		},
	},
	{
		{
			name: "jobtype/secondary-overrides-default",
			when: func(p, s *Job) bool {
				return p.JobType == DefaultJobType && s.JobType != "" && s.JobType != DefaultJobType
			},
			take: func(d, _, s *Job) { d.JobType = s.JobType },
		},
	},
	{
		{
			name: "salary/secondary-fills-zero",
			when: func(p, s *Job) bool { return p.Salary.IsZero() && !s.Salary.IsZero() },
			take: func(d, _, s *Job) { d.Salary = s.Salary },
		},
	},
	{
		{
			name: "description/secondary-fills-empty",
			when: func(p, s *Job) bool { return p.JobDescription == "" && s.JobDescription != "" },
			take: func(d, _, s *Job) { d.JobDescription = s.JobDescription },
		},
		{
			name: "description/secondary-substantially-longer",
			when: func(p, s *Job) bool {
				return float64(len(s.JobDescription)) > 1.5*float64(len(p.JobDescription))
			},
			take: func(d, _, s *Job) { d.JobDescription = s.JobDescription },
		},
	},
	{
		{
			name: "url/secondary-fills-empty",
			when: func(p, s *Job) bool { return p.JobURL == "" && s.JobURL != "" },
			take: func(d, _, s *Job) { d.JobURL = s.JobURL },
		},
	},
}

// Merge reconciles the primary and secondary extraction records into one.
// Rules are independent per field; neither input is mutated.
func Merge(primary, secondary *Job) *Job {
	merged := primary.Clone()
	for _, rules := range mergeRules {
		for _, rule := range rules {
			if rule.when(primary, secondary) {
				rule.take(merged, primary, secondary)
				break
			}
		}
	}
	return merged
}

func remoteEquivalent(location string) bool {
	return strings.Contains(strings.ToLower(location), "remote")
}

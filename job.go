package jobpost

// Defaults applied to a Job before any extraction has run. Empty strings are
// the "not detected" sentinel everywhere else; job type and currency carry
// real defaults instead.
const (
	DefaultJobType  = "full-time"
	DefaultCurrency = "INR"

	// DefaultDescriptionCap bounds jobDescription length in the final record.
	DefaultDescriptionCap = 5000

	// fullTextThreshold bounds the "description is the entire input" fallback
	// path independently of the configured cap.
	fullTextThreshold = 2000
)

// Salary holds the raw numeric bounds and currency code detected in a
// posting. No unit conversion is performed; per-hour and per-annum figures
// are stored as written.
type Salary struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// IsZero reports whether no numeric salary was detected.
func (s Salary) IsZero() bool {
	return s.Min == 0 && s.Max == 0
}

// Job is the structured record describing one job posting. All string fields
// are always present; empty string means "not detected". A Job has no
// identity of its own and is never persisted by the core.
type Job struct {
	Company        string `json:"company"`
	Position       string `json:"position"`
	JobType        string `json:"jobType"`
	JobLocation    string `json:"jobLocation"`
	JobDescription string `json:"jobDescription"`
	JobURL         string `json:"jobUrl"`
	Salary         Salary `json:"salary"`
}

// NewJob returns a Job with all sentinel defaults applied.
func NewJob() *Job {
	return &Job{
		JobType: DefaultJobType,
		Salary:  Salary{Currency: DefaultCurrency},
	}
}

// Clone returns a copy of the job. Merge and validation operate on copies so
// that a returned Job is never mutated after the fact.
func (j *Job) Clone() *Job {
	dup := *j
	return &dup
}

// Enhancement holds the optional LLM-derived augmentation of a Job. It is
// additive only; the producing collaborator treats the Job as read-only.
type Enhancement struct {
	Skills       []string `json:"skills"`
	Summary      string   `json:"summary"`
	Highlights   []string `json:"highlights"`
	Notes        string   `json:"notes"`
	QualityScore float64  `json:"quality_score"`
}

package jobpost

// Extractor is the core entry point consumed by the surrounding service
// layer. Extract is deterministic for identical input, safe for concurrent
// use, and never fails: malformed input degrades to a partial record.
type Extractor interface {
	Extract(content string, isHTML bool) *Job
}

// Config holds the static knobs that influence extraction output.
type Config struct {
	// DescriptionCap bounds jobDescription length in the final record.
	// Zero means DefaultDescriptionCap.
	DescriptionCap int

	// DefaultCurrency is the salary currency code used when none is
	// detected. Empty means DefaultCurrency.
	DefaultCurrency string
}

func (c Config) descriptionCap() int {
	// A cap that cannot fit the ellipsis marker is treated as unset.
	if c.DescriptionCap <= len(ellipsis) {
		return DefaultDescriptionCap
	}
	return c.DescriptionCap
}

func (c Config) defaultCurrency() string {
	if c.DefaultCurrency == "" {
		return DefaultCurrency
	}
	return c.DefaultCurrency
}

// Ensure Pipeline implements Extractor at compile time.
var _ Extractor = (*Pipeline)(nil)

// Pipeline runs the multi-source extraction flow: normalize, extract per
// source, merge, validate. The zero value is not usable; Normalizer must be
// set for HTML input.
type Pipeline struct {
	// Normalizer produces the plain-text rendering and metadata bundle for
	// HTML content. Required when Extract is called with isHTML=true.
	Normalizer Normalizer

	// Config holds static extraction settings. The zero value applies all
	// defaults.
	Config Config
}

// Extract processes posting content and returns the structured record.
// For HTML input two partial records are produced (metadata-derived primary,
// plain-text-derived secondary) and reconciled; plain text input runs a
// single extraction pass and skips the merge entirely.
func (p *Pipeline) Extract(content string, isHTML bool) (job *Job) {
	text := content

	// The pipeline must never surface a failure for malformed input. If
	// anything gets past the per-stage recovery below, return the best
	// effort record with the description backfilled from the raw text.
	defer func() {
		if r := recover(); r != nil {
			if job == nil {
				job = p.newJob()
			}
			if job.JobDescription == "" {
				job.JobDescription = rawTextPrefix(text)
			}
		}
	}()

	if !isHTML {
		primary := p.runExtractors(text)
		return validate(primary, text, p.Config.descriptionCap())
	}

	res := p.normalize(content)
	text = res.Text

	primary := p.newJob()
	primary.Position = res.Meta.Title
	primary.Company = res.Meta.Company
	primary.JobLocation = res.Meta.Location
	primary.JobDescription = res.Meta.Description
	primary.JobURL = res.Meta.URL

	secondary := p.runExtractors(text)

	merged := Merge(primary, secondary)
	return validate(merged, text, p.Config.descriptionCap())
}

// normalize degrades to treating the content as already-plain text when the
// normalizer fails or is missing.
func (p *Pipeline) normalize(content string) *NormalizeResult {
	if p.Normalizer == nil {
		return &NormalizeResult{Text: content}
	}
	res, err := p.Normalizer.Normalize(content)
	if err != nil || res == nil {
		return &NormalizeResult{Text: content}
	}
	return res
}

// runExtractors applies every field extractor to a single text blob. Each
// extractor recovers locally so one failing heuristic never blocks the
// others.
func (p *Pipeline) runExtractors(text string) *Job {
	job := p.newJob()
	recovered(func() { job.Position = ExtractTitle(text) })
	recovered(func() { job.Company = ExtractCompany(text) })
	recovered(func() { job.JobLocation = ExtractLocation(text) })
	recovered(func() { job.JobType = ExtractJobType(text) })
	recovered(func() { job.Salary = extractSalary(text, p.Config.defaultCurrency()) })
	recovered(func() { job.JobDescription = ExtractDescription(text) })
	return job
}

func (p *Pipeline) newJob() *Job {
	return &Job{
		JobType: DefaultJobType,
		Salary:  Salary{Currency: p.Config.defaultCurrency()},
	}
}

func recovered(fn func()) {
	defer func() { _ = recover() }()
	fn()
}

func rawTextPrefix(text string) string {
	return truncate(text, 1000)
}

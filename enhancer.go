package jobpost

import "context"

// Enhancer augments a Job with LLM-derived fields. Implementations treat
// the Job as read-only input and are never required for the core pipeline
// to produce a valid result.
type Enhancer interface {
	Enhance(ctx context.Context, job *Job) (*Enhancement, error)
}

package jobpost

import "context"

// ResultCache memoizes extraction results keyed by a content hash. The core
// pipeline never touches a cache; memoization is the surrounding service
// layer's concern, which is why the cache is an injectable interface rather
// than a decorator baked into Extract.
type ResultCache interface {
	// Get returns the cached Job for key, with ok=false on a miss.
	Get(ctx context.Context, key string) (job *Job, ok bool, err error)

	// Put stores the Job under key, evicting older entries as needed.
	Put(ctx context.Context, key string, job *Job) error
}

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/fwojciec/jobpost"
	"github.com/fwojciec/jobpost/bloom"
)

// Ensure ResultCache implements jobpost.ResultCache at compile time.
var _ jobpost.ResultCache = (*ResultCache)(nil)

// ResultCache stores extraction results keyed by content hash. A Bloom
// filter seeded from the existing keys guards reads, so the common
// never-seen-before case skips the database entirely.
type ResultCache struct {
	db     *DB
	filter *bloom.Filter
}

// NewResultCache creates a ResultCache over an open database and seeds the
// Bloom filter from the stored keys.
func NewResultCache(ctx context.Context, db *DB) (*ResultCache, error) {
	c := &ResultCache{
		db:     db,
		filter: bloom.NewFilter(100000, 0.01),
	}

	rows, err := db.QueryContext(ctx, `SELECT key FROM extraction_results`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		c.filter.Add(key)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return c, nil
}

// Get returns the cached Job for key.
func (c *ResultCache) Get(ctx context.Context, key string) (*jobpost.Job, bool, error) {
	if !c.filter.Test(key) {
		return nil, false, nil
	}

	var raw string
	err := c.db.QueryRowContext(ctx,
		`SELECT job FROM extraction_results WHERE key = ?`, key,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		// Bloom false positive.
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var job jobpost.Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		return nil, false, jobpost.Errorf(jobpost.EINTERNAL, "corrupt cached result for key %q: %v", key, err)
	}
	return &job, true, nil
}

// Put stores the Job under key, replacing any previous entry.
func (c *ResultCache) Put(ctx context.Context, key string, job *jobpost.Job) error {
	if job == nil {
		return jobpost.Errorf(jobpost.EINVALID, "nil job")
	}

	raw, err := json.Marshal(job)
	if err != nil {
		return err
	}

	_, err = c.db.ExecContext(ctx,
		`INSERT INTO extraction_results (key, job) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET job = excluded.job`,
		key, string(raw),
	)
	if err != nil {
		return err
	}
	c.filter.Add(key)
	return nil
}

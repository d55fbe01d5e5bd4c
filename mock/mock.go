// Package mock provides function-field mock implementations of jobpost
// interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/jobpost"
)

var _ jobpost.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of jobpost.Normalizer.
type Normalizer struct {
	NormalizeFn func(content string) (*jobpost.NormalizeResult, error)
}

func (n *Normalizer) Normalize(content string) (*jobpost.NormalizeResult, error) {
	return n.NormalizeFn(content)
}

var _ jobpost.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of jobpost.Extractor.
type Extractor struct {
	ExtractFn func(content string, isHTML bool) *jobpost.Job
}

func (e *Extractor) Extract(content string, isHTML bool) *jobpost.Job {
	return e.ExtractFn(content, isHTML)
}

var _ jobpost.Enhancer = (*Enhancer)(nil)

// Enhancer is a mock implementation of jobpost.Enhancer.
type Enhancer struct {
	EnhanceFn func(ctx context.Context, job *jobpost.Job) (*jobpost.Enhancement, error)
}

func (e *Enhancer) Enhance(ctx context.Context, job *jobpost.Job) (*jobpost.Enhancement, error) {
	return e.EnhanceFn(ctx, job)
}

var _ jobpost.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of jobpost.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ jobpost.ResultCache = (*ResultCache)(nil)

// ResultCache is a mock implementation of jobpost.ResultCache.
type ResultCache struct {
	GetFn func(ctx context.Context, key string) (*jobpost.Job, bool, error)
	PutFn func(ctx context.Context, key string, job *jobpost.Job) error
}

func (c *ResultCache) Get(ctx context.Context, key string) (*jobpost.Job, bool, error) {
	return c.GetFn(ctx, key)
}

func (c *ResultCache) Put(ctx context.Context, key string, job *jobpost.Job) error {
	return c.PutFn(ctx, key, job)
}

var _ jobpost.Converter = (*Converter)(nil)

// Converter is a mock implementation of jobpost.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

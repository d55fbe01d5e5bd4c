package main

import (
	"time"

	"github.com/fwojciec/jobpost"
	"github.com/fwojciec/jobpost/cache"
	jobhttp "github.com/fwojciec/jobpost/http"
	jobslog "github.com/fwojciec/jobpost/slog"
)

// Run starts the HTTP API and blocks until the listener fails.
func (c *ServeCmd) Run(deps *Dependencies) error {
	resultCache := deps.Cache
	if resultCache == nil && c.CacheSize > 0 {
		resultCache = cache.NewLRU(c.CacheSize, time.Duration(c.CacheTTL)*time.Second)
	}

	var extractor jobpost.Extractor = jobslog.NewLoggingExtractor(deps.Extractor, deps.Logger)

	server := &jobhttp.Server{
		Extractor: extractor,
		Cache:     resultCache,
		Enhancer:  deps.Enhancer,
		Fetcher:   deps.Fetcher,
		Logger:    deps.Logger,
		RPS:       c.RPS,
	}

	return server.ListenAndServe(c.Addr)
}

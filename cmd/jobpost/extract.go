package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fwojciec/jobpost"
	"golang.org/x/sync/errgroup"
)

// fileResult pairs one input with its extraction output for JSON rendering.
type fileResult struct {
	Path        string               `json:"path,omitempty"`
	Job         *jobpost.Job         `json:"job"`
	Enhancement *jobpost.Enhancement `json:"enhancement,omitempty"`
}

// Run extracts job data from the given files, or from stdin when no paths
// are provided, and writes JSON to stdout.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	if len(c.Paths) == 0 {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		result := c.process(deps, "", string(content))
		return c.write(deps.Stdout, result)
	}

	results := make([]*fileResult, len(c.Paths))
	var mu sync.Mutex

	g, _ := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)
	for i, path := range c.Paths {
		g.Go(func() error {
			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			result := c.process(deps, path, string(content))
			mu.Lock()
			results[i] = result
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if len(results) == 1 {
		return c.write(deps.Stdout, results[0])
	}
	return c.write(deps.Stdout, results)
}

func (c *ExtractCmd) process(deps *Dependencies, path, content string) *fileResult {
	isHTML := c.HTML || strings.HasSuffix(strings.ToLower(path), ".html") || strings.HasSuffix(strings.ToLower(path), ".htm")
	job := deps.Extractor.Extract(content, isHTML)

	result := &fileResult{Path: path, Job: job}
	if c.Enhance && deps.Enhancer != nil {
		enhancement, err := deps.Enhancer.Enhance(deps.Ctx, job)
		if err != nil {
			deps.Logger.Warn("enhancement failed", "path", path, "error", err)
		} else {
			result.Enhancement = enhancement
		}
	}
	return result
}

func (c *ExtractCmd) write(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	if c.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

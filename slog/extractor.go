// Package slog provides logging decorators for jobpost services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/jobpost"
)

// Ensure LoggingExtractor implements jobpost.Extractor.
var _ jobpost.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with per-request debug logging.
type LoggingExtractor struct {
	next   jobpost.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next jobpost.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(content string, isHTML bool) *jobpost.Job {
	begin := time.Now()
	job := e.next.Extract(content, isHTML)
	e.logger.Info("extraction",
		"html", isHTML,
		"content_bytes", len(content),
		"position_found", job.Position != "",
		"company_found", job.Company != "",
		"salary_found", !job.Salary.IsZero(),
		"duration", time.Since(begin),
	)
	return job
}

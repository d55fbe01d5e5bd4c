package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/jobpost"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Extractor jobpost.Extractor
	Cache     jobpost.ResultCache
	Enhancer  jobpost.Enhancer
	Fetcher   jobpost.Fetcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve   ServeCmd   `cmd:"" help:"Run the extraction HTTP API"`
	Extract ExtractCmd `cmd:"" help:"Extract job data from files or stdin"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr      string  `default:":5000" help:"Listen address"`
	Engine    string  `default:"goquery" enum:"goquery,trafilatura" help:"HTML normalization engine"`
	CacheSize int     `default:"1000" help:"In-memory result cache capacity (0 disables)"`
	CacheTTL  int     `default:"3600" help:"In-memory cache TTL in seconds"`
	RPS       float64 `default:"0" help:"Per-client requests per second (0 disables)"`
	Enhance   bool    `help:"Enable the Gemini enhancement pass"`
	Model     string  `help:"Gemini model (defaults to the package default)"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Paths       []string `arg:"" optional:"" help:"Files to extract from (stdin if omitted)"`
	HTML        bool     `help:"Treat input as HTML"`
	Engine      string   `default:"goquery" enum:"goquery,trafilatura" help:"HTML normalization engine"`
	Enhance     bool     `help:"Run the Gemini enhancement pass"`
	Model       string   `help:"Gemini model (defaults to the package default)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent file limit"`
	Pretty      bool     `help:"Indent JSON output"`
}

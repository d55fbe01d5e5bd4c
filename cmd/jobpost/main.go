package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/jobpost"
	"github.com/fwojciec/jobpost/gemini"
	"github.com/fwojciec/jobpost/goquery"
	"github.com/fwojciec/jobpost/htmltomarkdown"
	jobhttp "github.com/fwojciec/jobpost/http"
	"github.com/fwojciec/jobpost/sqlite"
	"github.com/fwojciec/jobpost/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path for the persistent result cache. Empty disables it.
	// Set before calling Run().
	DBPath string

	// SQLite database used by the persistent result cache.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: os.Getenv("JOBPOST_DB"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("jobpost"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'jobpost --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire the pipeline for whichever command runs.
	var engine, model string
	var enhance bool
	switch cmd {
	case "serve":
		engine, model, enhance = cli.Serve.Engine, cli.Serve.Model, cli.Serve.Enhance
	case "extract":
		engine, model, enhance = cli.Extract.Engine, cli.Extract.Model, cli.Extract.Enhance
	}

	deps.Extractor = &jobpost.Pipeline{Normalizer: newNormalizer(engine)}

	if m.DBPath != "" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set JOBPOST_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		resultCache, err := sqlite.NewResultCache(ctx, m.DB)
		if err != nil {
			return fmt.Errorf("failed to initialize result cache: %w", err)
		}
		deps.Cache = resultCache
	}

	deps.Fetcher = jobhttp.NewFetcher()
	defer deps.Fetcher.Close()

	if enhance {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Enhancer = gemini.NewEnhancer(client, model)
	}

	return kongCtx.Run(deps)
}

// newNormalizer selects the HTML normalization engine. The trafilatura
// engine degrades to the goquery one for pages it cannot parse.
func newNormalizer(engine string) jobpost.Normalizer {
	base := goquery.NewNormalizer()
	if engine == "trafilatura" {
		return trafilatura.NewNormalizer(htmltomarkdown.NewConverter(), base)
	}
	return base
}

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fwojciec/jobpost"
	"github.com/fwojciec/jobpost/cache"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Server exposes the extraction pipeline over HTTP. The Extractor is the
// only required dependency; Cache, Enhancer, and Fetcher are optional
// collaborators that enable memoization, LLM enhancement, and by-URL
// submission respectively.
type Server struct {
	Extractor jobpost.Extractor
	Cache     jobpost.ResultCache
	Enhancer  jobpost.Enhancer
	Fetcher   jobpost.Fetcher
	Logger    *slog.Logger

	// RPS limits requests per client IP. Zero disables rate limiting.
	RPS float64
}

// extractRequest is the POST body. Exactly one of HTML, Text, or URL is
// expected; when several are present HTML wins over Text over URL.
type extractRequest struct {
	HTML    *string `json:"html"`
	Text    *string `json:"text"`
	URL     *string `json:"url"`
	Enhance bool    `json:"enhance"`
}

// extractResponse is the Job plus the optional enhancement block.
type extractResponse struct {
	*jobpost.Job
	Enhancement *jobpost.Enhancement `json:"enhancement,omitempty"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Handler returns the HTTP handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /api/extract-job-data", s.handleExtract)
	mux.HandleFunc("/", s.handleNotFound)

	var h http.Handler = mux
	if s.RPS > 0 {
		h = rateLimit(s.RPS, h)
	}
	h = requestLog(s.logger(), h)
	h = requestID(h)
	return h
}

// ListenAndServe starts the server on addr and blocks.
func (s *Server) ListenAndServe(addr string) error {
	s.logger().Info("starting server", "addr", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "online",
		"service": "Job Data Extraction API",
		"version": Version,
		"endpoints": map[string]string{
			"/api/extract-job-data": "POST - Extract structured data from job posting HTML or text",
		},
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{
		Error:   "Endpoint not found",
		Details: "Please refer to the API documentation for available endpoints",
	})
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body", Details: err.Error()})
		return
	}

	var content string
	var isHTML bool
	switch {
	case req.HTML != nil:
		content, isHTML = *req.HTML, true
	case req.Text != nil:
		content, isHTML = *req.Text, false
	case req.URL != nil:
		if s.Fetcher == nil {
			writeJSON(w, http.StatusNotImplemented, errorResponse{Error: "URL processing not enabled"})
			return
		}
		html, err := s.Fetcher.Fetch(r.Context(), *req.URL)
		if err != nil {
			s.logger().Error("fetch failed", "url", *req.URL, "error", err)
			writeJSON(w, http.StatusBadGateway, errorResponse{
				Error:   "Failed to fetch URL",
				Details: jobpost.ErrorMessage(err),
			})
			return
		}
		content, isHTML = html, true
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "You must provide either 'html', 'text', or 'url' field",
		})
		return
	}

	job := s.extract(r, content, isHTML)

	resp := extractResponse{Job: job}
	if req.Enhance && s.Enhancer != nil {
		enhancement, err := s.Enhancer.Enhance(r.Context(), job)
		if err != nil {
			// Enhancement is best-effort; the core result stands on its own.
			s.logger().Warn("enhancement failed", "error", err)
		} else {
			resp.Enhancement = enhancement
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// extract runs the pipeline with memoization when a cache is configured.
// Cache failures degrade to a plain extraction.
func (s *Server) extract(r *http.Request, content string, isHTML bool) *jobpost.Job {
	if s.Cache == nil {
		return s.Extractor.Extract(content, isHTML)
	}

	key := cache.Key(content, isHTML)
	if job, ok, err := s.Cache.Get(r.Context(), key); err != nil {
		s.logger().Warn("cache get failed", "key", key, "error", err)
	} else if ok {
		s.logger().Debug("cache hit", "key", key)
		return job
	}

	job := s.Extractor.Extract(content, isHTML)
	if err := s.Cache.Put(r.Context(), key, job); err != nil {
		s.logger().Warn("cache put failed", "key", key, "error", err)
	}
	return job
}

func (s *Server) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fwojciec/jobpost"
	jobposthttp "github.com/fwojciec/jobpost/http"
	"github.com/fwojciec/jobpost/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(tb testing.TB) *jobposthttp.Server {
	tb.Helper()
	return &jobposthttp.Server{
		Extractor: &mock.Extractor{
			ExtractFn: func(content string, isHTML bool) *jobpost.Job {
				job := jobpost.NewJob()
				job.Position = "Backend Engineer"
				job.Company = "Acme Inc"
				return job
			},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func postExtract(tb testing.TB, h http.Handler, body string) *httptest.ResponseRecorder {
	tb.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/extract-job-data", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServer_Index(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "online", body["status"])
	assert.Equal(t, jobposthttp.Version, body["version"])
}

func TestServer_NotFound(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Endpoint not found")
}

func TestServer_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts from text", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		rec := postExtract(t, s.Handler(), `{"text": "Job Title: Backend Engineer"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var job jobpost.Job
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
		assert.Equal(t, "Backend Engineer", job.Position)
		assert.Equal(t, "Acme Inc", job.Company)
	})

	t.Run("html wins over text", func(t *testing.T) {
		t.Parallel()

		var gotHTML bool
		s := newTestServer(t)
		s.Extractor = &mock.Extractor{
			ExtractFn: func(content string, isHTML bool) *jobpost.Job {
				gotHTML = isHTML
				return jobpost.NewJob()
			},
		}

		rec := postExtract(t, s.Handler(), `{"html": "<p>x</p>", "text": "x"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, gotHTML)
	})

	t.Run("rejects a body without content fields", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		rec := postExtract(t, s.Handler(), `{"enhance": true}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "must provide")
	})

	t.Run("rejects invalid json", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		rec := postExtract(t, s.Handler(), `{not json`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid JSON body")
	})

	t.Run("url without a fetcher is not implemented", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		rec := postExtract(t, s.Handler(), `{"url": "https://example.com/jobs/1"}`)

		require.Equal(t, http.StatusNotImplemented, rec.Code)
	})

	t.Run("fetches url content when a fetcher is configured", func(t *testing.T) {
		t.Parallel()

		var fetched string
		s := newTestServer(t)
		s.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				fetched = url
				return "<html><body>posting</body></html>", nil
			},
		}

		rec := postExtract(t, s.Handler(), `{"url": "https://example.com/jobs/1"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://example.com/jobs/1", fetched)
	})

	t.Run("fetch failure maps to bad gateway", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		s.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", jobpost.Errorf(jobpost.EUNAVAILABLE, "connection refused")
			},
		}

		rec := postExtract(t, s.Handler(), `{"url": "https://example.com/jobs/1"}`)

		require.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), "Failed to fetch URL")
	})

	t.Run("attaches enhancement when requested", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		s.Enhancer = &mock.Enhancer{
			EnhanceFn: func(ctx context.Context, job *jobpost.Job) (*jobpost.Enhancement, error) {
				return &jobpost.Enhancement{Summary: "Short summary.", QualityScore: 0.5}, nil
			},
		}

		rec := postExtract(t, s.Handler(), `{"text": "x", "enhance": true}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Enhancement *jobpost.Enhancement `json:"enhancement"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.NotNil(t, body.Enhancement)
		assert.Equal(t, "Short summary.", body.Enhancement.Summary)
	})

	t.Run("enhancement failure is non-fatal", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		s.Enhancer = &mock.Enhancer{
			EnhanceFn: func(ctx context.Context, job *jobpost.Job) (*jobpost.Enhancement, error) {
				return nil, jobpost.Errorf(jobpost.EUNAVAILABLE, "model overloaded")
			},
		}

		rec := postExtract(t, s.Handler(), `{"text": "x", "enhance": true}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "enhancement")
	})
}

func TestServer_Cache(t *testing.T) {
	t.Parallel()

	t.Run("serves the cached result without re-extracting", func(t *testing.T) {
		t.Parallel()

		cached := jobpost.NewJob()
		cached.Position = "Cached Engineer"

		var extracted int
		s := newTestServer(t)
		s.Extractor = &mock.Extractor{
			ExtractFn: func(content string, isHTML bool) *jobpost.Job {
				extracted++
				return jobpost.NewJob()
			},
		}
		s.Cache = &mock.ResultCache{
			GetFn: func(ctx context.Context, key string) (*jobpost.Job, bool, error) {
				return cached, true, nil
			},
		}

		rec := postExtract(t, s.Handler(), `{"text": "x"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Zero(t, extracted)
		assert.Contains(t, rec.Body.String(), "Cached Engineer")
	})

	t.Run("stores the result on a miss", func(t *testing.T) {
		t.Parallel()

		var putKey string
		s := newTestServer(t)
		s.Cache = &mock.ResultCache{
			GetFn: func(ctx context.Context, key string) (*jobpost.Job, bool, error) {
				return nil, false, nil
			},
			PutFn: func(ctx context.Context, key string, job *jobpost.Job) error {
				putKey = key
				return nil
			},
		}

		rec := postExtract(t, s.Handler(), `{"text": "x"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, putKey)
	})

	t.Run("cache errors degrade to plain extraction", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		s.Cache = &mock.ResultCache{
			GetFn: func(ctx context.Context, key string) (*jobpost.Job, bool, error) {
				return nil, false, jobpost.Errorf(jobpost.EINTERNAL, "disk gone")
			},
			PutFn: func(ctx context.Context, key string, job *jobpost.Job) error {
				return jobpost.Errorf(jobpost.EINTERNAL, "disk gone")
			},
		}

		rec := postExtract(t, s.Handler(), `{"text": "x"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Backend Engineer")
	})
}

func TestServer_Middleware(t *testing.T) {
	t.Parallel()

	t.Run("assigns a request id", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("propagates a provided request id", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
	})

	t.Run("rate limits per client", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t)
		s.RPS = 0.001
		h := s.Handler()

		first := httptest.NewRecorder()
		h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, first.Code)

		second := httptest.NewRecorder()
		h.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
	})
}

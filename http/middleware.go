package http

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// requestID assigns each request a UUID, exposed on the response for
// correlation.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by the handler chain.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestLog logs one line per request with method, path, status, and
// duration.
func requestLog(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(begin),
			"request_id", w.Header().Get("X-Request-ID"),
		)
	})
}

// limiterIdleTTL is how long a client entry may sit unused before the next
// sweep drops it.
const limiterIdleTTL = 3 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiter hands out one token bucket per client IP. Idle entries are
// swept before the map grows, so it stays bounded under IP churn.
type clientLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	rps     float64
	now     func() time.Time
}

func (c *clientLimiter) allow(ip string) bool {
	c.mu.Lock()
	now := c.now()
	cl, ok := c.clients[ip]
	if !ok {
		c.sweep(now)
		// Burst of one: extraction requests are heavyweight enough that
		// bursting defeats the point of the limit.
		cl = &client{limiter: rate.NewLimiter(rate.Limit(c.rps), 1)}
		c.clients[ip] = cl
	}
	cl.lastSeen = now
	c.mu.Unlock()
	return cl.limiter.Allow()
}

// sweep drops entries not seen within limiterIdleTTL. Called with the lock
// held.
func (c *clientLimiter) sweep(now time.Time) {
	for ip, cl := range c.clients {
		if now.Sub(cl.lastSeen) > limiterIdleTTL {
			delete(c.clients, ip)
		}
	}
}

// rateLimit rejects requests over the per-client budget with a 429.
func rateLimit(rps float64, next http.Handler) http.Handler {
	limiter := &clientLimiter{clients: make(map[string]*client), rps: rps, now: time.Now}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !limiter.allow(ip) {
			writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "Rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

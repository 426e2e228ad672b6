package server

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"resumecheck/internal/errors"
	"resumecheck/internal/observability"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/time/rate"
)

// Request costs in limiter tokens. A compliance check runs the full
// engine pipeline over three documents; keyword classification is a
// rule-table lookup, and everything else is cheaper still.
const (
	costCheck   = 2
	costDefault = 1
)

// defaultEvictionAge bounds how long an idle client keeps its bucket
const defaultEvictionAge = 10 * time.Minute

// requestCost returns the token cost of a request to the given path
func requestCost(path string) int {
	if path == "/check" {
		return costCheck
	}
	return costDefault
}

// LimiterManager keeps one token bucket per client key (API key or IP)
// and evicts buckets that have been idle longer than the eviction age.
type LimiterManager struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	lastSeen map[string]time.Time
	rate     rate.Limit
	burst    int
	done     chan struct{}
	logger   *errors.Logger
}

// RateLimiter is the name the rest of the server uses for the manager
type RateLimiter = LimiterManager

// NewRateLimiter creates a manager allowing requestsPerMin tokens per
// minute per key with the given burst capacity. evictionAge controls
// when idle buckets are dropped; it is floored at the default so a
// briefly idle client cannot reset a drained bucket. The burst is
// raised to the largest request cost so a /check can always fit in a
// full bucket.
func NewRateLimiter(requestsPerMin int, evictionAge time.Duration, burstCapacity int, logger *errors.Logger) *LimiterManager {
	if evictionAge < defaultEvictionAge {
		evictionAge = defaultEvictionAge
	}
	if burstCapacity < costCheck {
		burstCapacity = costCheck
	}

	m := &LimiterManager{
		limiters: make(map[string]*rate.Limiter),
		lastSeen: make(map[string]time.Time),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burstCapacity,
		done:     make(chan struct{}),
		logger:   logger,
	}

	go m.cleanupRoutine(evictionAge)
	return m
}

// GetLimiter retrieves or creates the bucket for a key
func (m *LimiterManager) GetLimiter(key string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	limiter, exists := m.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(m.rate, m.burst)
		m.limiters[key] = limiter
	}
	m.lastSeen[key] = time.Now()

	return limiter
}

// AllowN reports whether a request costing n tokens should proceed.
// Non-blocking; a denied request consumes nothing.
func (m *LimiterManager) AllowN(key string, n int) bool {
	return m.GetLimiter(key).AllowN(time.Now(), n)
}

// Allow is AllowN with the default cost of one token
func (m *LimiterManager) Allow(key string) bool {
	return m.AllowN(key, costDefault)
}

// GetStats returns current rate limiter statistics
func (m *LimiterManager) GetStats() map[string]any {
	m.mu.Lock()
	defer m.mu.Unlock()

	return map[string]any{
		"active_limiters":    len(m.limiters),
		"rate_per_second":    float64(m.rate),
		"rate_per_minute":    float64(m.rate) * 60.0,
		"burst_capacity":     m.burst,
		"check_request_cost": costCheck,
	}
}

// cleanupRoutine periodically evicts idle buckets
func (m *LimiterManager) cleanupRoutine(evictionAge time.Duration) {
	ticker := time.NewTicker(evictionAge)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.cleanup(evictionAge)
		case <-m.done:
			return
		}
	}
}

// cleanup removes buckets not seen within the eviction age
func (m *LimiterManager) cleanup(evictionAge time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for key, lastSeen := range m.lastSeen {
		if now.Sub(lastSeen) > evictionAge {
			delete(m.limiters, key)
			delete(m.lastSeen, key)
		}
	}

	if m.logger != nil {
		m.logger.Debug("Rate limiter cleanup completed",
			"remaining_limiters", len(m.limiters))
	}
}

// Close stops the cleanup goroutine. Should be called when shutting down the server.
func (m *LimiterManager) Close() {
	close(m.done)
}

// rateLimitMiddleware enforces per-key limits with per-endpoint costs
// and records a rate-limit-hit metric on every denial.
func (s *Server) rateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	if s.RateLimit == nil || !s.RateLimit.Enabled {
		return func(next http.HandlerFunc) http.HandlerFunc { return next }
	}

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			rateLimitKey := getRateLimitKey(r, s.RateLimit.ByAPIKey, s.RateLimit.ByIP)
			if rateLimitKey == "" {
				next(w, r)
				return
			}

			if !s.RateLimiter.AllowN(rateLimitKey, requestCost(r.URL.Path)) {
				s.Logger.Info("Rate limit exceeded",
					"key", rateLimitKey,
					"endpoint", r.URL.Path,
					"cost", requestCost(r.URL.Path),
					"client_ip", getClientIP(r))
				if om != nil {
					om.GetMetrics().RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
						attribute.String("endpoint", r.URL.Path),
						attribute.String("method", r.Method))
				}
				writeErrorResponse(w, "Rate limit exceeded", "Too many requests", http.StatusTooManyRequests)
				return
			}

			next(w, r)
		}
	}
}

// Helper to consolidate key extraction logic
func getRateLimitKey(r *http.Request, byAPIKey, byIP bool) string {
	if byAPIKey {
		apiKey := r.Header.Get("X-API-Key")
		if apiKey == "" {
			authHeader := r.Header.Get("Authorization")
			if after, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
				apiKey = after
			}
		}
		if apiKey != "" {
			return "api:" + apiKey
		}
	}

	if byIP {
		return "ip:" + getClientIP(r)
	}

	return ""
}

// getClientIP extracts the client IP address from the request
func getClientIP(r *http.Request) string {
	// Check X-Forwarded-For header (for proxies)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// Take the first IP in the list
		if ip := parseFirstIP(xff); ip != "" {
			return ip
		}
	}

	// Check X-Real-IP header
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		if ip := net.ParseIP(xri); ip != nil {
			return xri
		}
	}

	// Fall back to RemoteAddr
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// parseFirstIP parses the first valid IP from a comma-separated list
func parseFirstIP(ips string) string {
	// Split by comma and check each IP
	for ip := range strings.SplitSeq(ips, ",") {
		ip = strings.TrimSpace(ip)
		if parsed := net.ParseIP(ip); parsed != nil {
			return ip
		}
	}
	return ""
}

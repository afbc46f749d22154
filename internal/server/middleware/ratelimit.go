package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active.
	Enabled bool
	// PerIP gives every client address its own bucket instead of one
	// shared bucket.
	PerIP bool
	// RequestsPerSecond is the refill rate.
	RequestsPerSecond float64
	// Burst is the maximum burst size.
	Burst int
	// IdleTTL drops per-IP buckets unused for this long. Zero uses 10m.
	IdleTTL time.Duration
	// ExcludePaths are never limited.
	ExcludePaths []string
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterSet hands out token buckets by key.
type limiterSet struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      rate.Limit
	burst    int
	idleTTL  time.Duration
	lastGC   time.Time
}

func newLimiterSet(rps float64, burst int, idleTTL time.Duration) *limiterSet {
	if idleTTL <= 0 {
		idleTTL = 10 * time.Minute
	}
	return &limiterSet{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
		idleTTL:  idleTTL,
		lastGC:   time.Now(),
	}
}

func (l *limiterSet) get(key string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastGC) > l.idleTTL {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) > l.idleTTL {
				delete(l.visitors, k)
			}
		}
		l.lastGC = now
	}

	v, exists := l.visitors[key]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter
}

func (l *limiterSet) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}

// RateLimit creates a token bucket middleware. Rejected requests get 429
// with a Retry-After hint.
func RateLimit(config *RateLimitConfig) Middleware {
	if !config.Enabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	limiters := newLimiterSet(config.RequestsPerSecond, config.Burst, config.IdleTTL)
	excluded := make(map[string]bool, len(config.ExcludePaths))
	for _, p := range config.ExcludePaths {
		excluded[p] = true
	}
	retryAfter := strconv.Itoa(int(math.Ceil(1 / math.Max(config.RequestsPerSecond, 0.001))))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if excluded[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			key := "global"
			if config.PerIP {
				key = clientIP(r)
			}

			if !limiters.get(key, time.Now()).Allow() {
				w.Header().Set("Retry-After", retryAfter)
				WriteError(w, r, http.StatusTooManyRequests, "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP extracts the client address: the first X-Forwarded-For hop,
// then X-Real-IP, then RemoteAddr without its port.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

package kit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// IPRateLimiter is a sliding-window limiter keyed by client IP.
// A non-positive limit disables it.
type IPRateLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	hits   map[string][]time.Time
	now    func() time.Time
}

func NewIPRateLimiter(limit int, window time.Duration) *IPRateLimiter {
	return &IPRateLimiter{
		limit:  limit,
		window: window,
		hits:   make(map[string][]time.Time),
		now:    time.Now,
	}
}

func (l *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l.limit > 0 && !l.Allow(clientIP(r)) {
			WriteError(w, r, http.StatusTooManyRequests, "too many requests", map[string]any{
				"limit":          l.limit,
				"window_seconds": int(l.window.Seconds()),
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Allow records a hit for ip and reports whether it is within the limit.
func (l *IPRateLimiter) Allow(ip string) bool {
	now := l.now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	ts := prune(l.hits[ip], cutoff)
	if len(ts) >= l.limit {
		l.hits[ip] = ts
		return false
	}

	l.hits[ip] = append(ts, now)
	return true
}

func prune(ts []time.Time, cutoff time.Time) []time.Time {
	n := 0
	for _, t := range ts {
		if t.After(cutoff) {
			ts[n] = t
			n++
		}
	}
	return ts[:n]
}

func clientIP(r *http.Request) string {
	if ip := firstForwardedFor(r.Header.Get("X-Forwarded-For")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}

	return r.RemoteAddr
}

func firstForwardedFor(xff string) string {
	if xff == "" {
		return ""
	}
	first, _, _ := strings.Cut(xff, ",")
	return strings.TrimSpace(first)
}

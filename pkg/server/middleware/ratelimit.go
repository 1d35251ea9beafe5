package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/render"
	"golang.org/x/time/rate"
)

const (
	defaultRequestsPerSecond = 10
	defaultBurst             = 20
	visitorIdleTimeout       = 3 * time.Minute
	cleanupInterval          = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter. token bucket per client ip.
type RateLimiter struct {
	mu          sync.Mutex
	visitors    map[string]*visitor
	limit       rate.Limit
	burst       int
	now         func() time.Time
	lastCleanup time.Time
}

func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(requestsPerSecond),
		burst:    burst,
		now:      time.Now,
	}
}

func (rl *RateLimiter) getVisitor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastCleanup) >= cleanupInterval {
		rl.evictIdle(now)
	}

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// evictIdle. drop visitors idle longer than visitorIdleTimeout. rl.mu must be held.
func (rl *RateLimiter) evictIdle(now time.Time) {
	for k, v := range rl.visitors {
		if now.Sub(v.lastSeen) > visitorIdleTimeout {
			delete(rl.visitors, k)
		}
	}
	rl.lastCleanup = now
}

func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !rl.getVisitor(ip).Allow() {
			render.Status(r, http.StatusTooManyRequests)
			render.JSON(w, r, map[string]string{
				"status": "Too many requests.",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

var defaultLimiter = NewRateLimiter(defaultRequestsPerSecond, defaultBurst)

// Limit. rate limit middleware with the default limit of 10 requests/s per ip, bursts up to 20.
func Limit(next http.Handler) http.Handler {
	return defaultLimiter.Handler(next)
}

package middleware

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/DanielPopoola/mollie-acquirer/internal/application"
	"github.com/DanielPopoola/mollie-acquirer/internal/config"
	"github.com/DanielPopoola/mollie-acquirer/internal/interfaces/rest"
	"golang.org/x/time/rate"
)

const visitorTTL = 3 * time.Minute

// Catalog syncs hit Mollie twice and rewrite the method table; they get a
// tighter bucket than the rest of the API.
const (
	limitSync = rate.Limit(0.2)
	burstSync = 2
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP and tier.
type RateLimiter struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	visitors map[string]*visitor
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		limit:    rate.Limit(cfg.RPS),
		burst:    cfg.Burst,
		visitors: make(map[string]*visitor),
	}
}

// Middleware answers 429 once a client's bucket is empty.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, burst, tier := l.resolveTier(r)

		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !l.getVisitor("ip:"+ip+":"+tier, limit, burst).Allow() {
			w.Header().Set("Retry-After", "1")
			rest.WriteErrorCode(w, http.StatusTooManyRequests, application.ErrCodeRateLimited, "Too many requests")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Cleanup evicts idle visitors every minute until ctx is done.
func (l *RateLimiter) Cleanup(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.evict(time.Now())
		}
	}
}

func (l *RateLimiter) evict(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) > visitorTTL {
			delete(l.visitors, key)
		}
	}
}

func (l *RateLimiter) getVisitor(key string, limit rate.Limit, burst int) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, exists := l.visitors[key]
	if !exists {
		limiter := rate.NewLimiter(limit, burst)
		l.visitors[key] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

func (l *RateLimiter) resolveTier(r *http.Request) (rate.Limit, int, string) {
	if r.Method == http.MethodPost && r.URL.Path == "/mollie/methods/sync" {
		return limitSync, burstSync, "sync"
	}
	return l.limit, l.burst, "general"
}

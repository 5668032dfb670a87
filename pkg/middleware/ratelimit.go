package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"solar-marketplace/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Limiter decides whether a request keyed by client address may proceed.
// Injected so handlers never touch global state; the in-process implementation
// below is per-instance, which is an accepted limitation at this scale.
type Limiter interface {
	Allow(key string) bool
}

type limiterEntry struct {
	limiter *rate.Limiter
	// Written by request goroutines, read by the cleanup goroutine.
	lastAccess atomic.Int64
}

// IPRateLimiter keeps a token bucket per key with TTL eviction.
type IPRateLimiter struct {
	buckets sync.Map
	rate    rate.Limit
	burst   int
}

const (
	cleanupInterval = 5 * time.Minute
	entryTTL        = 10 * time.Minute
)

func NewIPRateLimiter(perMinute, burst int) *IPRateLimiter {
	if perMinute < 1 {
		perMinute = 10
	}
	if burst < 1 {
		burst = perMinute
	}

	l := &IPRateLimiter{
		rate:  rate.Limit(float64(perMinute) / 60.0),
		burst: burst,
	}
	go l.cleanup()
	return l
}

func (l *IPRateLimiter) Allow(key string) bool {
	now := time.Now().Unix()

	entryI, loaded := l.buckets.Load(key)
	if !loaded {
		newEntry := &limiterEntry{limiter: rate.NewLimiter(l.rate, l.burst)}
		newEntry.lastAccess.Store(now)
		entryI, _ = l.buckets.LoadOrStore(key, newEntry)
	}

	entry, ok := entryI.(*limiterEntry)
	if !ok {
		return true
	}
	entry.lastAccess.Store(now)

	return entry.limiter.Allow()
}

func (l *IPRateLimiter) cleanup() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-entryTTL).Unix()
		l.buckets.Range(func(key, value any) bool {
			entry, ok := value.(*limiterEntry)
			if ok && entry.lastAccess.Load() < cutoff {
				l.buckets.Delete(key)
			}
			return true
		})
	}
}

// RateLimit guards a route group with the injected limiter, keyed by client IP.
func RateLimit(limiter Limiter, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)

			if !limiter.Allow(key) {
				logger.Warn("Rate limit exceeded",
					zap.String("ip", key),
					zap.String("path", r.URL.Path))
				utils.ResponseTooManyRequests(w, "Too many attempts, try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[len(ips)-1])
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

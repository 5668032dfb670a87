package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestIPRateLimiter_BurstThenDeny(t *testing.T) {
	limiter := NewIPRateLimiter(60, 3)

	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.True(t, limiter.Allow("1.2.3.4"))
	// Burst exhausted; refill rate is one per second so this is denied.
	assert.False(t, limiter.Allow("1.2.3.4"))
}

func TestIPRateLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewIPRateLimiter(60, 1)

	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.False(t, limiter.Allow("1.2.3.4"))
	assert.True(t, limiter.Allow("5.6.7.8"))
}

// Exercises lastAccess bookkeeping from many goroutines at once; run with
// the race detector to verify the accesses are synchronized.
func TestIPRateLimiter_ConcurrentAllow(t *testing.T) {
	limiter := NewIPRateLimiter(60, 1000)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				limiter.Allow("10.0.0.1")
				limiter.Allow("10.0.0.2")
			}
		}()
	}
	wg.Wait()

	assert.True(t, limiter.Allow("10.0.0.3"))
}

func TestRateLimitMiddleware_Responds429(t *testing.T) {
	limiter := NewIPRateLimiter(60, 1)
	mw := RateLimit(limiter, zap.NewNop())

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	req.RemoteAddr = "9.9.9.9:1234"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"fail"`)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "10.0.0.1", clientIP(req))

	req.Header.Set("X-Real-IP", "20.0.0.2")
	assert.Equal(t, "20.0.0.2", clientIP(req))

	// Last hop of X-Forwarded-For wins over X-Real-IP.
	req.Header.Set("X-Forwarded-For", "30.0.0.3, 40.0.0.4")
	assert.Equal(t, "40.0.0.4", clientIP(req))
}

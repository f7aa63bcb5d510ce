package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"

	"jarvis-agent/config"
	"jarvis-agent/pkg/log"
)

func newEngine(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID())
	r.GET("/ping", mw.RateLimit(), func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestIDFromContext(c.Request.Context()))
	})
	return r
}

func get(r *gin.Engine, ip, requestID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":1234"
	if requestID != "" {
		req.Header.Set(HeaderRequestID, requestID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := newEngine(New(log.NewNop(), config.RateLimitConfig{}))

	w := get(r, "10.0.0.1", "req-123")
	assert.Equal(t, "req-123", w.Header().Get(HeaderRequestID))
	assert.Equal(t, "req-123", w.Body.String())

	w = get(r, "10.0.0.1", "")
	generated := w.Header().Get(HeaderRequestID)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())
}

func TestRateLimit(t *testing.T) {
	r := newEngine(New(log.NewNop(), config.RateLimitConfig{PerMin: 2}))

	assert.Equal(t, http.StatusOK, get(r, "10.0.0.1", "").Code)
	assert.Equal(t, http.StatusOK, get(r, "10.0.0.1", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "10.0.0.1", "").Code)

	// Buckets are per client.
	assert.Equal(t, http.StatusOK, get(r, "10.0.0.2", "").Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	r := newEngine(New(log.NewNop(), config.RateLimitConfig{PerMin: 0}))

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, get(r, "10.0.0.1", "").Code)
	}
}

func TestRateLimit_ConcurrentFirstRequests(t *testing.T) {
	mw := New(log.NewNop(), config.RateLimitConfig{PerMin: 1})
	r := newEngine(mw)

	var admitted atomic.Int32
	var g errgroup.Group
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			if get(r, "10.0.0.9", "").Code == http.StatusOK {
				admitted.Add(1)
			}
			return nil
		})
	}
	assert.NoError(t, g.Wait())
	assert.Equal(t, int32(1), admitted.Load())
}

func TestLimiterFor_SharedBucket(t *testing.T) {
	mw := New(log.NewNop(), config.RateLimitConfig{PerMin: 5})

	var (
		mu   sync.Mutex
		seen = map[any]struct{}{}
		g    errgroup.Group
	)
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			lim := mw.limiterFor("10.0.0.7")
			mu.Lock()
			seen[lim] = struct{}{}
			mu.Unlock()
			return nil
		})
	}
	assert.NoError(t, g.Wait())
	assert.Len(t, seen, 1)
}

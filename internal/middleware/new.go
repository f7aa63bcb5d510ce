package middleware

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"jarvis-agent/config"
	"jarvis-agent/pkg/log"
)

// Middleware holds the shared state of the HTTP middlewares.
type Middleware struct {
	l        log.Logger
	perMin   int
	mu       *sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	mw := Middleware{
		l:      l,
		perMin: cfg.PerMin,
	}
	if cfg.PerMin > 0 {
		mw.mu = &sync.Mutex{}
		mw.limiters = expirable.NewLRU[string, *rate.Limiter](LimiterCacheSize, nil, LimiterIdleTTL)
	}
	return mw
}

// limiterFor returns the bucket for key, creating it on first use under mu.
func (mw Middleware) limiterFor(key string) *rate.Limiter {
	mw.mu.Lock()
	defer mw.mu.Unlock()

	if lim, ok := mw.limiters.Get(key); ok {
		return lim
	}
	lim := rate.NewLimiter(rate.Every(time.Minute/time.Duration(mw.perMin)), mw.perMin)
	mw.limiters.Add(key, lim)
	return lim
}

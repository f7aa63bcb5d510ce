package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jarvis-agent/pkg/log"
	"jarvis-agent/pkg/response"
)

// RequestID propagates X-Request-ID, generating one when absent, and stores it
// in the request context for the logger.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// RateLimit applies a per-client-IP token bucket of PerMin requests per
// minute. It is a no-op when PerMin is not positive.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.limiters == nil {
			c.Next()
			return
		}
		ip := c.ClientIP()
		if !mw.limiterFor(ip).Allow() {
			mw.l.Warnf(c.Request.Context(), "internal.middleware.RateLimit: client %s exceeded %d req/min", ip, mw.perMin)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

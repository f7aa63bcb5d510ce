package http

import (
	"github.com/gin-gonic/gin"

	"jarvis-agent/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Invoke reaches external services and is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/invoke", mw.RateLimit(), h.Invoke)
	rg.POST("/route", h.Route)
}

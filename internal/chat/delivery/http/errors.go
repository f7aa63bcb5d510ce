package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"jarvis-agent/internal/agent"
	"jarvis-agent/pkg/response"
)

var errEmptyRole = errors.New("message role is required")

// writeError translates use-case errors into HTTP responses. Configuration
// errors are the caller's fault; anything else is internal.
func (h *handler) writeError(c *gin.Context, err error) {
	if ce, ok := agent.AsConfigError(err); ok {
		response.BadRequest(c, ce.Reason, gin.H{"code": string(ce.Code)})
		return
	}
	response.InternalError(c, err)
}

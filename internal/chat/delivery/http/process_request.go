package http

import (
	"github.com/gin-gonic/gin"
)

// processInvokeReq binds and validates the invoke request body.
func (h *handler) processInvokeReq(c *gin.Context) (invokeReq, error) {
	var req invokeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processRouteReq binds and validates the route request body.
func (h *handler) processRouteReq(c *gin.Context) (routeReq, error) {
	var req routeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

package http

import (
	"github.com/gin-gonic/gin"

	"jarvis-agent/pkg/response"
)

// Invoke godoc
// @Summary     Run one conversational turn
// @Description Routes the latest user message to the healthcare or knowledge handler and returns the new assistant messages.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body invokeReq true "Conversation and optional model configuration"
// @Success     200  {object} invokeResp
// @Failure     400  {object} response.Resp "Bad Request or MISSING_CREDENTIAL"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/invoke [POST]
func (h *handler) Invoke(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processInvokeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Invoke(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Invoke: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newInvokeResp(output))
}

// Route godoc
// @Summary     Explain routing
// @Description Returns the route, matched keyword and reason for a conversation without calling any external service.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body routeReq true "Conversation"
// @Success     200  {object} routeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/route [POST]
func (h *handler) Route(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRouteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.newRouteResp(h.uc.Route(ctx, req.toInput())))
}

package chat

import (
	"jarvis-agent/internal/agent"
	"jarvis-agent/internal/model"
	"jarvis-agent/internal/router"
)

type InvokeInput struct {
	Messages []model.Message

	// Config overrides the process defaults for this call. Nil means none.
	Config *agent.Configuration
}

type InvokeOutput struct {
	Route    router.Route
	Messages []model.Message
}

type RouteInput struct {
	Messages []model.Message
}

type RouteOutput struct {
	Decision router.Decision
}

package graph

import (
	"errors"

	"jarvis-agent/internal/model"
	"jarvis-agent/internal/router"
)

// ErrHandlerNotRegistered means the router chose a route with no handler.
var ErrHandlerNotRegistered = errors.New("graph: no handler registered for route")

// Output is the result of one invocation.
type Output struct {
	Route router.Route

	// Messages holds only the messages produced by this invocation.
	Messages []model.Message

	// Conversation is the input conversation with Messages appended.
	Conversation model.Conversation
}

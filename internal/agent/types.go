package agent

import (
	"context"
	"sort"

	"jarvis-agent/internal/model"
	"jarvis-agent/internal/router"
)

// Handler produces the reply for one routed conversation.
type Handler interface {
	// Name returns the node name used in logs.
	Name() string

	// Handle reads the conversation and returns the messages to append.
	// An empty result is valid. Only configuration errors are returned.
	Handle(ctx context.Context, conv model.Conversation, cfg *Configuration) ([]model.Message, error)
}

// Registry is the dispatch table from route to handler.
type Registry struct {
	handlers map[router.Route]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[router.Route]Handler),
	}
}

// Register binds a handler to a route, replacing any previous binding.
// A nil handler removes the binding.
func (r *Registry) Register(route router.Route, h Handler) {
	if h == nil {
		delete(r.handlers, route)
		return
	}
	r.handlers[route] = h
}

// Get retrieves the handler for a route.
func (r *Registry) Get(route router.Route) (Handler, bool) {
	h, ok := r.handlers[route]
	return h, ok && h != nil
}

// Routes returns the registered routes in name order.
func (r *Registry) Routes() []router.Route {
	routes := make([]router.Route, 0, len(r.handlers))
	for route := range r.handlers {
		routes = append(routes, route)
	}
	sort.Slice(routes, func(i, j int) bool { return routes[i] < routes[j] })
	return routes
}

// Missing returns the routes in want that have no handler.
func (r *Registry) Missing(want []router.Route) []router.Route {
	var missing []router.Route
	for _, route := range want {
		if h, ok := r.handlers[route]; !ok || h == nil {
			missing = append(missing, route)
		}
	}
	return missing
}

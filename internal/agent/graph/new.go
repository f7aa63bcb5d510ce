package graph

import (
	"fmt"

	"jarvis-agent/internal/agent"
	"jarvis-agent/internal/router"
	pkgLog "jarvis-agent/pkg/log"
)

// Runner executes START -> handler -> END once per invocation. It keeps no
// per-conversation state and is safe for concurrent use.
type Runner struct {
	l        pkgLog.Logger
	router   router.Router
	registry *agent.Registry
}

// New creates a Runner. A nil router uses the default keyword router. Every
// route in router.Routes must have a handler in registry.
func New(l pkgLog.Logger, r router.Router, registry *agent.Registry) (*Runner, error) {
	if l == nil {
		l = pkgLog.NewNop()
	}
	if r == nil {
		r = router.New()
	}
	if registry == nil {
		registry = agent.NewRegistry()
	}
	if missing := registry.Missing(router.Routes); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrHandlerNotRegistered, missing)
	}
	return &Runner{
		l:        l,
		router:   r,
		registry: registry,
	}, nil
}

// NewDefault wires the two handlers to their routes behind the default router.
// It panics if either handler is nil.
func NewDefault(l pkgLog.Logger, healthcare, knowledge agent.Handler) *Runner {
	registry := agent.NewRegistry()
	registry.Register(router.RouteHealthcare, healthcare)
	registry.Register(router.RouteKnowledge, knowledge)

	runner, err := New(l, nil, registry)
	if err != nil {
		panic(err)
	}
	return runner
}

// Name returns GraphName.
func (r *Runner) Name() string { return GraphName }

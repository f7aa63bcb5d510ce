package healthcare

import (
	"jarvis-agent/internal/agent"
	"jarvis-agent/pkg/llmprovider"
	pkgLog "jarvis-agent/pkg/log"
)

// GeneratorFactory builds the model client for one resolved configuration.
type GeneratorFactory func(cfg agent.Configuration) (llmprovider.Generator, error)

type handler struct {
	l        pkgLog.Logger
	defaults agent.DefaultSource
	newGen   GeneratorFactory
}

// Ensure handler implements agent.Handler interface
var _ agent.Handler = (*handler)(nil)

// New creates the healthcare handler. defaults fills fields the caller leaves
// empty; factory is called once per answered turn.
func New(l pkgLog.Logger, defaults agent.DefaultSource, factory GeneratorFactory) agent.Handler {
	if l == nil {
		l = pkgLog.NewNop()
	}
	return &handler{
		l:        l,
		defaults: defaults,
		newGen:   factory,
	}
}

func (h *handler) Name() string { return NodeName }

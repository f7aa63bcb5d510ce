package knowledge

import (
	"jarvis-agent/internal/agent"
	pkgLog "jarvis-agent/pkg/log"
	"jarvis-agent/pkg/wikipedia"
)

type handler struct {
	l      pkgLog.Logger
	lookup wikipedia.IWikipedia
}

// Ensure handler implements agent.Handler interface
var _ agent.Handler = (*handler)(nil)

// New creates the knowledge handler on top of an encyclopedia lookup.
func New(l pkgLog.Logger, lookup wikipedia.IWikipedia) agent.Handler {
	if l == nil {
		l = pkgLog.NewNop()
	}
	return &handler{
		l:      l,
		lookup: lookup,
	}
}

func (h *handler) Name() string { return NodeName }

package usecase

import (
	"context"

	"jarvis-agent/internal/agent"
	"jarvis-agent/internal/agent/graph"
	"jarvis-agent/internal/chat"
	"jarvis-agent/internal/model"
	"jarvis-agent/internal/router"
	"jarvis-agent/pkg/log"
)

// Runner is the part of *graph.Runner the use case needs.
type Runner interface {
	Invoke(ctx context.Context, conv model.Conversation, override *agent.Configuration) (graph.Output, error)
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	runner Runner
	router router.Router
	l      log.Logger
}

// Ensure implUseCase implements chat.UseCase interface
var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase implementation. A nil router uses the default
// keyword router.
func New(runner Runner, r router.Router, l log.Logger) *implUseCase {
	if r == nil {
		r = router.New()
	}
	return &implUseCase{
		runner: runner,
		router: r,
		l:      l,
	}
}

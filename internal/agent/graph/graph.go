package graph

import (
	"context"
	"fmt"

	"jarvis-agent/internal/agent"
	"jarvis-agent/internal/model"
)

// Invoke routes conv, runs the chosen handler and appends its reply to a copy
// of conv. Configuration errors from the handler are returned unchanged and
// nothing is appended.
func (r *Runner) Invoke(ctx context.Context, conv model.Conversation, override *agent.Configuration) (Output, error) {
	decision := r.router.Classify(conv)

	h, ok := r.registry.Get(decision.Route)
	if !ok {
		return Output{}, fmt.Errorf("%w: %s", ErrHandlerNotRegistered, decision.Route)
	}

	r.l.Infof(ctx, "%s: %s -> %s (%s) -> %s, reason=%q keyword=%q",
		LogPrefixInvoke, NodeStart, h.Name(), decision.Route, NodeEnd, decision.Reason, decision.Keyword)

	msgs, err := h.Handle(ctx, conv, override)
	if err != nil {
		r.l.Errorf(ctx, "%s: %s failed: %v", LogPrefixInvoke, h.Name(), err)
		return Output{Route: decision.Route, Messages: []model.Message{}, Conversation: conv}, err
	}
	if msgs == nil {
		msgs = []model.Message{}
	}

	return Output{
		Route:        decision.Route,
		Messages:     msgs,
		Conversation: conv.Append(msgs...),
	}, nil
}

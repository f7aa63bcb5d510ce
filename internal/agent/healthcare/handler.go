package healthcare

import (
	"context"
	"errors"

	"jarvis-agent/internal/agent"
	"jarvis-agent/internal/model"
	"jarvis-agent/pkg/llmprovider"
)

// Handle answers the latest user message with the language model.
func (h *handler) Handle(ctx context.Context, conv model.Conversation, cfg *agent.Configuration) ([]model.Message, error) {
	last, ok := conv.Last()
	if !ok {
		return []model.Message{model.NewAssistantMessage(GreetingMessage)}, nil
	}
	if !last.IsUser() {
		h.l.Debugf(ctx, "%s: last message role %q is not user, no reply", LogPrefixHandle, last.Role())
		return []model.Message{}, nil
	}

	resolved, err := agent.ResolveConfiguration(cfg, h.defaults)
	if err != nil {
		return nil, err
	}

	gen, err := h.generator(resolved)
	if err != nil {
		return nil, err
	}

	system := llmprovider.NewTextMessage("system", SystemPrompt)
	req := &llmprovider.Request{
		SystemInstruction: &system,
		Messages: []llmprovider.Message{
			llmprovider.NewTextMessage("user", last.Text()),
		},
	}

	resp, err := gen.GenerateContent(ctx, req)
	if err != nil {
		if ce, ok := agent.AsConfigError(err); ok {
			return nil, ce
		}
		if llmprovider.IsCredentialRejected(err) {
			return nil, agent.NewInvalidCredential(ReasonCredentialRejected, err)
		}
		h.l.Warnf(ctx, "%s: model %s failed: %v", LogPrefixHandle, resolved.ModelName, err)
		return []model.Message{model.NewAssistantMessage(ApologyMessage)}, nil
	}
	if resp == nil {
		h.l.Warnf(ctx, "%s: model %s returned no response", LogPrefixHandle, resolved.ModelName)
		return []model.Message{model.NewAssistantMessage(ApologyMessage)}, nil
	}

	return []model.Message{model.NewAssistantMessage(resp.Content.Text())}, nil
}

func (h *handler) generator(cfg agent.Configuration) (llmprovider.Generator, error) {
	if h.newGen == nil {
		return nil, agent.NewInvalidConfiguration(ReasonClientConstruction, errors.New("no generator factory"))
	}
	gen, err := h.newGen(cfg)
	if err != nil {
		if ce, ok := agent.AsConfigError(err); ok {
			return nil, ce
		}
		return nil, agent.NewInvalidConfiguration(ReasonClientConstruction, err)
	}
	return gen, nil
}

// IsServiceFailure reports whether err came from the model service rather than
// from configuration. Service failures are answered with ApologyMessage.
func IsServiceFailure(err error) bool {
	if err == nil {
		return false
	}
	_, isConfig := agent.AsConfigError(err)
	return !isConfig
}

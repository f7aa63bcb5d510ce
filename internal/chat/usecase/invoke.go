package usecase

import (
	"context"

	"jarvis-agent/internal/chat"
	"jarvis-agent/internal/model"
)

func (uc *implUseCase) Invoke(ctx context.Context, input chat.InvokeInput) (chat.InvokeOutput, error) {
	conv := model.NewConversation(input.Messages...)

	out, err := uc.runner.Invoke(ctx, conv, input.Config)
	if err != nil {
		return chat.InvokeOutput{}, err
	}

	uc.l.Infof(ctx, "internal.chat.usecase.Invoke: route=%s in=%d out=%d", out.Route, conv.Len(), len(out.Messages))
	return chat.InvokeOutput{
		Route:    out.Route,
		Messages: out.Messages,
	}, nil
}

func (uc *implUseCase) Route(ctx context.Context, input chat.RouteInput) chat.RouteOutput {
	return chat.RouteOutput{
		Decision: uc.router.Classify(model.NewConversation(input.Messages...)),
	}
}

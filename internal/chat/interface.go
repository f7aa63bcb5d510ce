package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Invoke runs one routed turn over the supplied conversation.
	Invoke(ctx context.Context, input InvokeInput) (InvokeOutput, error)
	// Route reports where the conversation would be sent without running a handler.
	Route(ctx context.Context, input RouteInput) RouteOutput
}

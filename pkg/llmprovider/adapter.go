package llmprovider

import (
	"context"
	"fmt"

	"jarvis-agent/pkg/groq"
)

const providerGroq = "groq"

// GroqAdapter adapts pkg/groq to llmprovider.Provider interface
type GroqAdapter struct {
	client groq.IGroq
}

var _ Provider = (*GroqAdapter)(nil)

// NewGroqAdapter creates a new Groq adapter
func NewGroqAdapter(client groq.IGroq) *GroqAdapter {
	return &GroqAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GroqAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, ErrInvalidRequest
	}

	groqReq := &groq.Request{
		Messages:    convertToGroqMessages(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	// Add system instruction as first message if present
	if req.SystemInstruction != nil && len(req.SystemInstruction.Parts) > 0 {
		systemMsg := groq.Message{
			Role:    "system",
			Content: req.SystemInstruction.Text(),
		}
		groqReq.Messages = append([]groq.Message{systemMsg}, groqReq.Messages...)
	}

	if len(groqReq.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	resp, err := a.client.GenerateContent(ctx, groqReq)
	if err != nil {
		return nil, &ProviderError{Provider: providerGroq, Err: err}
	}

	return convertFromGroqResponse(resp, a.client.Model())
}

// Name returns the provider name
func (a *GroqAdapter) Name() string {
	return providerGroq
}

// Model returns the model name
func (a *GroqAdapter) Model() string {
	return a.client.Model()
}

func convertToGroqMessages(msgs []Message) []groq.Message {
	messages := make([]groq.Message, 0, len(msgs))
	for _, msg := range msgs {
		messages = append(messages, groq.Message{
			Role:    msg.Role,
			Content: msg.Text(),
		})
	}
	return messages
}

func convertFromGroqResponse(resp *groq.Response, fallbackModel string) (*Response, error) {
	if resp == nil || len(resp.Choices) == 0 {
		return nil, &ProviderError{Provider: providerGroq, Err: ErrEmptyResponse}
	}

	modelName := resp.Model
	if modelName == "" {
		modelName = fallbackModel
	}

	choice := resp.Choices[0]
	if choice.Message.Content == "" {
		return nil, &ProviderError{Provider: providerGroq, Err: fmt.Errorf("%w: finish_reason=%s", ErrEmptyResponse, choice.FinishReason)}
	}

	return &Response{
		Content:      NewTextMessage("assistant", choice.Message.Content),
		ProviderName: providerGroq,
		ModelName:    modelName,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

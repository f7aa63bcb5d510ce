package llmprovider

import (
	"context"
	"errors"
	"testing"

	"jarvis-agent/pkg/groq"
)

type fakeGroq struct {
	lastReq *groq.Request
	resp    *groq.Response
	err     error
}

func (f *fakeGroq) GenerateContent(ctx context.Context, req *groq.Request) (*groq.Response, error) {
	f.lastReq = req
	return f.resp, f.err
}

func (f *fakeGroq) Model() string { return "llama3-8b-8192" }

func TestGroqAdapter_SystemInstructionFirst(t *testing.T) {
	fake := &fakeGroq{resp: &groq.Response{
		Choices: []groq.Choice{{Message: groq.Message{Role: "assistant", Content: "Rest and hydrate."}}},
		Usage:   groq.Usage{PromptTokens: 10, CompletionTokens: 3, TotalTokens: 13},
	}}
	a := NewGroqAdapter(fake)

	sys := NewTextMessage("system", "You are JARVIS")
	resp, err := a.GenerateContent(context.Background(), &Request{
		SystemInstruction: &sys,
		Messages:          []Message{NewTextMessage("user", "headache")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fake.lastReq.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(fake.lastReq.Messages))
	}
	if fake.lastReq.Messages[0].Role != "system" || fake.lastReq.Messages[0].Content != "You are JARVIS" {
		t.Errorf("unexpected system message: %+v", fake.lastReq.Messages[0])
	}
	if fake.lastReq.Messages[1].Role != "user" || fake.lastReq.Messages[1].Content != "headache" {
		t.Errorf("unexpected user message: %+v", fake.lastReq.Messages[1])
	}

	if resp.Content.Text() != "Rest and hydrate." {
		t.Errorf("unexpected content: %q", resp.Content.Text())
	}
	if resp.ProviderName != "groq" || resp.ModelName != "llama3-8b-8192" {
		t.Errorf("unexpected provider/model: %s/%s", resp.ProviderName, resp.ModelName)
	}
	if resp.Usage.TotalTokens != 13 {
		t.Errorf("expected 13 total tokens, got %d", resp.Usage.TotalTokens)
	}
}

func TestGroqAdapter_Errors(t *testing.T) {
	t.Run("transport error is wrapped", func(t *testing.T) {
		cause := errors.New("connection refused")
		a := NewGroqAdapter(&fakeGroq{err: cause})

		_, err := a.GenerateContent(context.Background(), &Request{Messages: []Message{NewTextMessage("user", "x")}})
		var pe *ProviderError
		if !errors.As(err, &pe) || pe.Provider != "groq" {
			t.Fatalf("expected ProviderError from groq, got %v", err)
		}
		if !errors.Is(err, cause) {
			t.Errorf("expected cause to be preserved")
		}
	})

	t.Run("no choices", func(t *testing.T) {
		a := NewGroqAdapter(&fakeGroq{resp: &groq.Response{}})
		_, err := a.GenerateContent(context.Background(), &Request{Messages: []Message{NewTextMessage("user", "x")}})
		if !errors.Is(err, ErrEmptyResponse) {
			t.Fatalf("expected ErrEmptyResponse, got %v", err)
		}
	})

	t.Run("empty content", func(t *testing.T) {
		a := NewGroqAdapter(&fakeGroq{resp: &groq.Response{
			Choices: []groq.Choice{{Message: groq.Message{Role: "assistant"}, FinishReason: "length"}},
		}})
		_, err := a.GenerateContent(context.Background(), &Request{Messages: []Message{NewTextMessage("user", "x")}})
		if !errors.Is(err, ErrEmptyResponse) {
			t.Fatalf("expected ErrEmptyResponse, got %v", err)
		}
	})

	t.Run("nil or empty request", func(t *testing.T) {
		a := NewGroqAdapter(&fakeGroq{})
		if _, err := a.GenerateContent(context.Background(), nil); !errors.Is(err, ErrInvalidRequest) {
			t.Errorf("expected ErrInvalidRequest for nil, got %v", err)
		}
		if _, err := a.GenerateContent(context.Background(), &Request{}); !errors.Is(err, ErrInvalidRequest) {
			t.Errorf("expected ErrInvalidRequest for empty, got %v", err)
		}
	})
}

func TestMessageText(t *testing.T) {
	m := Message{Role: "user", Parts: []Part{{Text: "a"}, {Text: "b"}}}
	if m.Text() != "ab" {
		t.Errorf("expected 'ab', got %q", m.Text())
	}
	if (Message{}).Text() != "" {
		t.Errorf("expected empty text")
	}
}

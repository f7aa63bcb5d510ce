package http

import (
	"bytes"
	"encoding/json"

	"jarvis-agent/internal/agent"
	"jarvis-agent/internal/chat"
	"jarvis-agent/internal/model"
)

// --- Request DTOs ---

// messageReq is one wire message. Content is either a string or an array of
// strings and {"type":"text","text":"..."} records.
type messageReq struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content" swaggertype:"string" example:"tell me about the history of penicillin"`
}

type configReq struct {
	GroqAPIKey string `json:"groq_api_key"`
	ModelName  string `json:"model_name" example:"llama3-8b-8192"`
}

type invokeReq struct {
	Messages []messageReq `json:"messages"`
	Config   *configReq   `json:"config"`
}

func (r invokeReq) validate() error {
	return validateMessages(r.Messages)
}

func (r invokeReq) toInput() chat.InvokeInput {
	input := chat.InvokeInput{Messages: toMessages(r.Messages)}
	if r.Config != nil {
		input.Config = &agent.Configuration{
			APIKey:    r.Config.GroqAPIKey,
			ModelName: r.Config.ModelName,
		}
	}
	return input
}

// ---

type routeReq struct {
	Messages []messageReq `json:"messages"`
}

func (r routeReq) validate() error {
	return validateMessages(r.Messages)
}

func (r routeReq) toInput() chat.RouteInput {
	return chat.RouteInput{Messages: toMessages(r.Messages)}
}

func validateMessages(msgs []messageReq) error {
	for _, m := range msgs {
		if m.Role == "" {
			return errEmptyRole
		}
	}
	return nil
}

func toMessages(msgs []messageReq) []model.Message {
	out := make([]model.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, model.NewMessage(model.Role(m.Role), decodeContent(m.Content)))
	}
	return out
}

// decodeContent maps wire content onto the content union. Shapes other than a
// string or an array decode to UnknownContent.
func decodeContent(raw json.RawMessage) model.Content {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return model.UnknownContent{}
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return model.UnknownContent{}
		}
		return model.TextContent(s)
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return model.UnknownContent{}
		}
		frags := make(model.FragmentContent, 0, len(items))
		for _, item := range items {
			frags = append(frags, decodeFragment(item))
		}
		return frags
	default:
		return model.UnknownContent{}
	}
}

func decodeFragment(raw json.RawMessage) model.Fragment {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return model.OpaqueFragment{}
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return model.OpaqueFragment{}
		}
		return model.TextFragment(s)
	case '{':
		var rec map[string]json.RawMessage
		if err := json.Unmarshal(raw, &rec); err != nil {
			return model.OpaqueFragment{}
		}
		var frag model.LabeledFragment
		if t, ok := rec["type"]; ok {
			_ = json.Unmarshal(t, &frag.Type)
		}
		if t, ok := rec["text"]; ok {
			frag.HasText = json.Unmarshal(t, &frag.Text) == nil
		}
		return frag
	default:
		return model.OpaqueFragment{}
	}
}

// --- Response DTOs ---

type messageResp struct {
	ID      string `json:"id"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

func newMessageResp(m model.Message) messageResp {
	return messageResp{
		ID:      m.ID(),
		Role:    string(m.Role()),
		Content: m.Text(),
	}
}

type invokeResp struct {
	Route    string        `json:"route" example:"knowledge"`
	Messages []messageResp `json:"messages"`
}

func (h *handler) newInvokeResp(out chat.InvokeOutput) invokeResp {
	msgs := make([]messageResp, len(out.Messages))
	for i, m := range out.Messages {
		msgs[i] = newMessageResp(m)
	}
	return invokeResp{
		Route:    string(out.Route),
		Messages: msgs,
	}
}

type routeResp struct {
	Route   string `json:"route" example:"knowledge"`
	Keyword string `json:"keyword,omitempty" example:"history"`
	Reason  string `json:"reason"`
}

func (h *handler) newRouteResp(out chat.RouteOutput) routeResp {
	return routeResp{
		Route:   string(out.Decision.Route),
		Keyword: out.Decision.Keyword,
		Reason:  out.Decision.Reason,
	}
}

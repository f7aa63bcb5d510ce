package knowledge

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jarvis-agent/internal/agent"
	"jarvis-agent/internal/model"
)

var errNoLookup = errors.New("knowledge: no lookup configured")

// Handle searches the encyclopedia for the latest user message. Lookup
// failures become an apology reply, so the returned error is always nil.
func (h *handler) Handle(ctx context.Context, conv model.Conversation, _ *agent.Configuration) ([]model.Message, error) {
	last, ok := conv.Last()
	if !ok {
		return []model.Message{model.NewAssistantMessage(EmptyQueryMessage)}, nil
	}
	if !last.IsUser() {
		h.l.Debugf(ctx, "%s: last message role %q is not user, no reply", LogPrefixHandle, last.Role())
		return []model.Message{}, nil
	}

	query := last.Text()

	raw, err := h.run(ctx, query)
	if err != nil {
		h.l.Warnf(ctx, "%s: lookup %q failed: %v", LogPrefixHandle, query, err)
		return []model.Message{model.NewAssistantMessage(fmt.Sprintf(apologyTemplate, query))}, nil
	}

	text := Truncate(CleanResult(raw), MaxReplyRunes)
	return []model.Message{model.NewAssistantMessage(fmt.Sprintf(replyTemplate, query, text))}, nil
}

func (h *handler) run(ctx context.Context, query string) (string, error) {
	if h.lookup == nil {
		return "", errNoLookup
	}
	return h.lookup.Run(ctx, query)
}

// CleanResult keeps the first summary line of a lookup result. Without a
// "\nSummary:" marker the whole result is returned, trimmed.
func CleanResult(raw string) string {
	_, after, found := strings.Cut(raw, summaryMarker)
	if !found {
		return strings.TrimSpace(raw)
	}
	line, _, _ := strings.Cut(after, "\n")
	return strings.TrimSpace(line)
}

// Truncate clips s to limit runes and appends "..." when it clipped.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + truncateSuffix
}

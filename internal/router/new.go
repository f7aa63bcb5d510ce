package router

import (
	"strings"

	"jarvis-agent/internal/model"
)

// Router maps a conversation to a route. Implementations must be pure and total.
type Router interface {
	Classify(conv model.Conversation) Decision
}

// KeywordRouter routes by case-insensitive substring match on the latest user
// message.
type KeywordRouter struct {
	keywords []string
}

// Ensure KeywordRouter implements Router interface
var _ Router = (*KeywordRouter)(nil)

// New creates a KeywordRouter. With no keywords it uses DefaultKnowledgeKeywords.
func New(keywords ...string) *KeywordRouter {
	if len(keywords) == 0 {
		keywords = DefaultKnowledgeKeywords
	}
	lowered := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(k)
		if k != "" {
			lowered = append(lowered, k)
		}
	}
	return &KeywordRouter{keywords: lowered}
}

// Keywords returns a copy of the configured keywords.
func (r *KeywordRouter) Keywords() []string {
	out := make([]string, len(r.keywords))
	copy(out, r.keywords)
	return out
}

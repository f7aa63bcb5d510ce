package router

import (
	"strings"

	"jarvis-agent/internal/model"
)

var defaultRouter = New()

// Classify routes conv with the default keyword set.
func Classify(conv model.Conversation) Route {
	return defaultRouter.Classify(conv).Route
}

// Classify inspects only the most recent message. Anything that is not a user
// message containing a knowledge keyword goes to RouterFallbackRoute.
func (r *KeywordRouter) Classify(conv model.Conversation) Decision {
	last, ok := conv.Last()
	if !ok {
		return Decision{Route: RouterFallbackRoute, Reason: ReasonEmptyConversation}
	}
	if !last.IsUser() {
		return Decision{Route: RouterFallbackRoute, Reason: ReasonNotUserMessage}
	}

	text := strings.ToLower(last.Text())
	for _, k := range r.keywords {
		if strings.Contains(text, k) {
			return Decision{Route: RouteKnowledge, Keyword: k, Reason: ReasonKeywordMatched}
		}
	}

	return Decision{Route: RouterFallbackRoute, Reason: ReasonNoKeyword}
}

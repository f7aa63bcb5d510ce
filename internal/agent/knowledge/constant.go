package knowledge

// Log prefixes
const (
	LogPrefixHandle = "internal.agent.knowledge.Handle"
)

// NodeName is the graph node this handler runs as.
const NodeName = "wiki_search_agent"

// Replies
const (
	EmptyQueryMessage = "I need a query to search Wikipedia."
	replyTemplate     = "Here's what I found about '%s':\n\n%s\n\nIf you have any health-related questions about this topic, I'm here to help!"
	apologyTemplate   = "I apologize, but I couldn't retrieve information about '%s' at the moment. Please try rephrasing your question or ask me about health and nutrition topics directly."
)

// Result cleaning
const (
	summaryMarker  = "\nSummary:"
	MaxReplyRunes  = 1000
	truncateSuffix = "..."
)

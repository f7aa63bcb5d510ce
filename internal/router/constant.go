package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// DefaultKnowledgeKeywords are the lower-case phrases that send a message to
// the knowledge handler. Order matters only for which keyword is reported.
var DefaultKnowledgeKeywords = []string{
	"history",
	"wiki",
	"explain",
	"information about",
	"tell me about",
}

// Router configuration
const (
	RouterFallbackRoute = RouteHealthcare
)

// Fallback reasons
const (
	ReasonEmptyConversation = "empty conversation"
	ReasonNotUserMessage    = "last message is not from the user"
	ReasonNoKeyword         = "no knowledge keyword matched"
	ReasonKeywordMatched    = "knowledge keyword matched"
)
